// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the textual scene document that lists baked
// buffer files and the mesh descriptors locating data within them,
// in the layout read by the renderer.
package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/meshbake/base/iox"
	"cogentcore.org/meshbake/base/iox/tomlx"
	"cogentcore.org/meshbake/base/iox/yamlx"
	"cogentcore.org/meshbake/meshbuf"
)

// File is a buffer file referenced by id from mesh buffer views.
// A relative Path is relative to the directory of the scene document.
type File struct {
	ID   uint32 `yaml:"id" toml:"id"`
	Path string `yaml:"path" toml:"path"`
}

// Scene is a scene document.
type Scene struct {
	Buffers []File               `yaml:"buffers" toml:"buffers"`
	Meshes  []meshbuf.Descriptor `yaml:"meshes" toml:"meshes"`
}

// Add adds the mesh described by d, stored in the buffer file at path.
// The buffer file is listed once per id.
func (sc *Scene) Add(path string, d meshbuf.Descriptor) {
	id := d.Indices.View.Buffer
	if sc.Buffer(id) == nil {
		sc.Buffers = append(sc.Buffers, File{ID: id, Path: path})
	}
	sc.Meshes = append(sc.Meshes, d)
}

// Buffer returns the buffer file with the given id, or nil if none.
func (sc *Scene) Buffer(id uint32) *File {
	for i := range sc.Buffers {
		if sc.Buffers[i].ID == id {
			return &sc.Buffers[i]
		}
	}
	return nil
}

// Validate checks that buffer ids are unique and that every
// view of every mesh refers to a listed buffer.
func (sc *Scene) Validate() error {
	seen := map[uint32]bool{}
	for _, f := range sc.Buffers {
		if seen[f.ID] {
			return fmt.Errorf("scene: duplicate buffer id %d", f.ID)
		}
		seen[f.ID] = true
	}
	for _, m := range sc.Meshes {
		for _, b := range m.Bindings {
			if !seen[b.View.Buffer] {
				return fmt.Errorf("scene: mesh %q binding %d: unknown buffer %d", m.Name, b.Binding, b.View.Buffer)
			}
		}
		if !seen[m.Indices.View.Buffer] {
			return fmt.Errorf("scene: mesh %q indices: unknown buffer %d", m.Name, m.Indices.View.Buffer)
		}
	}
	return nil
}

// Format is a scene document encoding.
type Format int32

const (
	// YAML is the default encoding, read by the renderer.
	YAML Format = iota

	// TOML is an alternative encoding for tools that prefer it.
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatFromFilename returns the format for the extension of the
// given file name: .toml is [TOML], anything else is [YAML].
func FormatFromFilename(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return TOML
	}
	return YAML
}

func (f Format) encoder() iox.EncoderFunc {
	if f == TOML {
		return tomlx.NewEncoder
	}
	return yamlx.NewEncoder
}

func (f Format) decoder() iox.DecoderFunc {
	if f == TOML {
		return tomlx.NewStrictDecoder
	}
	return yamlx.NewDecoder
}

// Marshal returns the scene encoded in the given format.
func Marshal(sc *Scene, f Format) ([]byte, error) {
	return iox.WriteBytes(sc, f.encoder())
}

// Unmarshal decodes a scene in the given format.
func Unmarshal(data []byte, f Format) (*Scene, error) {
	sc := &Scene{}
	if err := iox.ReadBytes(sc, data, f.decoder()); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return sc, nil
}

// Save writes the scene to the named file, in the format
// given by its extension.
func Save(sc *Scene, filename string) error {
	return iox.Save(sc, filename, FormatFromFilename(filename).encoder())
}

// Open reads and validates the scene in the named file, in the
// format given by its extension.
func Open(filename string) (*Scene, error) {
	sc := &Scene{}
	if err := iox.Open(sc, filename, FormatFromFilename(filename).decoder()); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// BufferPath returns the path of the buffer file with the given id,
// relative to the directory of the scene file at sceneFile.
func (sc *Scene) BufferPath(sceneFile string, id uint32) (string, error) {
	f := sc.Buffer(id)
	if f == nil {
		return "", fmt.Errorf("scene: unknown buffer %d", id)
	}
	if filepath.IsAbs(f.Path) {
		return f.Path, nil
	}
	return filepath.Join(filepath.Dir(sceneFile), f.Path), nil
}

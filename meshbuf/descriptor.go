// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuf

import "fmt"

// IndexFormat is the element type of an index region.
type IndexFormat int32

const (
	// U32 is 32-bit unsigned indexes, the only format a [Buffer] writes.
	U32 IndexFormat = iota

	// U16 is 16-bit unsigned indexes, accepted by the renderer.
	U16
)

func (f IndexFormat) String() string {
	switch f {
	case U32:
		return "u32"
	case U16:
		return "u16"
	}
	return fmt.Sprintf("IndexFormat(%d)", int32(f))
}

// Size returns the size in bytes of one index of this format.
func (f IndexFormat) Size() int {
	if f == U16 {
		return 2
	}
	return IndexSize
}

// MarshalText implements [encoding.TextMarshaler].
func (f IndexFormat) MarshalText() ([]byte, error) {
	switch f {
	case U32, U16:
		return []byte(f.String()), nil
	}
	return nil, fmt.Errorf("invalid index format %d", int32(f))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *IndexFormat) UnmarshalText(text []byte) error {
	switch string(text) {
	case "u32":
		*f = U32
	case "u16":
		*f = U16
	default:
		return fmt.Errorf("invalid index format %q", text)
	}
	return nil
}

// BufferView is a byte range within one buffer file.
type BufferView struct {
	Buffer uint32 `yaml:"buffer" toml:"buffer"`
	Offset uint32 `yaml:"offset" toml:"offset"`
	Size   uint32 `yaml:"size" toml:"size"`
}

// End returns the offset one past the last byte of the view.
func (bv BufferView) End() int {
	return int(bv.Offset) + int(bv.Size)
}

// MeshBinding binds a view of vertex data to a vertex input binding slot.
type MeshBinding struct {
	Binding uint32     `yaml:"binding" toml:"binding"`
	View    BufferView `yaml:"view" toml:"view"`
}

// MeshIndices describes the index region of a mesh.
type MeshIndices struct {
	Count  uint32      `yaml:"count" toml:"count"`
	Format IndexFormat `yaml:"format" toml:"format"`
	View   BufferView  `yaml:"view" toml:"view"`
}

// Descriptor is the metadata a renderer needs to locate the vertex and
// index data of one mesh within its buffer file.
type Descriptor struct {
	Name     string        `yaml:"name" toml:"name"`
	Material uint32        `yaml:"material" toml:"material"`
	Bindings []MeshBinding `yaml:"bindings" toml:"bindings"`
	Indices  MeshIndices   `yaml:"indices" toml:"indices"`
}

// VertexView returns the view of binding 0, the interleaved vertex
// records, and whether the descriptor has one.
func (d *Descriptor) VertexView() (BufferView, bool) {
	for _, b := range d.Bindings {
		if b.Binding == 0 {
			return b.View, true
		}
	}
	return BufferView{}, false
}

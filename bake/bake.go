// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bake runs a meshbake configuration: it generates each
// mesh, writes its buffer file, and writes the scene document
// describing all of them.
package bake

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/meshbake/base/fsx"
	"cogentcore.org/meshbake/config"
	"cogentcore.org/meshbake/meshbuf"
	"cogentcore.org/meshbake/scene"
	"cogentcore.org/meshbake/vshape"
)

// Mesh generates the given mesh into a new buffer and describes it,
// without touching the filesystem.
func Mesh(m config.Mesh) (*meshbuf.Buffer, meshbuf.Descriptor, error) {
	sh, err := m.NewShape()
	if err != nil {
		return nil, meshbuf.Descriptor{}, err
	}
	b, err := vshape.Build(sh, m.Buffer)
	if err != nil {
		return nil, meshbuf.Descriptor{}, fmt.Errorf("bake: mesh %q: %w", m.Name, err)
	}
	slog.Info("generated mesh", "name", m.Name, "shape", m.Shape, "vertices", b.NumVertex(), "indices", b.NumIndex(), "bytes", b.Len(), "bbox", sh.BBox())
	return b, b.Describe(m.Name, m.Material), nil
}

// Run generates and saves every mesh of cfg, in order, and then saves
// the scene document, which is returned. It stops at the first error,
// leaving any files already written in place.
func Run(cfg *config.Config) (*scene.Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := fsx.EnsureDir(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	sceneFile := fsx.JoinOutput(cfg.OutputDir, cfg.Scene)
	sc := &scene.Scene{}
	for _, m := range cfg.Meshes {
		b, d, err := Mesh(m)
		if err != nil {
			return nil, err
		}
		fn := fsx.JoinOutput(cfg.OutputDir, m.Output)
		if err := fsx.EnsureDir(filepath.Dir(fn)); err != nil {
			return nil, fmt.Errorf("bake: mesh %q: %w", m.Name, err)
		}
		if err := b.Save(fn); err != nil {
			return nil, fmt.Errorf("bake: mesh %q: %w", m.Name, err)
		}
		slog.Info("wrote buffer", "name", m.Name, "file", fn)
		path := m.Output
		if !filepath.IsAbs(path) {
			path = scenePath(sceneFile, fn)
		}
		sc.Add(path, d)
	}
	if err := fsx.EnsureDir(filepath.Dir(sceneFile)); err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	if err := scene.Save(sc, sceneFile); err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	slog.Info("wrote scene", "file", sceneFile, "meshes", len(sc.Meshes))
	return sc, nil
}

// scenePath returns the path that the scene document at sceneFile
// records for the buffer file at file: relative to the directory of
// the scene document, or absolute if no relative path leads there.
func scenePath(sceneFile, file string) string {
	if rel, err := filepath.Rel(filepath.Dir(sceneFile), file); err == nil {
		return rel
	}
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return file
}

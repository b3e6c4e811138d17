// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for a meshbake run:
// which meshes to generate, their parameters, and where to write them.
package config

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/meshbake/base/errors"
	"cogentcore.org/meshbake/base/iox/tomlx"
	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/vshape"
)

// Shape names accepted in [Mesh.Shape].
const (
	ShapeBox   = "box"
	ShapeTorus = "torus"
)

// Config is the main config struct that contains all of
// the configuration options for a meshbake run.
type Config struct {

	// the directory that the buffer files and scene document are written to
	OutputDir string

	// the file name of the scene document, relative to OutputDir, scene.yaml
	// by default; a .toml extension writes it as TOML, anything else as YAML.
	// The buffer file paths it lists are relative to its own directory.
	Scene string

	// the meshes to generate, one buffer file each
	Meshes []Mesh
}

// Mesh is the configuration of one generated mesh.
// Zero-valued shape parameters take the defaults of the shape.
type Mesh struct {

	// the name of the mesh in the scene document; defaults to Shape
	Name string

	// the generator: box or torus
	Shape string

	// the material id referenced by the scene document
	Material uint32

	// the buffer id of the buffer file, unique within a run
	Buffer uint32

	// the file name of the buffer file, relative to OutputDir; defaults to Name.bin
	Output string

	// offset added to every vertex position
	Pos math32.Vector3

	// box: size along each dimension, 2 by default
	Size math32.Vector3

	// torus: number of segments around the ring, 24 by default
	OuterCount int

	// torus: radius of the ring, 1 by default
	OuterRadius float32

	// torus: number of segments around the tube, 12 by default
	InnerCount int

	// torus: radius of the tube, 0.25 by default
	InnerRadius float32
}

// Defaults sets the canonical run: the default box in buffer 0
// and the default torus in buffer 1, with the scene in scene.yaml.
func (cfg *Config) Defaults() {
	cfg.OutputDir = ""
	cfg.Scene = "scene.yaml"
	cfg.Meshes = []Mesh{
		{Shape: ShapeBox, Buffer: 0},
		{Shape: ShapeTorus, Buffer: 1},
	}
	for i := range cfg.Meshes {
		cfg.Meshes[i].Defaults()
	}
}

// Defaults fills all unset fields of the mesh from its shape.
func (m *Mesh) Defaults() {
	if m.Name == "" {
		m.Name = m.Shape
	}
	if m.Output == "" && m.Name != "" {
		m.Output = m.Name + ".bin"
	}
	switch m.Shape {
	case ShapeBox:
		if m.Size == (math32.Vector3{}) {
			m.Size.Set(2, 2, 2)
		}
	case ShapeTorus:
		var tr vshape.Torus
		tr.Defaults()
		if m.OuterCount == 0 {
			m.OuterCount = tr.OuterCount
		}
		if m.OuterRadius == 0 {
			m.OuterRadius = tr.OuterRadius
		}
		if m.InnerCount == 0 {
			m.InnerCount = tr.InnerCount
		}
		if m.InnerRadius == 0 {
			m.InnerRadius = tr.InnerRadius
		}
	}
}

// Open returns the config in the given TOML file, applied over
// [Config.Defaults]. Keys that do not match a config field are an
// error. Meshes listed in the file replace the default meshes.
func Open(filename string) (*Config, error) {
	cfg := &Config{}
	cfg.Defaults()
	defs := cfg.Meshes
	cfg.Meshes = nil
	if err := tomlx.OpenStrict(cfg, filename); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Meshes) == 0 {
		cfg.Meshes = defs
	}
	for i := range cfg.Meshes {
		cfg.Meshes[i].Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	return tomlx.Save(cfg, filename)
}

// Validate returns all of the problems with the config joined
// into one error, or nil if there are none.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Scene == "" {
		errs = append(errs, errors.New("config: no scene file name"))
	}
	if len(cfg.Meshes) == 0 {
		errs = append(errs, errors.New("config: no meshes"))
	}
	buffers := map[uint32]string{}
	outputs := map[string]string{filepath.Clean(cfg.Scene): "scene"}
	for _, m := range cfg.Meshes {
		if err := m.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if other, ok := buffers[m.Buffer]; ok {
			errs = append(errs, fmt.Errorf("config: mesh %q: buffer id %d already used by %q", m.Name, m.Buffer, other))
		} else {
			buffers[m.Buffer] = m.Name
		}
		out := filepath.Clean(m.Output)
		if other, ok := outputs[out]; ok {
			errs = append(errs, fmt.Errorf("config: mesh %q: output %q already used by %q", m.Name, m.Output, other))
		} else {
			outputs[out] = m.Name
		}
	}
	return errors.Join(errs...)
}

// Validate checks the shape and parameters of one mesh.
func (m *Mesh) Validate() error {
	switch m.Shape {
	case ShapeBox:
		if m.Size.X <= 0 || m.Size.Y <= 0 || m.Size.Z <= 0 {
			return fmt.Errorf("config: mesh %q: box size must be positive, got %v", m.Name, m.Size)
		}
	case ShapeTorus:
		if m.OuterCount < 1 || m.InnerCount < 1 {
			return fmt.Errorf("config: mesh %q: torus segment counts must be at least 1, got outer %d inner %d", m.Name, m.OuterCount, m.InnerCount)
		}
		if m.OuterRadius <= 0 || m.InnerRadius <= 0 {
			return fmt.Errorf("config: mesh %q: torus radii must be positive, got outer %g inner %g", m.Name, m.OuterRadius, m.InnerRadius)
		}
	default:
		return fmt.Errorf("config: mesh %q: unknown shape %q", m.Name, m.Shape)
	}
	if m.Output == "" {
		return fmt.Errorf("config: mesh %q: no output file name", m.Name)
	}
	return nil
}

// NewShape returns the generator for the mesh.
func (m *Mesh) NewShape() (vshape.Shape, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var sh vshape.Shape
	switch m.Shape {
	case ShapeBox:
		bx := vshape.NewBox(m.Size.X, m.Size.Y, m.Size.Z)
		bx.Pos = m.Pos
		sh = bx
	case ShapeTorus:
		tr := vshape.NewTorus(m.OuterCount, m.OuterRadius, m.InnerCount, m.InnerRadius)
		tr.Pos = m.Pos
		sh = tr
	}
	return sh, nil
}

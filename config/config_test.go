// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/vshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	fn := filepath.Join(t.TempDir(), "meshbake.toml")
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	return fn
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "scene.yaml", cfg.Scene)
	require.Len(t, cfg.Meshes, 2)

	bx, tr := cfg.Meshes[0], cfg.Meshes[1]
	assert.Equal(t, "box", bx.Name)
	assert.Equal(t, "box.bin", bx.Output)
	assert.Equal(t, uint32(0), bx.Buffer)
	assert.Equal(t, math32.Vec3(2, 2, 2), bx.Size)

	assert.Equal(t, "torus", tr.Name)
	assert.Equal(t, "torus.bin", tr.Output)
	assert.Equal(t, uint32(1), tr.Buffer)
	assert.Equal(t, 24, tr.OuterCount)
	assert.Equal(t, float32(1), tr.OuterRadius)
	assert.Equal(t, 12, tr.InnerCount)
	assert.Equal(t, float32(0.25), tr.InnerRadius)
}

func TestNewShape(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	sh, err := cfg.Meshes[0].NewShape()
	require.NoError(t, err)
	assert.Equal(t, vshape.NewBox(2, 2, 2), sh)

	cfg.Meshes[1].Pos = math32.Vec3(0, 1, 0)
	sh, err = cfg.Meshes[1].NewShape()
	require.NoError(t, err)
	want := vshape.NewTorus(24, 1, 12, 0.25)
	want.Pos = math32.Vec3(0, 1, 0)
	assert.Equal(t, want, sh)

	_, err = (&Mesh{Name: "cone", Shape: "cone", Output: "cone.bin"}).NewShape()
	assert.ErrorContains(t, err, "unknown shape")
}

func TestOpen(t *testing.T) {
	fn := writeConfig(t, `
OutputDir = "out"
Scene = "scene.toml"

[[Meshes]]
Shape = "torus"
Name = "ring"
Buffer = 4
Material = 2
InnerCount = 6

[[Meshes]]
Shape = "box"
Buffer = 5
Size = {X = 4, Y = 1, Z = 1}
`)
	cfg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "scene.toml", cfg.Scene)
	require.Len(t, cfg.Meshes, 2)

	tr := cfg.Meshes[0]
	assert.Equal(t, "ring", tr.Name)
	assert.Equal(t, "ring.bin", tr.Output)
	assert.Equal(t, uint32(4), tr.Buffer)
	assert.Equal(t, uint32(2), tr.Material)
	assert.Equal(t, 24, tr.OuterCount)
	assert.Equal(t, 6, tr.InnerCount)

	bx := cfg.Meshes[1]
	assert.Equal(t, "box.bin", bx.Output)
	assert.Equal(t, math32.Vec3(4, 1, 1), bx.Size)
}

func TestOpenKeepsDefaultMeshes(t *testing.T) {
	cfg, err := Open(writeConfig(t, `OutputDir = "baked"`))
	require.NoError(t, err)
	def := &Config{}
	def.Defaults()
	def.OutputDir = "baked"
	assert.Equal(t, def, cfg)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Open(writeConfig(t, `Colour = "red"`))
	assert.Error(t, err, "unknown keys are an error")

	_, err = Open(writeConfig(t, `
[[Meshes]]
Shape = "torus"
OuterCount = -3
`))
	assert.ErrorContains(t, err, "segment counts")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.Meshes[1].Buffer = 0
	assert.ErrorContains(t, cfg.Validate(), "buffer id 0 already used")

	cfg.Defaults()
	cfg.Meshes[1].Output = "box.bin"
	assert.ErrorContains(t, cfg.Validate(), "output \"box.bin\" already used")

	cfg.Defaults()
	cfg.Meshes[0].Output = "scene.yaml"
	assert.Error(t, cfg.Validate())

	// outputs naming the same file in different ways collide
	cfg.Defaults()
	cfg.Meshes[1].Output = "./box.bin"
	assert.ErrorContains(t, cfg.Validate(), "output \"./box.bin\" already used")

	cfg.Defaults()
	cfg.Meshes[0].Output = filepath.Join("a", "..", "scene.yaml")
	assert.ErrorContains(t, cfg.Validate(), "already used by \"scene\"")

	cfg.Defaults()
	cfg.Meshes[1].Output = filepath.Join("meshes", "box.bin")
	assert.NoError(t, cfg.Validate())

	cfg.Defaults()
	cfg.Meshes[0].Size.Y = 0
	cfg.Meshes[1].InnerRadius = -1
	err := cfg.Validate()
	assert.ErrorContains(t, err, "box size")
	assert.ErrorContains(t, err, "torus radii")

	cfg.Defaults()
	cfg.Meshes = nil
	assert.ErrorContains(t, cfg.Validate(), "no meshes")
}

func TestSaveOpen(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.OutputDir = "out"
	cfg.Meshes[0].Pos = math32.Vec3(0, 2, 0)
	fn := filepath.Join(t.TempDir(), "meshbake.toml")
	require.NoError(t, cfg.Save(fn))
	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

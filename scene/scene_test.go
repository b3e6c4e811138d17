// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/meshbake/meshbuf"
	"cogentcore.org/meshbake/vshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) *Scene {
	bx, err := vshape.Build(vshape.NewBox(2, 2, 2), 0)
	require.NoError(t, err)
	tr, err := vshape.Build(vshape.NewTorus(24, 1, 12, 0.25), 1)
	require.NoError(t, err)
	sc := &Scene{}
	sc.Add("box.bin", bx.Describe("box", 0))
	sc.Add("torus.bin", tr.Describe("torus", 0))
	return sc
}

func TestAdd(t *testing.T) {
	sc := testScene(t)
	assert.Equal(t, []File{{0, "box.bin"}, {1, "torus.bin"}}, sc.Buffers)
	require.Len(t, sc.Meshes, 2)
	assert.Equal(t, "torus", sc.Meshes[1].Name)

	// a second mesh in the same buffer does not list the file again
	sc.Add("box.bin", sc.Meshes[0])
	assert.Len(t, sc.Buffers, 2)
	assert.Len(t, sc.Meshes, 3)
	assert.NoError(t, sc.Validate())
}

func TestValidate(t *testing.T) {
	sc := testScene(t)
	sc.Buffers[1].ID = 0
	assert.Error(t, sc.Validate())

	sc = testScene(t)
	sc.Buffers = sc.Buffers[:1]
	assert.Error(t, sc.Validate())
}

func TestMarshalYAML(t *testing.T) {
	sc := testScene(t)
	b, err := Marshal(sc, YAML)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "path: box.bin")
	assert.Contains(t, s, "format: u32")
	assert.Contains(t, s, "offset: 1024")
	assert.Contains(t, s, "size: 864")
	assert.Contains(t, s, "count: 1728")

	got, err := Unmarshal(b, YAML)
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}

func TestMarshalTOML(t *testing.T) {
	sc := testScene(t)
	b, err := Marshal(sc, TOML)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[[meshes]]")
	assert.Regexp(t, `format = ['"]u32['"]`, string(b))

	got, err := Unmarshal(b, TOML)
	require.NoError(t, err)
	assert.Equal(t, sc, got)
}

func TestUnmarshalRenderer(t *testing.T) {
	// written by hand in the layout the renderer reads
	src := `
buffers:
  - id: 3
    path: quad.bin
meshes:
  - material: 2
    bindings:
      - binding: 0
        view: {buffer: 3, offset: 0, size: 144}
    indices:
      count: 6
      format: u16
      view: {buffer: 3, offset: 256, size: 12}
`
	sc, err := Unmarshal([]byte(src), YAML)
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	m := sc.Meshes[0]
	assert.Equal(t, uint32(2), m.Material)
	assert.Equal(t, meshbuf.U16, m.Indices.Format)
	assert.Equal(t, meshbuf.BufferView{Buffer: 3, Offset: 256, Size: 12}, m.Indices.View)

	_, err = Unmarshal([]byte("meshes:\n  - colour: red\n"), YAML)
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	sc := testScene(t)
	for _, name := range []string{"scene.yaml", "scene.toml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(sc, fn))
		got, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, sc, got, name)
	}

	tb, err := os.ReadFile(filepath.Join(dir, "scene.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(tb), "[[buffers]]")

	_, err = Open(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, YAML, FormatFromFilename("scene.yaml"))
	assert.Equal(t, YAML, FormatFromFilename("scene.yml"))
	assert.Equal(t, YAML, FormatFromFilename("scene"))
	assert.Equal(t, TOML, FormatFromFilename("out/Scene.TOML"))
	assert.Equal(t, "toml", TOML.String())
}

func TestBufferPath(t *testing.T) {
	sc := testScene(t)
	p, err := sc.BufferPath(filepath.Join("out", "scene.yaml"), 1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "torus.bin"), p)
	_, err = sc.BufferPath("scene.yaml", 7)
	assert.Error(t, err)
}

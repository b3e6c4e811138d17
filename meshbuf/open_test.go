// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuf

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/meshbake/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad(t *testing.T) *Buffer {
	t.Helper()
	b := NewBuffer(4, 6, 1)
	for i, p := range []math32.Vector3{{X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}} {
		uv := math32.Vec2(float32(i%2), float32(i/2))
		_, err := b.AddVertex(NewVertex(p, uv, math32.Vec3(0.5, 0.25, 0.125)))
		require.NoError(t, err)
	}
	require.NoError(t, b.Indices(0, 2, 1, 1, 2, 3))
	return b
}

func TestDecodeVertex(t *testing.T) {
	vt := Vertex{math32.Vec3(0.1, -2.5, 1e-3), math32.Vec2(1.0/3, 2.0/3), math32.Vec4(0.7, 0.8, 0.9, 0.5)}
	var rec [VertexSize]byte
	vt.Encode(rec[:])
	assert.Equal(t, vt, DecodeVertex(rec[:]))
	assert.Panics(t, func() { vt.Encode(make([]byte, VertexSize-1)) })
}

func TestOpen(t *testing.T) {
	b := quad(t)
	d := b.Describe("quad", 0)
	var out bytes.Buffer
	_, err := b.WriteTo(&out)
	require.NoError(t, err)

	ob, err := Open(out.Bytes(), d)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), ob.ID)
	assert.Equal(t, 4, ob.NumVertex())
	assert.Equal(t, 6, ob.NumIndex())
	assert.True(t, ob.Full())
	assert.Equal(t, d, ob.Describe("quad", 0))
	for i := range 4 {
		assert.Equal(t, b.VertexAt(i), ob.VertexAt(i))
	}
	for i := range 6 {
		assert.Equal(t, b.IndexAt(i), ob.IndexAt(i))
	}
	_, err = ob.Vertex(0, 0, 0, 0, 0, 0, 0, 0, 1)
	assert.ErrorIs(t, err, ErrPersisted)
}

func TestOpenFile(t *testing.T) {
	b := quad(t)
	fn := filepath.Join(t.TempDir(), "quad.bin")
	require.NoError(t, b.Save(fn))
	ob, err := OpenFile(fn, b.Describe("quad", 0))
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), ob.Bytes())

	_, err = OpenFile(filepath.Join(t.TempDir(), "none.bin"), b.Describe("quad", 0))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenMismatch(t *testing.T) {
	b := quad(t)
	data := b.Bytes()
	good := b.Describe("quad", 0)

	_, err := Open(data[:len(data)-4], good)
	assert.ErrorIs(t, err, ErrLayout)

	d := good
	d.Bindings = nil
	_, err = Open(data, d)
	assert.ErrorIs(t, err, ErrLayout)

	d = b.Describe("quad", 0)
	d.Bindings[0].View.Size -= 4
	_, err = Open(data, d)
	assert.ErrorIs(t, err, ErrLayout)

	d = b.Describe("quad", 0)
	d.Indices.View.Offset += 4
	_, err = Open(data, d)
	assert.ErrorIs(t, err, ErrLayout)

	d = b.Describe("quad", 0)
	d.Indices.View.Buffer = 9
	_, err = Open(data, d)
	assert.ErrorIs(t, err, ErrLayout)

	d = b.Describe("quad", 0)
	d.Indices.Format = U16
	_, err = Open(data, d)
	assert.ErrorIs(t, err, ErrLayout)

	bad := bytes.Clone(data)
	binary.LittleEndian.PutUint32(bad[b.IndexStart()+8:], 4)
	_, err = Open(bad, good)
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestIndexFormatText(t *testing.T) {
	txt, err := U32.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "u32", string(txt))

	var f IndexFormat
	require.NoError(t, f.UnmarshalText([]byte("u16")))
	assert.Equal(t, U16, f)
	assert.Error(t, f.UnmarshalText([]byte("u8")))
	_, err = IndexFormat(5).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, 2, U16.Size())
	assert.Equal(t, 4, U32.Size())
}

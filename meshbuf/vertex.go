// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuf

import (
	"encoding/binary"
	"math"

	"cogentcore.org/meshbake/math32"
)

const (
	// VertexSize is the size in bytes of one packed vertex record:
	// position (3 x float32), uv (2 x float32) and color (4 x float32).
	VertexSize = 4*3 + 4*2 + 4*4

	// IndexSize is the size in bytes of one index value (uint32).
	IndexSize = 4

	// IndexAlign is the byte boundary that the index region starts on.
	IndexAlign = 0x100
)

// Vertex is one mesh vertex, in the order it is packed into a [Buffer].
type Vertex struct {
	Pos   math32.Vector3
	UV    math32.Vector2
	Color math32.Vector4
}

// NewVertex returns an opaque vertex at pos with texture coordinates uv
// and rgb color.
func NewVertex(pos math32.Vector3, uv math32.Vector2, rgb math32.Vector3) Vertex {
	return Vertex{Pos: pos, UV: uv, Color: math32.Vector4FromVector3(rgb, 1)}
}

// floats returns the record fields in packing order.
func (vt Vertex) floats() [9]float32 {
	return [9]float32{
		vt.Pos.X, vt.Pos.Y, vt.Pos.Z,
		vt.UV.X, vt.UV.Y,
		vt.Color.X, vt.Color.Y, vt.Color.Z, vt.Color.W,
	}
}

// Encode writes the vertex as little-endian float32 values into
// dst, which must be at least [VertexSize] bytes long.
func (vt Vertex) Encode(dst []byte) {
	_ = dst[VertexSize-1]
	for i, f := range vt.floats() {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

// DecodeVertex reads a vertex record from the first [VertexSize]
// bytes of src.
func DecodeVertex(src []byte) Vertex {
	_ = src[VertexSize-1]
	var f [9]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return Vertex{
		Pos:   math32.Vec3(f[0], f[1], f[2]),
		UV:    math32.Vec2(f[3], f[4]),
		Color: math32.Vec4(f[5], f[6], f[7], f[8]),
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshbuf packs mesh geometry into a single binary blob holding
// an interleaved vertex region followed by a 256-byte aligned uint32
// index region, and describes where each region lives.
//
// A [Buffer] is sized once from declared vertex and index counts. Its
// layout is fixed at construction, so [Buffer.Describe] can be called
// at any time. Writes are sequential and bounds checked: a call that
// would go past the declared counts fails with [ErrBufferOverflow]
// and writes nothing.
//
// Layout, little-endian throughout:
//
//	[0, VertexEnd)           NumVertex records of VertexSize bytes
//	[VertexEnd, IndexStart)  zero padding up to the next IndexAlign boundary
//	[IndexStart, Len)        NumIndex uint32 vertex indexes
package meshbuf

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/meshbake/base/errors"
	"cogentcore.org/meshbake/math32"
)

var (
	// ErrBufferOverflow is returned when a write would exceed the
	// declared vertex or index count of a [Buffer].
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrIndexRange is returned when an index does not reference
	// one of the declared vertex slots.
	ErrIndexRange = errors.New("index out of vertex range")

	// ErrPersisted is returned when writing to a [Buffer] that has
	// already been persisted or was opened from persisted data.
	ErrPersisted = errors.New("buffer is read-only")
)

// Layout returns the byte offsets of a buffer holding numVertex
// vertices and numIndex indexes: the end of the vertex region,
// the start of the index region, and the total size.
func Layout(numVertex, numIndex int) (vertexEnd, indexStart, size int) {
	vertexEnd = numVertex * VertexSize
	indexStart = Align(vertexEnd, IndexAlign)
	size = indexStart + numIndex*IndexSize
	return
}

// Buffer is a single mesh buffer being populated by a generator.
// It is not safe for concurrent use; each generator owns its own.
type Buffer struct {

	// ID is the buffer id that descriptors refer to.
	ID uint32

	data []byte

	numVertex  int
	numIndex   int
	vertexEnd  int
	indexStart int

	// next free vertex slot and index slot
	vtxOff int
	idxOff int

	readOnly bool
}

// NewBuffer allocates a zeroed buffer for exactly numVertex vertices
// and numIndex indexes, referred to in descriptors by bufferID.
// It panics if either count is negative.
func NewBuffer(numVertex, numIndex int, bufferID uint32) *Buffer {
	if numVertex < 0 || numIndex < 0 {
		panic(fmt.Sprintf("meshbuf.NewBuffer: negative count (%d vertices, %d indexes)", numVertex, numIndex))
	}
	b := &Buffer{ID: bufferID, numVertex: numVertex, numIndex: numIndex}
	var size int
	b.vertexEnd, b.indexStart, size = Layout(numVertex, numIndex)
	b.data = make([]byte, size)
	return b
}

// NumVertex returns the declared number of vertices.
func (b *Buffer) NumVertex() int { return b.numVertex }

// NumIndex returns the declared number of indexes.
func (b *Buffer) NumIndex() int { return b.numIndex }

// VertexCount returns the number of vertices written so far.
func (b *Buffer) VertexCount() int { return b.vtxOff }

// IndexCount returns the number of indexes written so far.
func (b *Buffer) IndexCount() int { return b.idxOff }

// Full returns whether every declared vertex and index has been written.
func (b *Buffer) Full() bool {
	return b.vtxOff == b.numVertex && b.idxOff == b.numIndex
}

// VertexEnd returns the byte offset one past the vertex region.
func (b *Buffer) VertexEnd() int { return b.vertexEnd }

// IndexStart returns the byte offset of the index region,
// always a multiple of [IndexAlign].
func (b *Buffer) IndexStart() int { return b.indexStart }

// Len returns the total size of the buffer in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the raw buffer contents. The slice aliases the buffer
// and must not be modified.
func (b *Buffer) Bytes() []byte { return b.data }

// Vertex writes one vertex record at the next free vertex slot and
// returns the slot index.
func (b *Buffer) Vertex(x, y, z, u, v, r, g, bl, a float32) (uint32, error) {
	return b.AddVertex(Vertex{
		Pos:   math32.Vec3(x, y, z),
		UV:    math32.Vec2(u, v),
		Color: math32.Vec4(r, g, bl, a),
	})
}

// AddVertex writes vt at the next free vertex slot and returns the
// slot index. It returns an error wrapping [ErrBufferOverflow] if all
// declared vertices have already been written.
func (b *Buffer) AddVertex(vt Vertex) (uint32, error) {
	if b.readOnly {
		return 0, fmt.Errorf("meshbuf: vertex: %w", ErrPersisted)
	}
	if b.vtxOff >= b.numVertex {
		return 0, fmt.Errorf("meshbuf: vertex %d: %w (declared %d vertices)", b.vtxOff, ErrBufferOverflow, b.numVertex)
	}
	idx := b.vtxOff
	off := idx * VertexSize
	vt.Encode(b.data[off : off+VertexSize])
	b.vtxOff++
	return uint32(idx), nil
}

// Indices appends the given indexes to the index region, after the ones
// written by previous calls. Three consecutive indexes form a triangle.
// If the whole batch does not fit in the declared index count, or any
// index does not reference a declared vertex slot, nothing is written.
func (b *Buffer) Indices(idxs ...uint32) error {
	if b.readOnly {
		return fmt.Errorf("meshbuf: indices: %w", ErrPersisted)
	}
	if b.idxOff+len(idxs) > b.numIndex {
		return fmt.Errorf("meshbuf: indices %d..%d: %w (declared %d indexes)", b.idxOff, b.idxOff+len(idxs)-1, ErrBufferOverflow, b.numIndex)
	}
	for _, ix := range idxs {
		if int64(ix) >= int64(b.numVertex) {
			return fmt.Errorf("meshbuf: index %d: %w [0, %d)", ix, ErrIndexRange, b.numVertex)
		}
	}
	off := b.indexStart + b.idxOff*IndexSize
	for i, ix := range idxs {
		binary.LittleEndian.PutUint32(b.data[off+i*IndexSize:], ix)
	}
	b.idxOff += len(idxs)
	return nil
}

// VertexAt decodes the vertex record in slot i.
// It panics if i is not a declared vertex slot.
func (b *Buffer) VertexAt(i int) Vertex {
	if i < 0 || i >= b.numVertex {
		panic(fmt.Sprintf("meshbuf.VertexAt: slot %d out of range [0, %d)", i, b.numVertex))
	}
	return DecodeVertex(b.data[i*VertexSize:])
}

// IndexAt returns the i-th index of the index region.
// It panics if i is not a declared index slot.
func (b *Buffer) IndexAt(i int) uint32 {
	if i < 0 || i >= b.numIndex {
		panic(fmt.Sprintf("meshbuf.IndexAt: slot %d out of range [0, %d)", i, b.numIndex))
	}
	return binary.LittleEndian.Uint32(b.data[b.indexStart+i*IndexSize:])
}

// Triangle returns the three vertex indexes of triangle t.
func (b *Buffer) Triangle(t int) (i0, i1, i2 uint32) {
	return b.IndexAt(t * 3), b.IndexAt(t*3 + 1), b.IndexAt(t*3 + 2)
}

// Describe returns the descriptor of this buffer's layout for a mesh
// with the given name and material. It depends only on the declared
// counts and does not read the buffer contents.
func (b *Buffer) Describe(name string, material uint32) Descriptor {
	return Descriptor{
		Name:     name,
		Material: material,
		Bindings: []MeshBinding{{
			Binding: 0,
			View:    BufferView{Buffer: b.ID, Offset: 0, Size: uint32(b.vertexEnd)},
		}},
		Indices: MeshIndices{
			Count:  uint32(b.numIndex),
			Format: U32,
			View:   BufferView{Buffer: b.ID, Offset: uint32(b.indexStart), Size: uint32(b.numIndex * IndexSize)},
		},
	}
}

// WriteTo writes the raw buffer bytes to w, implementing [io.WriterTo].
// After a successful write the buffer no longer accepts vertices or indexes.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	if err == nil && n != len(b.data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), fmt.Errorf("meshbuf: write buffer %d: %w", b.ID, err)
	}
	b.readOnly = true
	return int64(n), nil
}

// Save writes the raw buffer bytes to the named file, creating or
// truncating it.
func (b *Buffer) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("meshbuf: save: %w", err)
	}
	_, err = b.WriteTo(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("meshbuf: save: %w", cerr)
	}
	if err != nil {
		return err
	}
	slog.Debug("saved mesh buffer", "file", filename, "buffer", b.ID, "bytes", len(b.data))
	return nil
}

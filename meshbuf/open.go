// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshbuf

import (
	"encoding/binary"
	"fmt"
	"os"

	"cogentcore.org/meshbake/base/errors"
)

// ErrLayout is returned when persisted data does not match the
// layout its descriptor claims.
var ErrLayout = errors.New("buffer does not match descriptor")

// Open checks that data is a complete buffer laid out as described by d
// and returns a read-only [Buffer] over it. Every index is checked to
// reference a vertex slot.
func Open(data []byte, d Descriptor) (*Buffer, error) {
	vv, ok := d.VertexView()
	if !ok {
		return nil, fmt.Errorf("meshbuf: open %q: %w: no vertex binding", d.Name, ErrLayout)
	}
	iv := d.Indices.View
	switch {
	case vv.Buffer != iv.Buffer:
		return nil, fmt.Errorf("meshbuf: open %q: %w: vertex buffer %d != index buffer %d", d.Name, ErrLayout, vv.Buffer, iv.Buffer)
	case vv.Offset != 0 || vv.Size%VertexSize != 0:
		return nil, fmt.Errorf("meshbuf: open %q: %w: vertex view %+v is not whole records at offset 0", d.Name, ErrLayout, vv)
	case d.Indices.Format != U32:
		return nil, fmt.Errorf("meshbuf: open %q: %w: index format %v", d.Name, ErrLayout, d.Indices.Format)
	}
	numVertex := int(vv.Size) / VertexSize
	numIndex := int(d.Indices.Count)
	vertexEnd, indexStart, size := Layout(numVertex, numIndex)
	switch {
	case int(iv.Offset) != indexStart || int(iv.Size) != numIndex*IndexSize:
		return nil, fmt.Errorf("meshbuf: open %q: %w: index view %+v, want offset %d size %d", d.Name, ErrLayout, iv, indexStart, numIndex*IndexSize)
	case len(data) != size:
		return nil, fmt.Errorf("meshbuf: open %q: %w: %d bytes, want %d", d.Name, ErrLayout, len(data), size)
	}
	b := &Buffer{
		ID:         vv.Buffer,
		data:       data,
		numVertex:  numVertex,
		numIndex:   numIndex,
		vertexEnd:  vertexEnd,
		indexStart: indexStart,
		vtxOff:     numVertex,
		idxOff:     numIndex,
		readOnly:   true,
	}
	for i := range numIndex {
		ix := binary.LittleEndian.Uint32(data[indexStart+i*IndexSize:])
		if int64(ix) >= int64(numVertex) {
			return nil, fmt.Errorf("meshbuf: open %q: index %d = %d: %w [0, %d)", d.Name, i, ix, ErrIndexRange, numVertex)
		}
	}
	return b, nil
}

// OpenFile reads the named buffer file and opens it with [Open].
func OpenFile(filename string, d Descriptor) (*Buffer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("meshbuf: %w", err)
	}
	return Open(data, d)
}

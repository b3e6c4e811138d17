// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vshape provides procedural mesh generators that write
// their geometry into a [meshbuf.Buffer].
//
// A generator declares its exact vertex and index counts with N, so
// that the buffer can be allocated once, and then writes every vertex
// and index in Set. [Build] does both and checks the result.
package vshape

import (
	"fmt"

	"cogentcore.org/meshbake/base/errors"
	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/meshbuf"
)

// ErrIncomplete is returned by [Build] when a shape writes fewer
// vertices or indexes than it declared.
var ErrIncomplete = errors.New("shape did not fill its buffer")

// Shape is an interface for all shape-constructing elements
type Shape interface {

	// N returns number of vertex, index points in this shape element
	N() (numVertex, nIndex int)

	// Set writes the vertices and indexes of the shape into b,
	// in the order the shape defines.
	Set(b *meshbuf.Buffer) error

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// Validator is implemented by shapes whose parameters can be invalid.
type Validator interface {
	Validate() error
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// BBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// addVertex writes one opaque vertex offset by Pos and grows the bounding box.
func (sb *ShapeBase) addVertex(b *meshbuf.Buffer, pos math32.Vector3, uv math32.Vector2, rgb math32.Vector3) (uint32, error) {
	pos = pos.Add(sb.Pos)
	sb.CBBox.ExpandByPoint(pos)
	return b.AddVertex(meshbuf.NewVertex(pos, uv, rgb))
}

// Build allocates a buffer sized for sh, writes sh into it and
// returns it. The buffer is referred to in descriptors by bufferID.
func Build(sh Shape, bufferID uint32) (*meshbuf.Buffer, error) {
	if v, ok := sh.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	nv, ni := sh.N()
	b := meshbuf.NewBuffer(nv, ni, bufferID)
	if err := sh.Set(b); err != nil {
		return nil, fmt.Errorf("vshape: %T: %w", sh, err)
	}
	if !b.Full() {
		return nil, fmt.Errorf("vshape: %T: %w: wrote %d/%d vertices, %d/%d indexes", sh, ErrIncomplete, b.VertexCount(), nv, b.IndexCount(), ni)
	}
	return b, nil
}

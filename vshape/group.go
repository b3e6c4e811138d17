// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vshape

import "cogentcore.org/meshbake/meshbuf"

// Group is a group of shapes written one after another into the same
// buffer, as a single mesh.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// NewGroup returns a group of the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// N returns the summed N's of the shapes in the group.
func (gp *Group) N() (numVertex, nIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.N()
		numVertex += nv
		nIndex += ni
	}
	return
}

// Validate validates each shape in the group that can be validated.
func (gp *Group) Validate() error {
	for _, sh := range gp.Shapes {
		if v, ok := sh.(Validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set writes each shape in order. Shapes index the vertex slots the
// buffer hands back to them, so they need no offsets.
func (gp *Group) Set(b *meshbuf.Buffer) error {
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		if err := sh.Set(b); err != nil {
			return err
		}
		gp.CBBox.ExpandByBox(sh.BBox())
	}
	return nil
}

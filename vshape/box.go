// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vshape

import (
	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/meshbuf"
)

// boxFaces are the outward normal and up direction of each box face.
var boxFaces = [6][2]math32.Vector3{
	{math32.XPos, math32.YPos},
	{math32.XNeg, math32.YPos},
	{math32.YPos, math32.ZPos},
	{math32.YNeg, math32.ZPos},
	{math32.ZPos, math32.YPos},
	{math32.ZNeg, math32.YPos},
}

// Box is a rectangular-shaped solid (cuboid) with four vertices per face,
// so that each face has its own texture coordinates.
// Vertex colors map each corner of the unit cube to RGB.
type Box struct {
	ShapeBase

	// size along each dimension
	Size math32.Vector3
}

// NewBox returns a Box shape with given size
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

// Defaults sets the size to 2 along each dimension: the cube
// spanning -1 to 1 on every axis.
func (bx *Box) Defaults() {
	bx.Size.Set(2, 2, 2)
}

func (bx *Box) N() (numVertex, nIndex int) {
	return BoxN()
}

// BoxN returns the N's for a box: 4 vertices and 6 indexes per face.
func BoxN() (numVertex, nIndex int) {
	return 4 * len(boxFaces), 6 * len(boxFaces)
}

// Set writes the box faces in the order +X, -X, +Y, -Y, +Z, -Z.
// Each face is two counter-clockwise triangles, as seen from outside:
// (top-left, bottom-left, top-right) and (top-right, bottom-left, bottom-right).
func (bx *Box) Set(b *meshbuf.Buffer) error {
	bx.CBBox.SetEmpty()
	hSz := bx.Size.MulScalar(0.5)
	uvs := [4]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	for _, f := range boxFaces {
		out, up := f[0], f[1]
		right := up.Cross(out)
		corners := [4]math32.Vector3{
			out.Add(up).Sub(right), // tl
			out.Add(up).Add(right), // tr
			out.Sub(up).Sub(right), // bl
			out.Sub(up).Add(right), // br
		}
		var vi [4]uint32
		for i, c := range corners {
			clr := c.Add(math32.Vector3Scalar(1)).MulScalar(0.5)
			idx, err := bx.addVertex(b, c.Mul(hSz), uvs[i], clr)
			if err != nil {
				return err
			}
			vi[i] = idx
		}
		tl, tr, bl, br := vi[0], vi[1], vi[2], vi[3]
		if err := b.Indices(tl, bl, tr, tr, bl, br); err != nil {
			return err
		}
	}
	return nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vshape

import (
	"fmt"

	"cogentcore.org/meshbake/hsl"
	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/meshbuf"
)

// Torus is a torus mesh lying in the XZ plane, defined by the radius of
// the ring and the radius of the tube swept around it.
//
// The vertex grid includes both ends of each loop, so the seam vertices
// at the last ring and tube step are duplicates of the first ones rather
// than shared with them. Their texture coordinates differ (u or v = 1
// instead of 0), and consumers rely on that, so the mesh is intentionally
// not closed at the seams.
type Torus struct {
	ShapeBase

	// number of segments around the ring, at least 1
	OuterCount int

	// radius of the ring, from the center of the torus to the center of the tube
	OuterRadius float32

	// number of segments around the tube, at least 1
	InnerCount int

	// radius of the tube
	InnerRadius float32
}

// NewTorus returns a Torus mesh with the specified ring and tube
// segment counts and radii.
func NewTorus(outerCount int, outerRadius float32, innerCount int, innerRadius float32) *Torus {
	return &Torus{OuterCount: outerCount, OuterRadius: outerRadius, InnerCount: innerCount, InnerRadius: innerRadius}
}

func (tr *Torus) Defaults() {
	tr.OuterCount = 24
	tr.OuterRadius = 1
	tr.InnerCount = 12
	tr.InnerRadius = 0.25
}

// Validate returns an error if either segment count is less than 1.
func (tr *Torus) Validate() error {
	if tr.OuterCount < 1 || tr.InnerCount < 1 {
		return fmt.Errorf("vshape: torus segment counts must be at least 1, got outer %d inner %d", tr.OuterCount, tr.InnerCount)
	}
	return nil
}

func (tr *Torus) N() (numVertex, nIndex int) {
	return TorusN(tr.OuterCount, tr.InnerCount)
}

// TorusN returns N's for a torus geometry with the given
// number of ring and tube segments.
func TorusN(outerCount, innerCount int) (numVertex, nIndex int) {
	numVertex = (outerCount + 1) * (innerCount + 1)
	nIndex = outerCount * innerCount * 6
	return
}

// Set writes the torus grid ring step by ring step, each ring step being
// one full loop around the tube. Vertex colors run through the hues
// around the ring and get less saturated around the tube.
func (tr *Torus) Set(b *meshbuf.Buffer) error {
	if err := tr.Validate(); err != nil {
		return err
	}
	tr.CBBox.SetEmpty()
	tube := math32.XPos.MulScalar(tr.InnerRadius)
	ring := math32.XPos.MulScalar(tr.OuterRadius)
	first := uint32(0)
	for o := 0; o <= tr.OuterCount; o++ {
		u := float32(o) / float32(tr.OuterCount)
		oa := -u * 2 * math32.Pi
		for i := 0; i <= tr.InnerCount; i++ {
			v := float32(i) / float32(tr.InnerCount)
			ia := v * 2 * math32.Pi
			pos := tube.RotateZ(ia).Add(ring).RotateY(oa)
			idx, err := tr.addVertex(b, pos, math32.Vec2(u, v), hsl.RGB(oa, 1-v, 0.5))
			if err != nil {
				return err
			}
			if o == 0 && i == 0 {
				first = idx
			}
		}
	}

	stride := uint32(tr.InnerCount + 1)
	for o := range tr.OuterCount {
		for i := range tr.InnerCount {
			vtl := first + uint32(o)*stride + uint32(i)
			vtr, vbl := vtl+stride, vtl+1
			vbr := vtr + 1
			if err := b.Indices(vtl, vbl, vtr, vtr, vbl, vbr); err != nil {
				return err
			}
		}
	}
	return nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"cogentcore.org/meshbake/base/tolassert"
	"cogentcore.org/meshbake/math32"
	"github.com/stretchr/testify/assert"
)

func assertRGB(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-5)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-5)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-5)
}

func TestRGB(t *testing.T) {
	assertRGB(t, math32.Vec3(1, 0, 0), RGB(0, 1, 0.5))
	assertRGB(t, math32.Vec3(0, 1, 0), RGB(2*math32.Pi/3, 1, 0.5))
	assertRGB(t, math32.Vec3(0, 0, 1), RGB(4*math32.Pi/3, 1, 0.5))
	assertRGB(t, math32.Vec3(1, 1, 0), RGB(math32.Pi/3, 1, 0.5))

	// no saturation is gray at the given lightness
	assertRGB(t, math32.Vec3(0.3, 0.3, 0.3), RGB(1.234, 0, 0.3))
	assertRGB(t, math32.Vec3(1, 1, 1), RGB(2, 1, 1))
	assertRGB(t, math32.Vec3(0, 0, 0), RGB(2, 1, 0))

	// half saturation, half lightness red
	assertRGB(t, math32.Vec3(0.75, 0.25, 0.25), RGB(0, 0.5, 0.5))
}

func TestRGBNegativeHue(t *testing.T) {
	// The hue is not wrapped before the remainder, so -π/2 is not
	// the same as 3π/2 (violet): the red channel saturates.
	assertRGB(t, math32.Vec3(1, 0, 1), RGB(-math32.Pi/2, 1, 0.5))
	assertRGB(t, math32.Vec3(0.5, 0, 1), RGB(3*math32.Pi/2, 1, 0.5))

	// a full negative turn leaves every channel below zero before
	// clamping, so it comes out white rather than red
	assertRGB(t, math32.Vec3(1, 1, 1), RGB(-2*math32.Pi, 1, 0.5))
}

func TestHSL(t *testing.T) {
	h := New(0, 1, 0.5)
	assert.Equal(t, HSL{0, 1, 0.5, 1}, h)
	assertRGB(t, math32.Vec3(1, 0, 0), h.RGB())
	assert.Equal(t, float32(1), h.Vector4().W)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, h.AsRGBA())
	assert.Equal(t, "hsl(0, 1, 0.5)", h.String())
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl converts hue, saturation, lightness colors to
// red, green, blue vertex colors.
//
// The hue is an angle in radians that is fed to the conversion
// directly, without first being wrapped into [0, 2π). Negative
// hues therefore do not land on the same color as their positive
// equivalent, and meshes baked with this package depend on that.
package hsl

import (
	"fmt"
	"image/color"

	"cogentcore.org/meshbake/math32"
)

// HSL represents a color in the hue, saturation, lightness color space,
// with an alpha channel.
type HSL struct {

	// the hue of the color, in radians
	H float32

	// the saturation of the color, on a 0-1 scale
	S float32

	// the lightness of the color, on a 0-1 scale
	L float32

	// the transparency of the color, on a 0-1 scale
	A float32
}

// New returns a new opaque HSL color from the given hue,
// saturation and lightness values.
func New(hue, saturation, lightness float32) HSL {
	return HSL{H: hue, S: saturation, L: lightness, A: 1}
}

// RGB returns the red, green and blue channels of the color
// with hue h (in radians), saturation s and lightness l as the
// X, Y and Z components of a vector, each on a 0-1 scale.
func RGB(h, s, l float32) math32.Vector3 {
	a := s * math32.Min(l, 1-l)
	hk := h * 6 / math32.Pi
	f := func(n float32) float32 {
		k := math32.Mod(n+hk, 12)
		return l - a*math32.Clamp(math32.Min(k-3, 9-k), -1, 1)
	}
	return math32.Vec3(f(0), f(8), f(4))
}

// RGB returns the red, green and blue channels of the color.
func (h HSL) RGB() math32.Vector3 {
	return RGB(h.H, h.S, h.L)
}

// Vector4 returns the color as R, G, B, A components of a vector.
func (h HSL) Vector4() math32.Vector4 {
	return math32.Vector4FromVector3(h.RGB(), h.A)
}

// AsRGBA returns the color as a non-premultiplied [color.RGBA] value,
// clamping each channel to its valid range.
func (h HSL) AsRGBA() color.RGBA {
	c := h.Vector4()
	u8 := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{u8(c.X), u8(c.Y), u8(c.Z), u8(c.W)}
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

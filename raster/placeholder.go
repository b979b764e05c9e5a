// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

var (
	placeholderFill   = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	placeholderBorder = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	placeholderCross  = color.RGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}
)

// Placeholder returns the visible stand-in for an image that could not be
// decoded: a grey field with a border and a red cross. The raster carries
// PropBrokenImage.
func Placeholder(r image.Rectangle) Raster {
	buf := NewBuffer(r, FormatRGBAPremul)
	if buf.Empty() {
		return FreezeWith(buf, map[string]any{PropBrokenImage: true})
	}
	buf.Fill(placeholderFill)

	w, h := r.Dx(), r.Dy()
	for x := r.Min.X; x < r.Max.X; x++ {
		buf.Set(x, r.Min.Y, placeholderBorder)
		buf.Set(x, r.Max.Y-1, placeholderBorder)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		buf.Set(r.Min.X, y, placeholderBorder)
		buf.Set(r.Max.X-1, y, placeholderBorder)
	}

	// Diagonals, stepped along the longer side so the lines are unbroken.
	n := max(w, h)
	for i := range n {
		x := r.Min.X + i*w/n
		y := r.Min.Y + i*h/n
		buf.Set(x, y, placeholderCross)
		buf.Set(r.Max.X-1-(x-r.Min.X), y, placeholderCross)
	}
	return FreezeWith(buf, map[string]any{PropBrokenImage: true})
}

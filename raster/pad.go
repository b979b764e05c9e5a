// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// PadMode selects how pixels outside the source are synthesized.
type PadMode uint8

const (
	// PadZero fills with transparent black.
	PadZero PadMode = iota

	// PadReplicate repeats the nearest edge pixel of the source.
	PadReplicate
)

type padded struct {
	src    Raster
	bounds image.Rectangle
	mode   PadMode
	grid   TileGrid
}

// Pad returns a raster covering exactly r: src is cropped to r and the
// part of r outside src is filled according to mode.
func Pad(src Raster, r image.Rectangle, mode PadMode) Raster {
	if src.Bounds() == r && mode == PadZero {
		return src
	}
	return &padded{src: src, bounds: r, mode: mode, grid: NewTileGrid(r, DefaultTileSize, DefaultTileSize)}
}

func (p *padded) Bounds() image.Rectangle  { return p.bounds }
func (p *padded) Format() Format           { return p.src.Format() }
func (p *padded) SampleModel() SampleModel { return SampleModelOf(p.src.Format()) }
func (p *padded) TileGrid() TileGrid       { return p.grid }

func (p *padded) Data(r image.Rectangle) *Buffer {
	return pull(p, r)
}

func (p *padded) Property(key string) (any, bool) {
	return p.src.Property(key)
}

func (p *padded) CopyTo(dst *Buffer) *Buffer {
	need := dst.Rect.Intersect(p.bounds)
	if need.Empty() {
		return dst
	}
	sb := p.src.Bounds()
	if p.mode == PadReplicate && !sb.Empty() {
		p.replicate(dst, need, sb)
		return dst
	}
	view := dst.SubBuffer(need)
	inner := need.Intersect(sb)
	if inner != need {
		view.Clear()
	}
	if !inner.Empty() {
		p.src.CopyTo(view.SubBuffer(inner))
	}
	return dst
}

// replicate fills need by clamping every coordinate into sb.
func (p *padded) replicate(dst *Buffer, need, sb image.Rectangle) {
	// Project need onto the source so the edge rows and columns are pulled.
	proj := image.Rect(
		clampInt(need.Min.X, sb.Min.X, sb.Max.X-1), clampInt(need.Min.Y, sb.Min.Y, sb.Max.Y-1),
		clampInt(need.Max.X-1, sb.Min.X, sb.Max.X-1)+1, clampInt(need.Max.Y-1, sb.Min.Y, sb.Max.Y-1)+1,
	)
	src := Convert(p.src.Data(proj), dst.Format)
	bpp := dst.Format.BytesPerPixel()
	for y := need.Min.Y; y < need.Max.Y; y++ {
		sy := clampInt(y, proj.Min.Y, proj.Max.Y-1)
		d := dst.PixOffset(need.Min.X, y)
		for x := need.Min.X; x < need.Max.X; x++ {
			s := src.PixOffset(clampInt(x, proj.Min.X, proj.Max.X-1), sy)
			copy(dst.Pix[d:d+bpp], src.Pix[s:s+bpp])
			d += bpp
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

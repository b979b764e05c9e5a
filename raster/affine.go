// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/fx"
)

// Interpolator returns the x/image/draw resampler for an interpolation hint.
func Interpolator(i fx.Interpolation) draw.Interpolator {
	switch i {
	case fx.InterpNearest:
		return draw.NearestNeighbor
	case fx.InterpBicubic:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

type affine struct {
	src    Raster
	m      fx.Matrix
	inv    fx.Matrix
	interp draw.Interpolator
	bounds image.Rectangle
	grid   TileGrid
}

// Affine returns src mapped through m (source device space to output
// device space) and resampled with interp.
//
// When m is not invertible the reverse mapping falls back to the identity
// and the result is src unchanged. Integer translations are copied
// without resampling.
func Affine(src Raster, m fx.Matrix, interp fx.Interpolation) Raster {
	inv, ok := m.Invert()
	if !ok || m.IsIdentity() {
		return src
	}
	if m.IsIntegerTranslation() {
		return Translate(src, int(m.C), int(m.F))
	}
	bounds := m.TransformRect(fx.RectFromImage(src.Bounds())).Device()
	return &affine{
		src:    src,
		m:      m,
		inv:    inv,
		interp: Interpolator(interp),
		bounds: bounds,
		grid:   NewTileGrid(bounds, DefaultTileSize, DefaultTileSize),
	}
}

func (a *affine) Bounds() image.Rectangle  { return a.bounds }
func (a *affine) Format() Format           { return FormatRGBAPremul }
func (a *affine) SampleModel() SampleModel { return SampleModelOf(FormatRGBAPremul) }
func (a *affine) TileGrid() TileGrid       { return a.grid }

func (a *affine) Data(r image.Rectangle) *Buffer {
	return pull(a, r)
}

func (a *affine) Property(key string) (any, bool) {
	return a.src.Property(key)
}

func (a *affine) CopyTo(dst *Buffer) *Buffer {
	need := dst.Rect.Intersect(a.bounds)
	if need.Empty() {
		return dst
	}
	// Two extra pixels on each side cover the widest resampling kernel.
	srcRect := a.inv.TransformRect(fx.RectFromImage(need)).Device().Inset(-2).Intersect(a.src.Bounds())
	out := dst.SubBuffer(need)
	if srcRect.Empty() {
		out.Clear()
		return dst
	}
	s := Convert(a.src.Data(srcRect), FormatRGBAPremul)

	// Both buffers carry their device origin, so m applies unchanged.
	tmp := out
	if out.Format != FormatRGBAPremul {
		tmp = NewBuffer(need, FormatRGBAPremul)
	} else {
		tmp.Clear()
	}
	a.interp.Transform(tmp.RGBA(), a.m.Aff3(), s.RGBA(), srcRect, draw.Src, nil)
	if tmp != out {
		Copy(out, tmp)
	}
	return dst
}

type translated struct {
	src    Raster
	dx, dy int
	bounds image.Rectangle
	grid   TileGrid
}

// Translate returns src moved by whole device pixels. No resampling takes
// place, so every pixel is reproduced exactly.
func Translate(src Raster, dx, dy int) Raster {
	if dx == 0 && dy == 0 {
		return src
	}
	b := src.Bounds().Add(image.Point{X: dx, Y: dy})
	return &translated{src: src, dx: dx, dy: dy, bounds: b, grid: NewTileGrid(b, DefaultTileSize, DefaultTileSize)}
}

func (t *translated) Bounds() image.Rectangle  { return t.bounds }
func (t *translated) Format() Format           { return t.src.Format() }
func (t *translated) SampleModel() SampleModel { return t.src.SampleModel() }
func (t *translated) TileGrid() TileGrid       { return t.grid }

func (t *translated) Data(r image.Rectangle) *Buffer {
	return pull(t, r)
}

func (t *translated) Property(key string) (any, bool) {
	return t.src.Property(key)
}

func (t *translated) CopyTo(dst *Buffer) *Buffer {
	need := dst.Rect.Intersect(t.bounds)
	if need.Empty() {
		return dst
	}
	// Present the destination to the source in source coordinates.
	view := dst.SubBuffer(need).Translate(-t.dx, -t.dy)
	t.src.CopyTo(view)
	return dst
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"sync"

	"github.com/anthonynsimon/bild/clone"
)

// wrapped adapts a decoded image.Image. Nothing is copied until pixels are
// pulled; images without a matching Format are normalized to premultiplied
// RGBA once, on first access.
type wrapped struct {
	img  image.Image
	grid TileGrid

	once sync.Once
	view *Buffer
}

// Wrap adapts img as a Raster without copying. *image.RGBA, *image.NRGBA,
// *image.Alpha and *image.Gray are read in place; the source must not be
// modified afterwards.
func Wrap(img image.Image) Raster {
	return &wrapped{img: img, grid: NewTileGrid(img.Bounds(), DefaultTileSize, DefaultTileSize)}
}

// bufferView returns a Buffer sharing img's pixels, or nil when img has no
// directly addressable Format.
func bufferView(img image.Image) *Buffer {
	switch m := img.(type) {
	case *image.RGBA:
		return &Buffer{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect, Format: FormatRGBAPremul}
	case *image.NRGBA:
		return &Buffer{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect, Format: FormatRGBA8}
	case *image.Alpha:
		return &Buffer{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect, Format: FormatAlpha8}
	case *image.Gray:
		return &Buffer{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect, Format: FormatGray8}
	case *Buffer:
		return m
	}
	return nil
}

func (w *wrapped) buffer() *Buffer {
	w.once.Do(func() {
		if v := bufferView(w.img); v != nil {
			w.view = v
			return
		}
		rgba := clone.AsRGBA(w.img)
		// Pin the copy to the source position in case it was rebased.
		w.view = &Buffer{
			Pix:    rgba.Pix,
			Stride: rgba.Stride,
			Rect:   rgba.Rect.Add(w.img.Bounds().Min.Sub(rgba.Rect.Min)),
			Format: FormatRGBAPremul,
		}
	})
	return w.view
}

func (w *wrapped) Bounds() image.Rectangle { return w.img.Bounds() }

func (w *wrapped) Format() Format {
	if v := bufferView(w.img); v != nil {
		return v.Format
	}
	return FormatRGBAPremul
}

func (w *wrapped) SampleModel() SampleModel { return SampleModelOf(w.Format()) }
func (w *wrapped) TileGrid() TileGrid       { return w.grid }

func (w *wrapped) Data(r image.Rectangle) *Buffer {
	return pull(w, r)
}

func (w *wrapped) CopyTo(dst *Buffer) *Buffer {
	Copy(dst, w.buffer())
	return dst
}

func (w *wrapped) Property(string) (any, bool) { return nil, false }

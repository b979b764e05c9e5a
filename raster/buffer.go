// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// Common errors for buffer construction.
var (
	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("raster: invalid format")

	// ErrInvalidStride is returned when stride is less than a packed row.
	ErrInvalidStride = errors.New("raster: stride too small for width")

	// ErrDataTooSmall is returned when pixel data is shorter than required.
	ErrDataTooSmall = errors.New("raster: data buffer too small")
)

// Buffer is a writable rectangle of pixels with an explicit logical origin.
//
// The pixel at (x, y) starts at Pix[(y-Rect.Min.Y)*Stride +
// (x-Rect.Min.X)*BytesPerPixel]; this is the same addressing as the
// standard library image types, so views can share Pix without copying.
//
// Buffer implements draw.Image. A Buffer that has been passed to Freeze
// must not be written again.
type Buffer struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	Format Format
}

// NewBuffer allocates a zeroed buffer covering r. An empty r yields a valid
// buffer with no pixels.
func NewBuffer(r image.Rectangle, f Format) *Buffer {
	r = r.Canon()
	if r.Empty() {
		return &Buffer{Rect: image.Rectangle{Min: r.Min, Max: r.Min}, Format: f}
	}
	stride := f.RowBytes(r.Dx())
	return &Buffer{
		Pix:    make([]byte, stride*r.Dy()),
		Stride: stride,
		Rect:   r,
		Format: f,
	}
}

// FromPix wraps existing pixel data without copying.
func FromPix(pix []byte, stride int, r image.Rectangle, f Format) (*Buffer, error) {
	if !f.IsValid() {
		return nil, ErrInvalidFormat
	}
	if r.Empty() {
		return &Buffer{Rect: r, Format: f}, nil
	}
	if stride < f.RowBytes(r.Dx()) {
		return nil, ErrInvalidStride
	}
	if len(pix) < stride*(r.Dy()-1)+f.RowBytes(r.Dx()) {
		return nil, ErrDataTooSmall
	}
	return &Buffer{Pix: pix, Stride: stride, Rect: r, Format: f}, nil
}

// Empty reports whether the buffer holds no pixels.
func (b *Buffer) Empty() bool {
	return b.Rect.Empty()
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*b.Format.BytesPerPixel()
}

// Row returns the bytes of row y between Rect.Min.X and Rect.Max.X.
func (b *Buffer) Row(y int) []byte {
	off := (y - b.Rect.Min.Y) * b.Stride
	return b.Pix[off : off+b.Format.RowBytes(b.Rect.Dx())]
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return b.Rect
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	switch b.Format {
	case FormatAlpha8:
		return color.AlphaModel
	case FormatGray8:
		return color.GrayModel
	case FormatRGBA8:
		return color.NRGBAModel
	default:
		return color.RGBAModel
	}
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return color.RGBA{}
	}
	i := b.PixOffset(x, y)
	p := b.Pix[i : i+b.Format.BytesPerPixel() : i+b.Format.BytesPerPixel()]
	switch b.Format {
	case FormatAlpha8:
		return color.Alpha{A: p[0]}
	case FormatGray8:
		return color.Gray{Y: p[0]}
	case FormatRGB8:
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	case FormatRGBA8:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	default:
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	r, g, bl, a := c.RGBA()
	b.setPremul(b.PixOffset(x, y), uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
}

// SubBuffer returns a view of the part of b inside r. The view shares
// pixels with b.
func (b *Buffer) SubBuffer(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Rect)
	if r.Empty() {
		return &Buffer{Rect: r, Format: b.Format}
	}
	i := b.PixOffset(r.Min.X, r.Min.Y)
	return &Buffer{
		Pix:    b.Pix[i:],
		Stride: b.Stride,
		Rect:   r,
		Format: b.Format,
	}
}

// Translate returns a view of b whose logical rectangle is moved by
// (dx, dy). Pixel storage is shared.
func (b *Buffer) Translate(dx, dy int) *Buffer {
	v := *b
	v.Rect = b.Rect.Add(image.Point{X: dx, Y: dy})
	return &v
}

// Clone returns a deep copy of b with a packed stride.
func (b *Buffer) Clone() *Buffer {
	c := NewBuffer(b.Rect, b.Format)
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		copy(c.Row(y), b.Row(y))
	}
	return c
}

// Clear zeroes every pixel of b.
func (b *Buffer) Clear() {
	if b.Empty() {
		return
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		clear(b.Row(y))
	}
}

// Fill sets every pixel of b to c.
func (b *Buffer) Fill(c color.Color) {
	if b.Empty() {
		return
	}
	bpp := b.Format.BytesPerPixel()
	r, g, bl, a := c.RGBA()
	px := make([]byte, bpp)
	tmp := Buffer{Pix: px, Stride: bpp, Rect: image.Rect(0, 0, 1, 1), Format: b.Format}
	tmp.setPremul(0, uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))

	first := b.Row(b.Rect.Min.Y)
	for i := 0; i < len(first); i += bpp {
		copy(first[i:i+bpp], px)
	}
	for y := b.Rect.Min.Y + 1; y < b.Rect.Max.Y; y++ {
		copy(b.Row(y), first)
	}
}

// RGBA returns an *image.RGBA sharing b's pixels, or nil when b is not
// FormatRGBAPremul.
func (b *Buffer) RGBA() *image.RGBA {
	if b.Format != FormatRGBAPremul {
		return nil
	}
	return &image.RGBA{Pix: b.Pix, Stride: b.Stride, Rect: b.Rect}
}

// Image returns the fastest standard library view of b. Buffers in
// FormatRGB8 have no standard equivalent and are returned as is.
func (b *Buffer) Image() draw.Image {
	switch b.Format {
	case FormatAlpha8:
		return &image.Alpha{Pix: b.Pix, Stride: b.Stride, Rect: b.Rect}
	case FormatGray8:
		return &image.Gray{Pix: b.Pix, Stride: b.Stride, Rect: b.Rect}
	case FormatRGBA8:
		return &image.NRGBA{Pix: b.Pix, Stride: b.Stride, Rect: b.Rect}
	case FormatRGBAPremul:
		return b.RGBA()
	default:
		return b
	}
}

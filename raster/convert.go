// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// PremultiplyChannel scales a straight-alpha channel by alpha, rounding to
// nearest.
func PremultiplyChannel(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// UnpremultiplyChannel undoes PremultiplyChannel, rounding to nearest.
// For every premultiplied c <= a,
// PremultiplyChannel(UnpremultiplyChannel(c, a), a) == c.
func UnpremultiplyChannel(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// luma returns the Rec. 601 luminance of an 8-bit RGB triple, matching
// color.GrayModel.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}

// premulAt reads the pixel at byte offset off as premultiplied RGBA.
func (b *Buffer) premulAt(off int) (r, g, bl, a uint8) {
	p := b.Pix[off:]
	switch b.Format {
	case FormatAlpha8:
		return 0, 0, 0, p[0]
	case FormatGray8:
		return p[0], p[0], p[0], 0xff
	case FormatRGB8:
		return p[0], p[1], p[2], 0xff
	case FormatRGBA8:
		a = p[3]
		return PremultiplyChannel(p[0], a), PremultiplyChannel(p[1], a), PremultiplyChannel(p[2], a), a
	default:
		return p[0], p[1], p[2], p[3]
	}
}

// setPremul stores a premultiplied RGBA pixel at byte offset off,
// converting to b's format.
func (b *Buffer) setPremul(off int, r, g, bl, a uint8) {
	p := b.Pix[off:]
	switch b.Format {
	case FormatAlpha8:
		p[0] = a
	case FormatGray8:
		p[0] = luma(r, g, bl)
	case FormatRGB8:
		p[0], p[1], p[2] = r, g, bl
	case FormatRGBA8:
		p[0] = UnpremultiplyChannel(r, a)
		p[1] = UnpremultiplyChannel(g, a)
		p[2] = UnpremultiplyChannel(bl, a)
		p[3] = a
	default:
		p[0], p[1], p[2], p[3] = r, g, bl, a
	}
}

// PremulAt returns the premultiplied RGBA value of pixel (x, y), or zero
// outside the buffer.
func (b *Buffer) PremulAt(x, y int) (r, g, bl, a uint8) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return 0, 0, 0, 0
	}
	return b.premulAt(b.PixOffset(x, y))
}

// Copy copies the pixels of src that fall inside dst, converting between
// formats. Pixels of dst outside src are left untouched. It returns the
// rectangle that was written.
func Copy(dst, src *Buffer) image.Rectangle {
	r := dst.Rect.Intersect(src.Rect)
	if r.Empty() {
		return image.Rectangle{}
	}
	if dst.Format == src.Format {
		n := dst.Format.RowBytes(r.Dx())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			d := dst.PixOffset(r.Min.X, y)
			s := src.PixOffset(r.Min.X, y)
			copy(dst.Pix[d:d+n], src.Pix[s:s+n])
		}
		return r
	}
	dbpp := dst.Format.BytesPerPixel()
	sbpp := src.Format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := dst.PixOffset(r.Min.X, y)
		s := src.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, ca := src.premulAt(s)
			dst.setPremul(d, cr, cg, cb, ca)
			d += dbpp
			s += sbpp
		}
	}
	return r
}

// Convert returns src in format f. When src already has format f it is
// returned unchanged; otherwise a new buffer is allocated.
func Convert(src *Buffer, f Format) *Buffer {
	if src.Format == f {
		return src
	}
	dst := NewBuffer(src.Rect, f)
	Copy(dst, src)
	return dst
}

// Premultiply converts a FormatRGBA8 buffer to FormatRGBAPremul in place
// and updates its Format. Other formats are left unchanged. Only buffers
// the caller exclusively owns may be converted in place.
func Premultiply(b *Buffer) {
	if b.Format != FormatRGBA8 || b.Empty() {
		return
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			a := row[i+3]
			row[i] = PremultiplyChannel(row[i], a)
			row[i+1] = PremultiplyChannel(row[i+1], a)
			row[i+2] = PremultiplyChannel(row[i+2], a)
		}
	}
	b.Format = FormatRGBAPremul
}

// Unpremultiply converts a FormatRGBAPremul buffer to FormatRGBA8 in
// place and updates its Format. Other formats are left unchanged.
func Unpremultiply(b *Buffer) {
	if b.Format != FormatRGBAPremul || b.Empty() {
		return
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			a := row[i+3]
			row[i] = UnpremultiplyChannel(row[i], a)
			row[i+1] = UnpremultiplyChannel(row[i+1], a)
			row[i+2] = UnpremultiplyChannel(row[i+2], a)
		}
	}
	b.Format = FormatRGBA8
}

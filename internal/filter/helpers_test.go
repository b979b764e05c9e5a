package filter

import (
	"image"

	"github.com/gogpu/fx/raster"
)

// Test helper functions shared across filter tests.

// solidBuffer creates a premultiplied buffer over r filled with one pixel.
func solidBuffer(r image.Rectangle, cr, cg, cb, ca byte) *raster.Buffer {
	b := raster.NewBuffer(r, raster.FormatRGBAPremul)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = cr, cg, cb, ca
		}
	}
	return b
}

// setPixel writes one premultiplied pixel.
func setPixel(b *raster.Buffer, x, y int, cr, cg, cb, ca byte) {
	i := b.PixOffset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = cr, cg, cb, ca
}

// pixel reads one pixel as stored.
func pixel(b *raster.Buffer, x, y int) [4]byte {
	i := b.PixOffset(x, y)
	return [4]byte{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// gradientBuffer creates a premultiplied buffer with varying color and
// alpha so every pixel differs from its neighbors.
func gradientBuffer(r image.Rectangle) *raster.Buffer {
	b := raster.NewBuffer(r, raster.FormatRGBAPremul)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := byte(64 + (x*7+y*13)%192)
			setPixel(b, x, y,
				raster.PremultiplyChannel(byte(x*37), a),
				raster.PremultiplyChannel(byte(y*53), a),
				raster.PremultiplyChannel(byte(x*y), a),
				a)
		}
	}
	return b
}

// stepEdge creates an opaque white left half and transparent right half.
func stepEdge(r image.Rectangle, edgeX int) *raster.Buffer {
	b := raster.NewBuffer(r, raster.FormatRGBAPremul)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < edgeX; x++ {
			setPixel(b, x, y, 255, 255, 255, 255)
		}
	}
	return b
}

// premulValid reports whether no color channel exceeds alpha.
func premulValid(b *raster.Buffer) bool {
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			if row[i] > row[i+3] || row[i+1] > row[i+3] || row[i+2] > row[i+3] {
				return false
			}
		}
	}
	return true
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremultiplyRoundTrip(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for c := 0; c <= a; c++ {
			straight := UnpremultiplyChannel(uint8(c), uint8(a))
			got := PremultiplyChannel(straight, uint8(a))
			if a == 0 {
				require.Equal(t, uint8(0), got)
				continue
			}
			require.Equalf(t, uint8(c), got, "c=%d a=%d straight=%d", c, a, straight)
		}
	}
}

func TestBufferPremultiplyInPlace(t *testing.T) {
	b := NewBuffer(image.Rect(3, 4, 5, 5), FormatRGBAPremul)
	b.Set(3, 4, color.RGBA{R: 64, G: 32, B: 0, A: 128})
	b.Set(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	want := b.Clone()

	Unpremultiply(b)
	assert.Equal(t, FormatRGBA8, b.Format)
	Premultiply(b)
	assert.Equal(t, FormatRGBAPremul, b.Format)
	assert.Equal(t, want.Pix, b.Pix)
}

func TestCopyConvertsFormats(t *testing.T) {
	src := NewBuffer(image.Rect(0, 0, 2, 1), FormatRGBA8)
	src.Pix = []byte{255, 0, 0, 128, 0, 0, 255, 255}

	t.Run("premul", func(t *testing.T) {
		dst := NewBuffer(src.Rect, FormatRGBAPremul)
		Copy(dst, src)
		assert.Equal(t, []byte{128, 0, 0, 128, 0, 0, 255, 255}, dst.Pix)
	})

	t.Run("alpha", func(t *testing.T) {
		dst := NewBuffer(src.Rect, FormatAlpha8)
		Copy(dst, src)
		assert.Equal(t, []byte{128, 255}, dst.Pix)
	})

	t.Run("gray from opaque blue", func(t *testing.T) {
		dst := NewBuffer(image.Rect(1, 0, 2, 1), FormatGray8)
		Copy(dst, src)
		assert.Equal(t, []byte{29}, dst.Pix)
	})
}

func TestCopyOnlyOverlap(t *testing.T) {
	src := NewBuffer(image.Rect(0, 0, 4, 4), FormatAlpha8)
	src.Fill(color.Alpha{A: 200})
	dst := NewBuffer(image.Rect(2, 2, 6, 6), FormatAlpha8)

	got := Copy(dst, src)
	assert.Equal(t, image.Rect(2, 2, 4, 4), got)
	assert.Equal(t, uint8(200), dst.Pix[dst.PixOffset(3, 3)])
	assert.Equal(t, uint8(0), dst.Pix[dst.PixOffset(4, 4)])
}

package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferOrigin(t *testing.T) {
	b := NewBuffer(image.Rect(10, 20, 14, 22), FormatRGBAPremul)
	require.Len(t, b.Pix, 4*4*2)
	assert.Equal(t, 16, b.Stride)
	assert.Equal(t, 0, b.PixOffset(10, 20))
	assert.Equal(t, 16+4, b.PixOffset(11, 21))

	b.Set(13, 21, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 4}, b.At(13, 21))
	assert.Equal(t, color.RGBA{}, b.At(0, 0), "outside the buffer")
}

func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer(image.Rect(5, 5, 5, 9), FormatAlpha8)
	require.NotNil(t, b)
	assert.True(t, b.Empty())
	assert.Nil(t, b.Pix)
	b.Clear()
	b.Fill(color.White)
}

func TestFromPix(t *testing.T) {
	tests := []struct {
		name   string
		pix    []byte
		stride int
		format Format
		want   error
	}{
		{"ok", make([]byte, 8), 4, FormatRGBAPremul, nil},
		{"bad format", make([]byte, 8), 4, Format(99), ErrInvalidFormat},
		{"short stride", make([]byte, 8), 2, FormatRGBAPremul, ErrInvalidStride},
		{"short data", make([]byte, 5), 4, FormatRGBAPremul, ErrDataTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPix(tt.pix, tt.stride, image.Rect(0, 0, 1, 2), tt.format)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSubBufferSharesPixels(t *testing.T) {
	b := NewBuffer(image.Rect(0, 0, 4, 4), FormatGray8)
	sub := b.SubBuffer(image.Rect(2, 2, 8, 8))
	assert.Equal(t, image.Rect(2, 2, 4, 4), sub.Rect)

	sub.Set(3, 3, color.Gray{Y: 77})
	assert.Equal(t, uint8(77), b.Pix[b.PixOffset(3, 3)])
}

func TestTranslateView(t *testing.T) {
	b := NewBuffer(image.Rect(0, 0, 2, 2), FormatGray8)
	b.Set(1, 1, color.Gray{Y: 9})
	v := b.Translate(10, 20)
	assert.Equal(t, image.Rect(10, 20, 12, 22), v.Rect)
	assert.Equal(t, color.Gray{Y: 9}, v.At(11, 21))
}

func TestBufferImageViews(t *testing.T) {
	tests := []struct {
		format Format
		want   any
	}{
		{FormatAlpha8, &image.Alpha{}},
		{FormatGray8, &image.Gray{}},
		{FormatRGBA8, &image.NRGBA{}},
		{FormatRGBAPremul, &image.RGBA{}},
		{FormatRGB8, &Buffer{}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			b := NewBuffer(image.Rect(1, 1, 3, 3), tt.format)
			img := b.Image()
			assert.IsType(t, tt.want, img)
			assert.Equal(t, b.Rect, img.Bounds())
		})
	}
}

func TestFormatSampleModelCoherent(t *testing.T) {
	for f := FormatAlpha8; f < formatCount; f++ {
		sm := SampleModelOf(f)
		assert.Equal(t, f.BytesPerPixel(), sm.PixelStride, f.String())
		assert.Equal(t, f.Channels(), sm.Bands, f.String())
		assert.Equal(t, f.HasAlpha(), sm.AlphaBand >= 0, f.String())
	}
	assert.Equal(t, "Unknown", Format(200).String())
	assert.False(t, Format(200).IsValid())
}

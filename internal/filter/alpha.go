package filter

import "github.com/gogpu/fx/raster"

// Luminance coefficients of luminance-to-alpha conversions.
const (
	lumAlphaR = 0.2125
	lumAlphaG = 0.7154
	lumAlphaB = 0.0721
)

// LuminanceAlpha returns an alpha-only buffer whose coverage is the
// luminance of src weighted by its opacity. On premultiplied data this is
// the luminance of the stored channels.
func LuminanceAlpha(src *raster.Buffer) *raster.Buffer {
	dst := raster.NewBuffer(src.Rect, raster.FormatAlpha8)
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		row := dst.Row(y)
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			r, g, b, _ := src.PremulAt(x, y)
			row[x-src.Rect.Min.X] = roundByte(lumAlphaR*float64(r) + lumAlphaG*float64(g) + lumAlphaB*float64(b))
		}
	}
	return dst
}

package filter

import (
	"math"

	"github.com/gogpu/fx/raster"
)

var srgbToLinear, linearToSRGB = colorSpaceTables()

func colorSpaceTables() (toLinear, toSRGB [256]byte) {
	for i := range 256 {
		c := float64(i) / 255
		var l, s float64
		if c <= 0.04045 {
			l = c / 12.92
		} else {
			l = math.Pow((c+0.055)/1.055, 2.4)
		}
		if c <= 0.0031308 {
			s = c * 12.92
		} else {
			s = 1.055*math.Pow(c, 1/2.4) - 0.055
		}
		toLinear[i] = roundByte(l * 255)
		toSRGB[i] = roundByte(s * 255)
	}
	return toLinear, toSRGB
}

// ToLinearRGB converts the color channels of a premultiplied buffer from
// sRGB to linear RGB in place. Alpha is unchanged.
func ToLinearRGB(b *raster.Buffer) {
	mapColor(b, &srgbToLinear)
}

// ToSRGB converts the color channels of a premultiplied buffer from linear
// RGB to sRGB in place.
func ToSRGB(b *raster.Buffer) {
	mapColor(b, &linearToSRGB)
}

func mapColor(b *raster.Buffer, lut *[256]byte) {
	if b.Format != raster.FormatRGBAPremul {
		return
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += 4 {
			a := row[i+3]
			if a == 0 {
				continue
			}
			for c := 0; c < 3; c++ {
				row[i+c] = raster.PremultiplyChannel(lut[raster.UnpremultiplyChannel(row[i+c], a)], a)
			}
		}
	}
}

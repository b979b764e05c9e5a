package filter

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/fx/raster"
)

// ErrMatrixShape is returned by NewColorMatrix for anything but 4 rows of
// 5 columns.
var ErrMatrixShape = errors.New("filter: color matrix must be 4 rows of 5 columns")

// ColorMatrix is a 4x5 color transformation applied to straight-alpha
// pixels:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are in [0, 255] during the transformation, so the fifth
// column is an offset in channel units.
type ColorMatrix [20]float32

// NewColorMatrix builds a matrix from rows whose offsets are expressed in
// [0, 1] units, the way filter documents write them.
func NewColorMatrix(rows [][]float64) (ColorMatrix, error) {
	var m ColorMatrix
	if len(rows) != 4 {
		return m, fmt.Errorf("%w: got %d rows", ErrMatrixShape, len(rows))
	}
	for i, row := range rows {
		if len(row) != 5 {
			return m, fmt.Errorf("%w: row %d has %d columns", ErrMatrixShape, i, len(row))
		}
		for j, v := range row {
			if j == 4 {
				v *= 255
			}
			m[i*5+j] = float32(v)
		}
	}
	return m, nil
}

// IdentityMatrix passes pixels through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Luma coefficients of the hue-rotate and saturate matrices.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// SaturateMatrix desaturates by s: 0 = grayscale, 1 = unchanged.
func SaturateMatrix(s float32) ColorMatrix {
	return ColorMatrix{
		lumR + (1-lumR)*s, lumG - lumG*s, lumB - lumB*s, 0, 0,
		lumR - lumR*s, lumG + (1-lumG)*s, lumB - lumB*s, 0, 0,
		lumR - lumR*s, lumG - lumG*s, lumB + (1-lumB)*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotateMatrix rotates hue by degrees in the luma-preserving plane.
func HueRotateMatrix(degrees float32) ColorMatrix {
	rad := degrees * math32.Pi / 180
	cos := math32.Cos(rad)
	sin := math32.Sin(rad)

	return ColorMatrix{
		lumR + cos*(1-lumR) - sin*lumR, lumG - cos*lumG - sin*lumG, lumB - cos*lumB + sin*(1-lumB), 0, 0,
		lumR - cos*lumR + sin*0.143, lumG + cos*(1-lumG) + sin*0.140, lumB - cos*lumB - sin*0.283, 0, 0,
		lumR - cos*lumR - sin*(1-lumR), lumG - cos*lumG + sin*lumG, lumB + cos*(1-lumB) + sin*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// LuminanceToAlphaMatrix zeroes the color channels and stores the
// luminance in alpha.
func LuminanceToAlphaMatrix() ColorMatrix {
	return ColorMatrix{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2125, 0.7154, 0.0721, 0, 0,
	}
}

// Multiply returns the product m*other: the result applies other first,
// then m.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*5+k] * other[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = m[row*5+0]*other[4] + m[row*5+1]*other[9] +
			m[row*5+2]*other[14] + m[row*5+3]*other[19] + m[row*5+4]
	}
	return r
}

// Apply transforms src and returns a new premultiplied buffer. Each pixel
// is un-premultiplied, transformed, clamped and premultiplied again.
func (m ColorMatrix) Apply(src *raster.Buffer) *raster.Buffer {
	dst := premulCopy(src)
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		row := dst.Row(y)
		for i := 0; i < len(row); i += 4 {
			p := row[i : i+4 : i+4]
			a := float32(p[3])
			r := float32(raster.UnpremultiplyChannel(p[0], p[3]))
			g := float32(raster.UnpremultiplyChannel(p[1], p[3]))
			b := float32(raster.UnpremultiplyChannel(p[2], p[3]))

			na := roundByte(float64(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]))
			p[0] = raster.PremultiplyChannel(roundByte(float64(m[0]*r+m[1]*g+m[2]*b+m[3]*a+m[4])), na)
			p[1] = raster.PremultiplyChannel(roundByte(float64(m[5]*r+m[6]*g+m[7]*b+m[8]*a+m[9])), na)
			p[2] = raster.PremultiplyChannel(roundByte(float64(m[10]*r+m[11]*g+m[12]*b+m[13]*a+m[14])), na)
			p[3] = na
		}
	}
	return dst
}

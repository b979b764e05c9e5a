package filter

import (
	"math"

	"github.com/gogpu/fx/raster"
)

// TransferKind selects a component transfer function.
type TransferKind uint8

const (
	TransferIdentity TransferKind = iota
	TransferTable
	TransferDiscrete
	TransferLinear
	TransferGamma
)

// TransferFunc describes the mapping of one channel. Values are in
// [0, 1] units; Table holds the table or discrete entries.
type TransferFunc struct {
	Kind      TransferKind
	Table     []float64
	Slope     float64
	Intercept float64
	Amplitude float64
	Exponent  float64
	Offset    float64
}

// LookupTable evaluates f at every channel value.
func (f TransferFunc) LookupTable() [256]byte {
	var lut [256]byte
	for i := range lut {
		lut[i] = roundByte(f.eval(float64(i)/255) * 255)
	}
	return lut
}

func (f TransferFunc) eval(c float64) float64 {
	switch f.Kind {
	case TransferTable:
		n := len(f.Table) - 1
		if n < 0 {
			return c
		}
		if n == 0 {
			return f.Table[0]
		}
		k := int(math.Floor(c * float64(n)))
		if k >= n {
			return f.Table[n]
		}
		return f.Table[k] + (c*float64(n)-float64(k))*(f.Table[k+1]-f.Table[k])
	case TransferDiscrete:
		n := len(f.Table)
		if n == 0 {
			return c
		}
		k := int(math.Floor(c * float64(n)))
		if k >= n {
			k = n - 1
		}
		return f.Table[k]
	case TransferLinear:
		return f.Slope*c + f.Intercept
	case TransferGamma:
		return f.Amplitude*math.Pow(c, f.Exponent) + f.Offset
	default:
		return c
	}
}

// ComponentTransfer applies per-channel lookup tables (R, G, B, A order)
// to the straight-alpha values of src and returns a new premultiplied
// buffer.
func ComponentTransfer(src *raster.Buffer, luts *[4][256]byte) *raster.Buffer {
	dst := premulCopy(src)
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		row := dst.Row(y)
		for i := 0; i < len(row); i += 4 {
			p := row[i : i+4 : i+4]
			a := luts[3][p[3]]
			r := luts[0][raster.UnpremultiplyChannel(p[0], p[3])]
			g := luts[1][raster.UnpremultiplyChannel(p[1], p[3])]
			b := luts[2][raster.UnpremultiplyChannel(p[2], p[3])]
			p[0] = raster.PremultiplyChannel(r, a)
			p[1] = raster.PremultiplyChannel(g, a)
			p[2] = raster.PremultiplyChannel(b, a)
			p[3] = a
		}
	}
	return dst
}

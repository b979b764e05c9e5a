package filter

import "github.com/gogpu/fx/raster"

// premulCopy returns a private premultiplied copy of src that kernels may
// modify in place.
func premulCopy(src *raster.Buffer) *raster.Buffer {
	if src.Format == raster.FormatRGBAPremul {
		return src.Clone()
	}
	return raster.Convert(src, raster.FormatRGBAPremul)
}

// eachLine calls fn for every row of b, or every column when vertical is
// set. The pixels of the line are gathered into a packed RGBA scratch
// slice; whatever fn leaves in it is written back.
func eachLine(b *raster.Buffer, vertical bool, fn func(line []byte)) {
	if b.Empty() {
		return
	}
	n, count := b.Rect.Dx(), b.Rect.Dy()
	step, next := 4, b.Stride
	if vertical {
		n, count = count, n
		step, next = next, step
	}
	line := make([]byte, n*4)
	for k := 0; k < count; k++ {
		base := k * next
		for i := 0; i < n; i++ {
			copy(line[i*4:i*4+4], b.Pix[base+i*step:])
		}
		fn(line)
		for i := 0; i < n; i++ {
			copy(b.Pix[base+i*step:base+i*step+4], line[i*4:i*4+4])
		}
	}
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// roundByte rounds a channel value in [0, 255] units and clamps it.
func roundByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

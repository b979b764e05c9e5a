package blend

import (
	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// BlendRow blends a row of premultiplied RGBA source pixels into dst.
// Both slices hold 4 bytes per pixel; the shorter length wins.
func BlendRow(dst, src []byte, fn BlendFunc) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

// Compose blends src into dst with rule over the whole of dst.Rect.
// Pixels of dst outside src.Rect are blended against transparent black, so
// operators such as in and out clear them.
//
// Both operands are coerced to premultiplied alpha before the kernel runs
// and dst is returned to its original format afterwards. src is never
// modified; dst must be exclusively owned by the caller.
func Compose(dst, src *raster.Buffer, rule fx.CompositeRule) {
	if dst.Empty() {
		return
	}
	restore := dst.Format
	switch restore {
	case raster.FormatRGBAPremul:
	case raster.FormatRGBA8:
		raster.Premultiply(dst)
	default:
		// Formats without a full RGBA layout are blended through a copy.
		tmp := raster.Convert(dst, raster.FormatRGBAPremul)
		Compose(tmp, src, rule)
		raster.Copy(dst, tmp)
		return
	}

	s := src
	if s.Format != raster.FormatRGBAPremul || s.Rect != dst.Rect {
		s = raster.NewBuffer(dst.Rect, raster.FormatRGBAPremul)
		raster.Copy(s, src)
	}

	fn := For(rule)
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		BlendRow(dst.Row(y), s.Row(y), fn)
	}

	if restore == raster.FormatRGBA8 {
		raster.Unpremultiply(dst)
	}
}

// MultiplyAlpha scales every component of dst by the coverage in mask.
// dst must be premultiplied RGBA. Single-band masks (Alpha8 or Gray8) are
// read as coverage directly; other masks contribute their alpha. Pixels of
// dst outside mask.Rect become transparent.
func MultiplyAlpha(dst, mask *raster.Buffer) {
	if dst.Empty() {
		return
	}
	m := mask
	if m.Format == raster.FormatGray8 {
		v := *m
		v.Format = raster.FormatAlpha8
		m = &v
	}
	if m.Format != raster.FormatAlpha8 || m.Rect != dst.Rect {
		m = raster.NewBuffer(dst.Rect, raster.FormatAlpha8)
		raster.Copy(m, mask)
	}
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		row := dst.Row(y)
		cov := m.Row(y)
		for x, c := range cov {
			i := x * 4
			row[i] = mulDiv255(row[i], c)
			row[i+1] = mulDiv255(row[i+1], c)
			row[i+2] = mulDiv255(row[i+2], c)
			row[i+3] = mulDiv255(row[i+3], c)
		}
	}
}

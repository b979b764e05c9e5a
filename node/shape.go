package node

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// coverage rasterizes the outline of s mapped through m into an Alpha8
// buffer over the device rectangle r. Without antialiasing, coverage is
// thresholded at one half.
func coverage(s fx.Shape, m fx.Matrix, r image.Rectangle, antialias bool) *raster.Buffer {
	if r.Empty() {
		return raster.NewBuffer(r, raster.FormatAlpha8)
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	pt := func(p fx.Point) (float32, float32) {
		q := m.TransformPoint(p)
		return float32(q.X - float64(r.Min.X)), float32(q.Y - float64(r.Min.Y))
	}

	open := false
	for _, e := range s.Path().Elements() {
		switch e := e.(type) {
		case fx.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(e.Point))
			open = true
		case fx.LineTo:
			z.LineTo(pt(e.Point))
		case fx.QuadTo:
			bx, by := pt(e.Control)
			cx, cy := pt(e.Point)
			z.QuadTo(bx, by, cx, cy)
		case fx.CubicTo:
			bx, by := pt(e.Control1)
			cx, cy := pt(e.Control2)
			dx, dy := pt(e.Point)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case fx.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	a := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(a, a.Bounds(), image.Opaque, image.Point{})
	if !antialias {
		for i, v := range a.Pix {
			if v >= 128 {
				a.Pix[i] = 0xff
			} else {
				a.Pix[i] = 0
			}
		}
	}
	return &raster.Buffer{Pix: a.Pix, Stride: a.Stride, Rect: r, Format: raster.FormatAlpha8}
}

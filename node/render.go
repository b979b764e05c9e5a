package node

import (
	"image"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// pull renders src under ctx and returns its premultiplied pixels over
// the device rectangle r. Parts of r the source does not cover are
// transparent. The area of interest passed down is r mapped back to user
// space.
func pull(src Node, ctx fx.RenderContext, r image.Rectangle) *raster.Buffer {
	buf := raster.NewBuffer(r, raster.FormatRGBAPremul)
	if buf.Empty() || src == nil {
		return buf
	}
	if inv, ok := ctx.Transform().Invert(); ok {
		ctx = ctx.WithAreaOfInterest(inv.TransformRect(fx.RectFromImage(r)))
	}
	if ras := src.Render(ctx); ras != nil {
		ras.CopyTo(buf)
	}
	return buf
}

// split is a device transform factored into a pure scale, used to render
// sources on an axis-aligned grid, and the residual applied afterwards.
type split struct {
	ctx      fx.RenderContext // ctx with the scale-only transform
	sx, sy   float64
	scale    fx.Matrix
	residual fx.Matrix
}

func splitScale(ctx fx.RenderContext) (split, bool) {
	sx, sy, residual := ctx.Transform().SplitScale()
	if sx == 0 || sy == 0 || math.IsNaN(sx) || math.IsNaN(sy) {
		return split{}, false
	}
	scale := fx.Scale(sx, sy)
	return split{
		ctx:      ctx.WithTransform(scale),
		sx:       sx,
		sy:       sy,
		scale:    scale,
		residual: residual,
	}, true
}

// workRect returns the grid pixels needed to cover bounds as requested by
// the original context.
func (s split) workRect(ctx fx.RenderContext, bounds fx.Rect) image.Rectangle {
	clip := ctx.Clip(bounds)
	if clip.Empty() {
		return image.Rectangle{}
	}
	return s.scale.TransformRect(clip).Device()
}

// finish applies the residual transform to r and crops the result to the
// device rectangle of bounds under ctx.
func (s split) finish(ctx fx.RenderContext, r raster.Raster, bounds fx.Rect) raster.Raster {
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() || r == nil {
		return nil
	}
	out := raster.Affine(r, s.residual, ctx.Hints().Interpolation())
	if out.Bounds().Intersect(dev).Empty() {
		return nil
	}
	return raster.Pad(out, dev, raster.PadZero)
}

// grow returns r expanded by dx columns and dy rows on each side.
func grow(r image.Rectangle, dx, dy int) image.Rectangle {
	return image.Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

// quality reports whether ctx asks for the accurate kernels.
func quality(ctx fx.RenderContext) bool {
	return ctx.Hints().Rendering() == fx.RenderQuality
}

// axisAligned reports whether m maps rectangles onto rectangles.
func axisAligned(m fx.Matrix) bool {
	return (m.B == 0 && m.D == 0) || (m.A == 0 && m.E == 0)
}

func alphaOnly() map[string]any {
	return map[string]any{raster.PropAlphaOnly: true}
}

package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// Mask multiplies its source by the coverage of a mask node whose
// content is stretched onto a mask region.
type Mask struct {
	base
	src    Node
	mask   Node
	region region.Region
}

// NewMask returns src masked by mask. The bounds of mask are mapped onto
// r by a scale and a translation; r is resolved on every use, so a
// bounding-box region follows its reference. Color masks should be
// wrapped in a LuminanceAlpha node first.
func NewMask(src, mask Node, r region.Region) (*Mask, error) {
	if src == nil || mask == nil || r == nil {
		return nil, fmt.Errorf("node: mask needs source, mask and region: %w", fx.ErrInvalidParameter)
	}
	return &Mask{src: src, mask: mask, region: r}, nil
}

// SetRegion changes the mask region.
func (n *Mask) SetRegion(r region.Region) {
	if r == nil {
		return
	}
	n.region = r
	n.touch()
}

// Bounds implements Node.
func (n *Mask) Bounds() fx.Rect {
	return n.src.Bounds().Intersect(n.region.Rect())
}

// Sources implements Node.
func (n *Mask) Sources() []Node { return []Node{n.src, n.mask} }

// remap maps mask user space onto the mask region.
func (n *Mask) remap() (fx.Matrix, bool) {
	mb, rr := n.mask.Bounds(), n.region.Rect()
	if mb.Empty() || rr.Empty() {
		return fx.Matrix{}, false
	}
	return fx.Translate(rr.Min.X, rr.Min.Y).
		Multiply(fx.Scale(rr.Width()/mb.Width(), rr.Height()/mb.Height())).
		Multiply(fx.Translate(-mb.Min.X, -mb.Min.Y)), true
}

// DependencyRegion implements Node.
func (n *Mask) DependencyRegion(src int, out fx.Rect) fx.Rect {
	switch src {
	case 0:
		return out.Intersect(n.Bounds())
	case 1:
		m, ok := n.remap()
		if !ok {
			return fx.Rect{}
		}
		inv, _ := m.Invert()
		return inv.TransformRect(out.Intersect(n.Bounds())).Intersect(n.mask.Bounds())
	}
	return fx.Rect{}
}

// DirtyRegion implements Node.
func (n *Mask) DirtyRegion(src int, in fx.Rect) fx.Rect {
	switch src {
	case 0:
		return in.Intersect(n.Bounds())
	case 1:
		m, ok := n.remap()
		if !ok {
			return fx.Rect{}
		}
		return m.TransformRect(in).Intersect(n.Bounds())
	}
	return fx.Rect{}
}

// Render implements Node.
func (n *Mask) Render(ctx fx.RenderContext) raster.Raster {
	m, ok := n.remap()
	if !ok {
		return nil
	}
	bounds := n.Bounds()
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() {
		return nil
	}

	mctx := ctx.WithTransform(ctx.Transform().Multiply(m)).WithHint(fx.HintFilterAsAlpha, true)
	inv, _ := m.Invert()
	mctx = mctx.WithAreaOfInterest(inv.TransformRect(ctx.Clip(bounds)))

	cov := raster.NewBuffer(dev, raster.FormatAlpha8)
	if mr := n.mask.Render(mctx); mr != nil {
		asAlpha(mr).CopyTo(cov)
	}

	buf := pull(n.src, ctx, dev)
	blend.MultiplyAlpha(buf, cov)
	return raster.Freeze(buf)
}

// Clip restricts its source to the inside of a shape.
type Clip struct {
	base
	src       Node
	shape     fx.Shape
	antialias bool
}

// NewClip returns src clipped to shape. Without antialiasing the clip
// edge is hard.
func NewClip(src Node, shape fx.Shape, antialias bool) (*Clip, error) {
	if src == nil || shape == nil {
		return nil, fmt.Errorf("node: clip needs source and shape: %w", fx.ErrInvalidParameter)
	}
	return &Clip{src: src, shape: shape, antialias: antialias}, nil
}

// SetShape changes the clip shape.
func (n *Clip) SetShape(s fx.Shape) {
	n.shape = s
	n.touch()
}

// Bounds implements Node.
func (n *Clip) Bounds() fx.Rect {
	return n.src.Bounds().Intersect(n.shape.Bounds())
}

// Sources implements Node.
func (n *Clip) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *Clip) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out.Intersect(n.Bounds()), 0, 0)
}

// DirtyRegion implements Node.
func (n *Clip) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *Clip) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.Bounds())
	if dev.Empty() {
		return nil
	}
	buf := pull(n.src, ctx, dev)
	blend.MultiplyAlpha(buf, coverage(n.shape, ctx.Transform(), dev, n.antialias))
	return raster.Freeze(buf)
}

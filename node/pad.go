package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Pad crops or extends its source to a fixed rectangle.
type Pad struct {
	base
	src  Node
	rect fx.Rect
	mode raster.PadMode
}

// NewPad returns src restricted to rect. The part of rect outside the
// source is filled according to mode.
func NewPad(src Node, rect fx.Rect, mode raster.PadMode) (*Pad, error) {
	if src == nil {
		return nil, fmt.Errorf("node: pad without source: %w", fx.ErrInvalidParameter)
	}
	if mode != raster.PadZero && mode != raster.PadReplicate {
		return nil, fmt.Errorf("node: pad mode %d: %w", mode, fx.ErrInvalidParameter)
	}
	return &Pad{src: src, rect: rect, mode: mode}, nil
}

// Rect returns the padded rectangle.
func (n *Pad) Rect() fx.Rect { return n.rect }

// SetRect changes the padded rectangle.
func (n *Pad) SetRect(r fx.Rect) {
	n.rect = r
	n.touch()
}

// Bounds implements Node.
func (n *Pad) Bounds() fx.Rect { return n.rect }

// Sources implements Node.
func (n *Pad) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *Pad) DependencyRegion(src int, out fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	if n.mode == raster.PadReplicate {
		// Edge pixels reach arbitrarily far.
		return n.rect.Intersect(n.src.Bounds())
	}
	return out.Intersect(n.rect).Intersect(n.src.Bounds())
}

// DirtyRegion implements Node.
func (n *Pad) DirtyRegion(src int, in fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	if n.mode == raster.PadReplicate {
		return n.rect
	}
	return in.Intersect(n.rect)
}

// Render implements Node.
func (n *Pad) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.rect)
	if dev.Empty() {
		return nil
	}
	aoi := ctx.Clip(n.rect)
	if n.mode == raster.PadReplicate {
		aoi = n.rect.Intersect(n.src.Bounds())
	}
	child := ctx.WithAreaOfInterest(aoi)
	r := n.src.Render(child)
	if r == nil {
		if n.mode == raster.PadReplicate {
			return nil
		}
		r = raster.Empty(raster.FormatRGBAPremul)
	}
	return raster.Pad(r, dev, n.mode)
}

package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// FilterAsAlpha reduces its source to coverage. Sources are rendered with
// HintFilterAsAlpha so producers may skip color work.
type FilterAsAlpha struct {
	base
	src Node
}

// NewFilterAsAlpha returns the alpha channel of src as an alpha-only
// raster.
func NewFilterAsAlpha(src Node) (*FilterAsAlpha, error) {
	if src == nil {
		return nil, fmt.Errorf("node: alpha without source: %w", fx.ErrInvalidParameter)
	}
	return &FilterAsAlpha{src: src}, nil
}

// Bounds implements Node.
func (n *FilterAsAlpha) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *FilterAsAlpha) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *FilterAsAlpha) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *FilterAsAlpha) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *FilterAsAlpha) Render(ctx fx.RenderContext) raster.Raster {
	if ctx.DeviceRect(n.Bounds()).Empty() {
		return nil
	}
	r := n.src.Render(ctx.WithHint(fx.HintFilterAsAlpha, true))
	if r == nil {
		return nil
	}
	return asAlpha(r)
}

// asAlpha converts r to alpha-only coverage. Rasters without an alpha
// channel are fully opaque.
func asAlpha(r raster.Raster) raster.Raster {
	if raster.BoolProperty(r, raster.PropAlphaOnly) {
		return r
	}
	if r.Format() == raster.FormatAlpha8 {
		return r
	}
	// Copying into an Alpha8 buffer keeps the alpha channel and reads
	// opaque formats as 0xff.
	buf := raster.NewBuffer(r.Bounds(), raster.FormatAlpha8)
	r.CopyTo(buf)
	return raster.FreezeWith(buf, alphaOnly())
}

// LuminanceAlpha turns color into coverage: the alpha of the result is
// the luminance of the premultiplied source.
type LuminanceAlpha struct {
	base
	src Node
}

// NewLuminanceAlpha returns the luminance mask of src.
func NewLuminanceAlpha(src Node) (*LuminanceAlpha, error) {
	if src == nil {
		return nil, fmt.Errorf("node: luminance without source: %w", fx.ErrInvalidParameter)
	}
	return &LuminanceAlpha{src: src}, nil
}

// Bounds implements Node.
func (n *LuminanceAlpha) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *LuminanceAlpha) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *LuminanceAlpha) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *LuminanceAlpha) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *LuminanceAlpha) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.Bounds())
	if dev.Empty() {
		return nil
	}
	return raster.FreezeWith(filter.LuminanceAlpha(pull(n.src, ctx, dev)), alphaOnly())
}

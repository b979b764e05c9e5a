package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// Composite layers its sources with a Porter-Duff or arithmetic rule. The
// first source is the bottom layer; every later source is composed onto
// the result.
type Composite struct {
	base
	rule fx.CompositeRule
	srcs []Node
}

// NewComposite returns the composition of srcs under rule.
func NewComposite(rule fx.CompositeRule, srcs ...Node) (*Composite, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("node: composite without sources: %w", fx.ErrInvalidParameter)
	}
	for i, s := range srcs {
		if s == nil {
			return nil, fmt.Errorf("node: composite source %d is nil: %w", i, fx.ErrInvalidParameter)
		}
	}
	return &Composite{rule: rule, srcs: srcs}, nil
}

// NewMerge stacks srcs with source-over.
func NewMerge(srcs ...Node) (*Composite, error) {
	return NewComposite(fx.Over, srcs...)
}

// Rule returns the composite rule.
func (n *Composite) Rule() fx.CompositeRule { return n.rule }

// SetRule changes the composite rule.
func (n *Composite) SetRule(rule fx.CompositeRule) {
	n.rule = rule
	n.touch()
}

// Bounds implements Node.
func (n *Composite) Bounds() fx.Rect {
	var r fx.Rect
	for _, s := range n.srcs {
		r = r.Union(s.Bounds())
	}
	return r
}

// Sources implements Node.
func (n *Composite) Sources() []Node { return n.srcs }

// DependencyRegion implements Node.
func (n *Composite) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.srcs, src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *Composite) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *Composite) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.Bounds())
	if dev.Empty() {
		return nil
	}
	linear := ctx.Hints().ColorSpace() == fx.ColorLinearRGB
	load := func(s Node) *raster.Buffer {
		b := pull(s, ctx, dev)
		if linear {
			filter.ToLinearRGB(b)
		}
		return b
	}

	dst := load(n.srcs[0])
	for _, s := range n.srcs[1:] {
		blend.Compose(dst, load(s), n.rule)
	}
	if linear {
		filter.ToSRGB(dst)
	}
	fx.Logger().Debug("node: composite", "op", n.rule.Op, "sources", len(n.srcs), "device", dev)
	return raster.Freeze(dst)
}

package node

import (
	"fmt"
	"image/color"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// Flood fills its region with a constant color.
type Flood struct {
	base
	region region.Region
	color  color.Color
}

// NewFlood returns a node filling r with c.
func NewFlood(r region.Region, c color.Color) (*Flood, error) {
	if r == nil {
		return nil, fmt.Errorf("node: flood without region: %w", fx.ErrInvalidParameter)
	}
	if c == nil {
		c = color.Transparent
	}
	return &Flood{region: r, color: c}, nil
}

// Bounds implements Node.
func (n *Flood) Bounds() fx.Rect { return n.region.Rect() }

// Sources implements Node.
func (n *Flood) Sources() []Node { return nil }

// DependencyRegion implements Node.
func (n *Flood) DependencyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// DirtyRegion implements Node.
func (n *Flood) DirtyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// Color returns the fill color.
func (n *Flood) Color() color.Color { return n.color }

// SetColor changes the fill color.
func (n *Flood) SetColor(c color.Color) {
	n.color = c
	n.touch()
}

// Render implements Node.
func (n *Flood) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() {
		return nil
	}
	buf := raster.NewBuffer(dev, raster.FormatRGBAPremul)
	buf.Fill(n.color)
	if m := ctx.Transform(); !axisAligned(m) {
		blend.MultiplyAlpha(buf, coverage(bounds, m, dev, true))
	}
	return raster.Freeze(buf)
}

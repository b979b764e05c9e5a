package node

import (
	"fmt"
	"image/color"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// DropShadow draws a blurred, offset, colored copy of its source's
// silhouette below the source.
type DropShadow struct {
	base
	src   Node
	flood *Flood
	blur  *GaussianBlur
	shift *Affine
	out   Node
}

// NewDropShadow returns src over its shadow. The shadow is the alpha of
// src filled with c, blurred by sigma and moved by (dx, dy).
func NewDropShadow(src Node, dx, dy, sigma float64, c color.Color) (*DropShadow, error) {
	if src == nil {
		return nil, fmt.Errorf("node: drop shadow without source: %w", fx.ErrInvalidParameter)
	}
	flood, err := NewFlood(region.Func(src.Bounds), c)
	if err != nil {
		return nil, err
	}
	silhouette, err := NewComposite(fx.In, src, flood)
	if err != nil {
		return nil, err
	}
	blur, err := NewGaussianBlur(silhouette, sigma, sigma)
	if err != nil {
		return nil, err
	}
	shift, err := NewOffset(blur, dx, dy)
	if err != nil {
		return nil, err
	}
	out, err := NewMerge(shift, src)
	if err != nil {
		return nil, err
	}
	return &DropShadow{src: src, flood: flood, blur: blur, shift: shift, out: out}, nil
}

// SetColor changes the shadow color.
func (n *DropShadow) SetColor(c color.Color) {
	n.flood.SetColor(c)
	n.touch()
}

// SetOffset moves the shadow.
func (n *DropShadow) SetOffset(dx, dy float64) {
	n.shift.SetMatrix(fx.Translate(dx, dy))
	n.touch()
}

// SetBlur changes the shadow's standard deviation.
func (n *DropShadow) SetBlur(sigma float64) error {
	if err := n.blur.SetStdDeviation(sigma, sigma); err != nil {
		return err
	}
	n.touch()
	return nil
}

// Bounds implements Node.
func (n *DropShadow) Bounds() fx.Rect { return n.out.Bounds() }

// Sources implements Node.
func (n *DropShadow) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *DropShadow) DependencyRegion(src int, out fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	sx, _ := n.blur.StdDeviation()
	m := n.shift.Matrix()
	shadow := out.Translate(-m.C, -m.F).Grow(3*sx, 3*sx)
	return out.Union(shadow).Intersect(n.src.Bounds())
}

// DirtyRegion implements Node.
func (n *DropShadow) DirtyRegion(src int, in fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	sx, _ := n.blur.StdDeviation()
	m := n.shift.Matrix()
	shadow := in.Grow(3*sx, 3*sx).Translate(m.C, m.F)
	return in.Union(shadow).Intersect(n.Bounds())
}

// Render implements Node.
func (n *DropShadow) Render(ctx fx.RenderContext) raster.Raster {
	return n.out.Render(ctx)
}

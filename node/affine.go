package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Affine draws its source through an affine transformation of user
// space.
type Affine struct {
	base
	src Node
	m   fx.Matrix
	inv fx.Matrix
}

// NewAffine returns src transformed by m. A non-invertible m is replaced
// by the identity.
func NewAffine(src Node, m fx.Matrix) (*Affine, error) {
	if src == nil {
		return nil, fmt.Errorf("node: affine without source: %w", fx.ErrInvalidParameter)
	}
	n := &Affine{src: src}
	n.setMatrix(m)
	return n, nil
}

// NewOffset returns src translated by (dx, dy) user units.
func NewOffset(src Node, dx, dy float64) (*Affine, error) {
	return NewAffine(src, fx.Translate(dx, dy))
}

func (n *Affine) setMatrix(m fx.Matrix) {
	inv, ok := m.Invert()
	if !ok {
		fx.Logger().Warn("node: affine matrix not invertible, using identity", "matrix", m)
		m, inv = fx.Identity(), fx.Identity()
	}
	n.m, n.inv = m, inv
}

// Matrix returns the transformation.
func (n *Affine) Matrix() fx.Matrix { return n.m }

// SetMatrix changes the transformation.
func (n *Affine) SetMatrix(m fx.Matrix) {
	n.setMatrix(m)
	n.touch()
}

// Bounds implements Node.
func (n *Affine) Bounds() fx.Rect {
	return n.m.TransformRect(n.src.Bounds())
}

// Sources implements Node.
func (n *Affine) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *Affine) DependencyRegion(src int, out fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	return n.inv.TransformRect(out).Intersect(n.src.Bounds())
}

// DirtyRegion implements Node.
func (n *Affine) DirtyRegion(src int, in fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	return n.m.TransformRect(in).Intersect(n.Bounds())
}

// Render implements Node.
func (n *Affine) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() {
		return nil
	}
	child := ctx.WithTransform(ctx.Transform().Multiply(n.m))
	if aoi := ctx.AreaOfInterest(); aoi != nil {
		child = child.WithAreaOfInterest(fx.TransformShape(n.inv, aoi))
	}
	r := n.src.Render(child)
	if r == nil || r.Bounds().Intersect(dev).Empty() {
		return nil
	}
	return raster.Pad(r, dev, raster.PadZero)
}

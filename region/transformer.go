package region

import "github.com/gogpu/fx"

// Transformer maps between primitive region space and user space. For
// ObjectBoundingBox units the unit square maps onto the reference bounds;
// for UserSpaceOnUse it is the identity.
type Transformer struct {
	units Units
	ref   Bounded
}

// NewTransformer returns the transformer for units relative to ref. ref is
// only read for ObjectBoundingBox units, each time a mapping is requested.
func NewTransformer(units Units, ref Bounded) Transformer {
	return Transformer{units: units, ref: ref}
}

// Units returns the frame of the region space.
func (t Transformer) Units() Units {
	return t.units
}

func (t Transformer) box() fx.Rect {
	if t.units != ObjectBoundingBox || t.ref == nil {
		return fx.XYWH(0, 0, 1, 1)
	}
	return t.ref.Bounds()
}

// Matrix returns the region-to-user transform.
func (t Transformer) Matrix() fx.Matrix {
	if t.units != ObjectBoundingBox {
		return fx.Identity()
	}
	b := t.box()
	return fx.Translate(b.Min.X, b.Min.Y).Multiply(fx.Scale(b.Width(), b.Height()))
}

// ToUser maps a rectangle from region space to user space.
func (t Transformer) ToUser(r fx.Rect) fx.Rect {
	return t.Matrix().TransformRect(r)
}

// FromUser maps a user-space rectangle into region space. A degenerate
// reference box yields the zero Rect.
func (t Transformer) FromUser(r fx.Rect) fx.Rect {
	inv, ok := t.Matrix().Invert()
	if !ok {
		return fx.Rect{}
	}
	return inv.TransformRect(r)
}

func (t Transformer) x(v float64) float64 {
	if t.units != ObjectBoundingBox {
		return v
	}
	b := t.box()
	return b.Min.X + v*b.Width()
}

func (t Transformer) y(v float64) float64 {
	if t.units != ObjectBoundingBox {
		return v
	}
	b := t.box()
	return b.Min.Y + v*b.Height()
}

func (t Transformer) width(v float64) float64 {
	if t.units != ObjectBoundingBox {
		return v
	}
	return v * t.box().Width()
}

func (t Transformer) height(v float64) float64 {
	if t.units != ObjectBoundingBox {
		return v
	}
	return v * t.box().Height()
}

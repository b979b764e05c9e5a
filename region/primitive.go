package region

import (
	"fmt"

	"github.com/gogpu/fx"
)

// Primitive is the region of one filter primitive: each of X, Y, Width and
// Height is optional and falls back to the matching component of Default.
// Present components are in Units relative to Ref.
type Primitive struct {
	X, Y          *float64
	Width, Height *float64

	Units   Units
	Ref     Bounded
	Default Region
}

// Float returns a pointer to v, for filling Primitive components.
func Float(v float64) *float64 {
	return &v
}

// Validate reports whether p can be resolved.
func (p Primitive) Validate() error {
	if p.Default == nil {
		return fmt.Errorf("region: primitive without default region: %w", fx.ErrInvalidParameter)
	}
	if p.Units == ObjectBoundingBox && p.Ref == nil {
		return fmt.Errorf("region: %v units without reference: %w", p.Units, fx.ErrInvalidParameter)
	}
	if (p.Width != nil && *p.Width < 0) || (p.Height != nil && *p.Height < 0) {
		return fmt.Errorf("region: negative primitive size: %w", fx.ErrInvalidParameter)
	}
	return nil
}

// Rect implements Region. Components are resolved independently: a
// primitive with only Width set keeps the default X, Y and Height.
func (p Primitive) Rect() fx.Rect {
	def := p.Default.Rect()
	x, y, w, h := def.Min.X, def.Min.Y, def.Width(), def.Height()

	t := NewTransformer(p.Units, p.Ref)
	if p.X != nil {
		x = t.x(*p.X)
	}
	if p.Y != nil {
		y = t.y(*p.Y)
	}
	if p.Width != nil {
		w = t.width(*p.Width)
	}
	if p.Height != nil {
		h = t.height(*p.Height)
	}
	return fx.XYWH(x, y, w, h)
}

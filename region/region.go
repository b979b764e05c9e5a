// Package region resolves the working rectangles of filter primitives.
//
// A filter primitive may express its region in its own frame: absolute
// user-space units, fractions of a reference object's bounding box, or
// implicitly as the union of its inputs. A [Region] hides that choice and
// yields a user-space rectangle on demand, so a region that depends on a
// node's bounds always sees the node's current parameters.
package region

import (
	"fmt"

	"github.com/gogpu/fx"
)

// Units selects the frame region coordinates are expressed in.
type Units uint8

const (
	// UserSpaceOnUse coordinates are absolute user-space values.
	UserSpaceOnUse Units = iota

	// ObjectBoundingBox coordinates are fractions of a reference box:
	// 0 is the left (top) edge and 1 the right (bottom) edge.
	ObjectBoundingBox
)

// String returns the SVG keyword of u.
func (u Units) String() string {
	switch u {
	case UserSpaceOnUse:
		return "userSpaceOnUse"
	case ObjectBoundingBox:
		return "objectBoundingBox"
	}
	return "unknown"
}

// Bounded is anything with user-space bounds, typically a render node.
type Bounded interface {
	Bounds() fx.Rect
}

// Region is a rectangle resolved in user space on demand.
type Region interface {
	Rect() fx.Rect
}

// Func adapts a function to Region.
type Func func() fx.Rect

// Rect implements Region.
func (f Func) Rect() fx.Rect { return f() }

type fixed struct {
	r fx.Rect
}

func (f fixed) Rect() fx.Rect { return f.r }

// Fixed returns a region that always resolves to r.
func Fixed(r fx.Rect) Region {
	return fixed{r: r}
}

type boundingBox struct {
	ref        Bounded
	x, y, w, h float64
}

// BoundingBox returns the region (x, y, w, h) in fractions of ref's bounds.
// The bounds are read each time the region is resolved. Negative sizes
// are invalid.
func BoundingBox(ref Bounded, x, y, w, h float64) (Region, error) {
	if ref == nil {
		return nil, fmt.Errorf("region: bounding box without reference: %w", fx.ErrInvalidParameter)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("region: negative size %gx%g: %w", w, h, fx.ErrInvalidParameter)
	}
	return boundingBox{ref: ref, x: x, y: y, w: w, h: h}, nil
}

func (b boundingBox) Rect() fx.Rect {
	return NewTransformer(ObjectBoundingBox, b.ref).ToUser(fx.XYWH(b.x, b.y, b.w, b.h))
}

type sourceUnion struct {
	srcs []Bounded
}

// SourceUnion returns the union of the bounds of srcs, the default region
// of a primitive whose inputs define its extent.
func SourceUnion(srcs ...Bounded) Region {
	return sourceUnion{srcs: srcs}
}

func (s sourceUnion) Rect() fx.Rect {
	var r fx.Rect
	for _, src := range s.srcs {
		if src == nil {
			continue
		}
		r = r.Union(src.Bounds())
	}
	return r
}

// Intersect returns the region a ∩ b.
func Intersect(a, b Region) Region {
	return Func(func() fx.Rect { return a.Rect().Intersect(b.Rect()) })
}

package node

import (
	"fmt"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// GaussianBlur blurs its source with separate standard deviations along
// the user-space axes.
type GaussianBlur struct {
	base
	src    Node
	sx, sy float64
}

// NewGaussianBlur returns src blurred by (sx, sy). Negative deviations
// are invalid; zero leaves an axis untouched.
func NewGaussianBlur(src Node, sx, sy float64) (*GaussianBlur, error) {
	if src == nil {
		return nil, fmt.Errorf("node: blur without source: %w", fx.ErrInvalidParameter)
	}
	if sx < 0 || sy < 0 {
		return nil, fmt.Errorf("node: blur deviation (%g, %g): %w", sx, sy, fx.ErrInvalidParameter)
	}
	return &GaussianBlur{src: src, sx: sx, sy: sy}, nil
}

// StdDeviation returns the standard deviations.
func (n *GaussianBlur) StdDeviation() (sx, sy float64) { return n.sx, n.sy }

// SetStdDeviation changes the standard deviations.
func (n *GaussianBlur) SetStdDeviation(sx, sy float64) error {
	if sx < 0 || sy < 0 {
		return fmt.Errorf("node: blur deviation (%g, %g): %w", sx, sy, fx.ErrInvalidParameter)
	}
	n.sx, n.sy = sx, sy
	n.touch()
	return nil
}

// Bounds implements Node.
func (n *GaussianBlur) Bounds() fx.Rect {
	return n.src.Bounds().Grow(3*n.sx, 3*n.sy)
}

// Sources implements Node.
func (n *GaussianBlur) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *GaussianBlur) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 3*n.sx, 3*n.sy)
}

// DirtyRegion implements Node.
func (n *GaussianBlur) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 3*n.sx, 3*n.sy)
}

// Render implements Node.
//
// The source is rendered on a scale-only grid so the separable passes
// run along pixel rows and columns, and any rotation or shear is applied
// to the blurred result.
func (n *GaussianBlur) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	s, ok := splitScale(ctx)
	if !ok {
		return nil
	}
	work := s.workRect(ctx, bounds)
	if work.Empty() {
		return nil
	}

	q := quality(ctx)
	dsx, dsy := n.sx*math.Abs(s.sx), n.sy*math.Abs(s.sy)
	rx, ry := filter.BlurRadius(dsx, q), filter.BlurRadius(dsy, q)
	fx.Logger().Debug("node: blur", "sigma", [2]float64{dsx, dsy}, "radius", [2]int{rx, ry}, "work", work)

	in := pull(n.src, s.ctx, grow(work, rx, ry))
	out := filter.GaussianBlur(in, dsx, dsy, q).SubBuffer(work)
	return s.finish(ctx, raster.Freeze(out), bounds)
}

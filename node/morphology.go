package node

import (
	"fmt"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// Morphology dilates or erodes its source with a rectangular window.
type Morphology struct {
	base
	src    Node
	rx, ry float64
	dilate bool
}

// NewMorphology returns src dilated (or eroded) by the user-space radii
// rx and ry. Radii must be positive.
func NewMorphology(src Node, rx, ry float64, dilate bool) (*Morphology, error) {
	if src == nil {
		return nil, fmt.Errorf("node: morphology without source: %w", fx.ErrInvalidParameter)
	}
	if rx <= 0 || ry <= 0 {
		return nil, fmt.Errorf("node: morphology radius (%g, %g): %w", rx, ry, fx.ErrInvalidParameter)
	}
	return &Morphology{src: src, rx: rx, ry: ry, dilate: dilate}, nil
}

// SetDilate switches between dilation and erosion.
func (n *Morphology) SetDilate(dilate bool) {
	n.dilate = dilate
	n.touch()
}

// Bounds implements Node.
func (n *Morphology) Bounds() fx.Rect {
	if n.dilate {
		return n.src.Bounds().Grow(n.rx, n.ry)
	}
	return n.src.Bounds()
}

// Sources implements Node.
func (n *Morphology) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *Morphology) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, n.rx, n.ry)
}

// DirtyRegion implements Node.
func (n *Morphology) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, n.rx, n.ry)
}

// Render implements Node.
func (n *Morphology) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	s, ok := splitScale(ctx)
	if !ok {
		return nil
	}
	work := s.workRect(ctx, bounds)
	if work.Empty() {
		return nil
	}
	rx := int(math.Round(n.rx * math.Abs(s.sx)))
	ry := int(math.Round(n.ry * math.Abs(s.sy)))

	in := pull(n.src, s.ctx, grow(work, rx, ry))
	out := filter.Morphology(in, rx, ry, n.dilate).SubBuffer(work)
	return s.finish(ctx, raster.Freeze(out), bounds)
}

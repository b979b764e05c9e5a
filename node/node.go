package node

import (
	"sync/atomic"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Node is a lazily evaluated operator of the filter graph.
type Node interface {
	// Bounds returns the user-space rectangle the node may paint. It
	// depends only on the node's parameters and sources.
	Bounds() fx.Rect

	// Render produces the node's pixels for ctx, or nil when there is
	// nothing to paint. Each call is a fresh evaluation.
	Render(ctx fx.RenderContext) raster.Raster

	// Sources returns the input nodes in order.
	Sources() []Node

	// DependencyRegion returns the part of source src needed to produce
	// the user-space region out.
	DependencyRegion(src int, out fx.Rect) fx.Rect

	// DirtyRegion returns the part of the output invalidated by a change
	// of source src inside the user-space region in.
	DirtyRegion(src int, in fx.Rect) fx.Rect

	// Modified returns the modification counter. Every parameter change
	// increments it.
	Modified() uint64
}

// base carries the modification counter shared by all nodes.
type base struct {
	modified atomic.Uint64
}

// Modified implements Node.
func (b *base) Modified() uint64 {
	return b.modified.Load()
}

func (b *base) touch() {
	b.modified.Add(1)
}

// dependency is the default DependencyRegion: the output region
// intersected with the bounds of source src, grown by the operator's
// support on each side.
func dependency(srcs []Node, src int, out fx.Rect, dx, dy float64) fx.Rect {
	if src < 0 || src >= len(srcs) || srcs[src] == nil {
		return fx.Rect{}
	}
	if dx > 0 || dy > 0 {
		out = out.Grow(dx, dy)
	}
	return out.Intersect(srcs[src].Bounds())
}

// dirty is the default DirtyRegion: the changed input grown by the
// operator's support and intersected with the node bounds.
func dirty(n Node, src int, in fx.Rect, dx, dy float64) fx.Rect {
	if src < 0 || src >= len(n.Sources()) {
		return fx.Rect{}
	}
	if dx > 0 || dy > 0 {
		in = in.Grow(dx, dy)
	}
	return in.Intersect(n.Bounds())
}

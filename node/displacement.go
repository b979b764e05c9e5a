package node

import (
	"fmt"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// Channel selects a color component of a displacement map.
type Channel = filter.Channel

// Channels of a displacement map.
const (
	ChannelR = filter.ChannelR
	ChannelG = filter.ChannelG
	ChannelB = filter.ChannelB
	ChannelA = filter.ChannelA
)

// DisplacementMap moves the pixels of its first source by amounts read
// from the second.
type DisplacementMap struct {
	base
	src, dmap Node
	scale     float64
	xc, yc    Channel
}

// NewDisplacementMap returns src displaced by dmap. A map value v moves
// the sample point by scale*(v/255 - 0.5) user units along each axis,
// with xc and yc selecting the channels read.
func NewDisplacementMap(src, dmap Node, scale float64, xc, yc Channel) (*DisplacementMap, error) {
	if src == nil || dmap == nil {
		return nil, fmt.Errorf("node: displacement needs source and map: %w", fx.ErrInvalidParameter)
	}
	if xc > ChannelA || yc > ChannelA {
		return nil, fmt.Errorf("node: displacement channels %v %v: %w", xc, yc, fx.ErrInvalidParameter)
	}
	return &DisplacementMap{src: src, dmap: dmap, scale: scale, xc: xc, yc: yc}, nil
}

// SetScale changes the displacement scale.
func (n *DisplacementMap) SetScale(scale float64) {
	n.scale = scale
	n.touch()
}

// Bounds implements Node.
func (n *DisplacementMap) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *DisplacementMap) Sources() []Node { return []Node{n.src, n.dmap} }

// DependencyRegion implements Node.
func (n *DisplacementMap) DependencyRegion(src int, out fx.Rect) fx.Rect {
	if src == 0 {
		d := math.Abs(n.scale) / 2
		return dependency(n.Sources(), src, out, d, d)
	}
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *DisplacementMap) DirtyRegion(src int, in fx.Rect) fx.Rect {
	if src == 0 {
		d := math.Abs(n.scale) / 2
		return dirty(n, src, in, d, d)
	}
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *DisplacementMap) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	s, ok := splitScale(ctx)
	if !ok {
		return nil
	}
	work := s.workRect(ctx, bounds)
	if work.Empty() {
		return nil
	}
	scaleX, scaleY := n.scale*math.Abs(s.sx), n.scale*math.Abs(s.sy)
	mx := int(math.Ceil(math.Abs(scaleX)/2)) + 1
	my := int(math.Ceil(math.Abs(scaleY)/2)) + 1

	in := pull(n.src, s.ctx, grow(work, mx, my))
	m := pull(n.dmap, s.ctx, work)
	out := filter.Displace(in, m, scaleX, scaleY, n.xc, n.yc).SubBuffer(work)
	return s.finish(ctx, raster.Freeze(out), bounds)
}

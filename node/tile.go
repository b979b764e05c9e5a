package node

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// Tile repeats the content of a tile rectangle over a tiled rectangle.
//
// Without overflow only the pixels inside the tile are repeated. With
// overflow, source content outside the tile travels with every copy and
// neighboring copies are composed with source-over.
type Tile struct {
	base
	src      Node
	tile     region.Region
	tiled    region.Region
	overflow bool
}

// NewTile returns src tiled: the content of tile is repeated over tiled,
// aligned so a copy starts at the tile origin.
func NewTile(src Node, tile, tiled region.Region, overflow bool) (*Tile, error) {
	if src == nil {
		return nil, fmt.Errorf("node: tile without source: %w", fx.ErrInvalidParameter)
	}
	if tile == nil || tiled == nil {
		return nil, fmt.Errorf("node: tile without region: %w", fx.ErrInvalidParameter)
	}
	return &Tile{src: src, tile: tile, tiled: tiled, overflow: overflow}, nil
}

// SetOverflow changes whether content outside the tile is repeated.
func (n *Tile) SetOverflow(overflow bool) {
	n.overflow = overflow
	n.touch()
}

// Bounds implements Node.
func (n *Tile) Bounds() fx.Rect { return n.tiled.Rect() }

// Sources implements Node.
func (n *Tile) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node. Every output pixel may come from
// anywhere in the tile.
func (n *Tile) DependencyRegion(src int, out fx.Rect) fx.Rect {
	if src != 0 || out.Intersect(n.Bounds()).Empty() {
		return fx.Rect{}
	}
	if n.overflow {
		return n.src.Bounds()
	}
	return n.tile.Rect().Intersect(n.src.Bounds())
}

// DirtyRegion implements Node.
func (n *Tile) DirtyRegion(src int, in fx.Rect) fx.Rect {
	if src != 0 {
		return fx.Rect{}
	}
	if !n.overflow && in.Intersect(n.tile.Rect()).Empty() {
		return fx.Rect{}
	}
	return n.Bounds()
}

// Render implements Node.
func (n *Tile) Render(ctx fx.RenderContext) raster.Raster {
	tiled, tile := n.tiled.Rect(), n.tile.Rect()
	if tile.Empty() {
		return nil
	}
	s, ok := splitScale(ctx)
	if !ok {
		return nil
	}
	work := s.workRect(ctx, tiled)
	if work.Empty() {
		return nil
	}

	sx, sy := math.Abs(s.sx), math.Abs(s.sy)
	tw := max(int(math.Round(tile.Width()*sx)), 1)
	th := max(int(math.Round(tile.Height()*sy)), 1)
	origin := s.scale.TransformPoint(tile.Min)
	ox, oy := int(math.Round(origin.X)), int(math.Round(origin.Y))
	tileDev := image.Rect(ox, oy, ox+tw, oy+th)
	fx.Logger().Debug("node: tile", "tile", tileDev, "work", work, "overflow", n.overflow)

	out := raster.NewBuffer(work, raster.FormatRGBAPremul)
	if n.overflow {
		stampOver(out, pull(n.src, s.ctx, grow(tileDev, tw, th)), tw, th)
	} else {
		t := pull(n.src, s.ctx, tileDev)
		at := s.scale.TransformPoint(tiled.Min)
		ax, ay := int(math.Round(at.X)), int(math.Round(at.Y))
		stamp(out, phaseShift(t, image.Pt(ax, ay)))
	}
	return s.finish(ctx, raster.Freeze(out), tiled)
}

// phaseShift returns the tile t rearranged to start at the tiled origin
// at. A copy of t placed at any lattice position t.Rect.Min + k*size
// matches the result placed at at + k*size. The result is assembled from
// up to four quadrants of t.
func phaseShift(t *raster.Buffer, at image.Point) *raster.Buffer {
	w, h := t.Rect.Dx(), t.Rect.Dy()
	px := mod(at.X-t.Rect.Min.X, w)
	py := mod(at.Y-t.Rect.Min.Y, h)
	if px == 0 && py == 0 {
		return t.Translate(at.X-t.Rect.Min.X, at.Y-t.Rect.Min.Y)
	}
	dst := raster.NewBuffer(image.Rect(at.X, at.Y, at.X+w, at.Y+h), t.Format)

	split := t.Rect.Min.Add(image.Pt(px, py))
	quads := [4]image.Rectangle{
		image.Rect(split.X, split.Y, t.Rect.Max.X, t.Rect.Max.Y),
		image.Rect(t.Rect.Min.X, split.Y, split.X, t.Rect.Max.Y),
		image.Rect(split.X, t.Rect.Min.Y, t.Rect.Max.X, split.Y),
		image.Rect(t.Rect.Min.X, t.Rect.Min.Y, split.X, split.Y),
	}
	for i, q := range quads {
		if q.Empty() {
			continue
		}
		// Quadrants right of (below) the split move to the left (top)
		// edge of the result and the others follow them.
		dx, dy := at.X-split.X, at.Y-split.Y
		if i%2 == 1 {
			dx += w
		}
		if i >= 2 {
			dy += h
		}
		raster.Copy(dst, t.SubBuffer(q).Translate(dx, dy))
	}
	return dst
}

// stamp copies t over dst at every lattice position t.Rect.Min + k*size.
func stamp(dst, t *raster.Buffer) {
	w, h := t.Rect.Dx(), t.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	y0 := t.Rect.Min.Y + floorDiv(dst.Rect.Min.Y-t.Rect.Min.Y, h)*h
	x0 := t.Rect.Min.X + floorDiv(dst.Rect.Min.X-t.Rect.Min.X, w)*w
	for y := y0; y < dst.Rect.Max.Y; y += h {
		for x := x0; x < dst.Rect.Max.X; x += w {
			raster.Copy(dst, t.Translate(x-t.Rect.Min.X, y-t.Rect.Min.Y))
		}
	}
}

// stampOver composes src onto dst at every offset (k*w, j*h) where the
// translated copy touches dst.
func stampOver(dst, src *raster.Buffer, w, h int) {
	if src.Empty() {
		return
	}
	kMin := floorDiv(dst.Rect.Min.X-src.Rect.Max.X, w)
	kMax := floorDiv(dst.Rect.Max.X-src.Rect.Min.X, w) + 1
	jMin := floorDiv(dst.Rect.Min.Y-src.Rect.Max.Y, h)
	jMax := floorDiv(dst.Rect.Max.Y-src.Rect.Min.Y, h) + 1
	for j := jMin; j <= jMax; j++ {
		for k := kMin; k <= kMax; k++ {
			s := src.Translate(k*w, j*h)
			r := s.Rect.Intersect(dst.Rect)
			if r.Empty() {
				continue
			}
			blend.Compose(dst.SubBuffer(r), s, fx.Over)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - floorDiv(a, b)*b
}

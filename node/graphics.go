package node

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/blend"
	"github.com/gogpu/fx/raster"
)

// Painter is vector content that can paint itself: the bridge from a
// scene graph into the filter pipeline.
type Painter interface {
	// Bounds returns the tight user-space bounds of the content.
	Bounds() fx.Rect

	// Paint draws the content into dst with the user-to-device transform
	// m, touching only pixels inside clip. dst holds premultiplied
	// pixels and is positioned in device space.
	Paint(dst draw.Image, m fx.Matrix, clip image.Rectangle)
}

// Graphics renders a Painter.
type Graphics struct {
	base
	painter Painter
}

// NewGraphics returns the leaf node rendering p.
func NewGraphics(p Painter) (*Graphics, error) {
	if p == nil {
		return nil, fmt.Errorf("node: graphics without painter: %w", fx.ErrInvalidParameter)
	}
	return &Graphics{painter: p}, nil
}

// Bounds implements Node.
func (n *Graphics) Bounds() fx.Rect { return n.painter.Bounds() }

// Sources implements Node.
func (n *Graphics) Sources() []Node { return nil }

// DependencyRegion implements Node.
func (n *Graphics) DependencyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// DirtyRegion implements Node.
func (n *Graphics) DirtyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// SetPainter replaces the painted content.
func (n *Graphics) SetPainter(p Painter) {
	n.painter = p
	n.touch()
}

// Render implements Node.
func (n *Graphics) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.painter.Bounds())
	if dev.Empty() {
		return nil
	}
	buf := raster.NewBuffer(dev, raster.FormatRGBAPremul)
	n.painter.Paint(buf.Image(), ctx.Transform(), dev)
	return raster.Freeze(buf)
}

// ShapePainter fills a shape with a solid color.
type ShapePainter struct {
	Shape     fx.Shape
	Color     color.Color
	Antialias bool
}

// FillShape returns an antialiased Painter filling s with c.
func FillShape(s fx.Shape, c color.Color) *ShapePainter {
	return &ShapePainter{Shape: s, Color: c, Antialias: true}
}

// Bounds implements Painter.
func (p *ShapePainter) Bounds() fx.Rect {
	return p.Shape.Bounds()
}

// Paint implements Painter.
func (p *ShapePainter) Paint(dst draw.Image, m fx.Matrix, clip image.Rectangle) {
	r := clip.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	fill := raster.NewBuffer(r, raster.FormatRGBAPremul)
	fill.Fill(p.Color)
	blend.MultiplyAlpha(fill, coverage(p.Shape, m, r, p.Antialias))
	draw.Draw(dst, r, fill.RGBA(), r.Min, draw.Over)
}

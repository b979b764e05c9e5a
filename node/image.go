package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Image draws a decoded raster into a user-space rectangle. The raster's
// pixel bounds are scaled onto the rectangle.
type Image struct {
	base
	src    raster.Raster
	bounds fx.Rect
}

// NewImage returns a node drawing r into bounds. A nil raster or an empty
// rectangle is invalid.
func NewImage(r raster.Raster, bounds fx.Rect) (*Image, error) {
	if r == nil {
		return nil, fmt.Errorf("node: image without raster: %w", fx.ErrInvalidParameter)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("node: image bounds %v: %w", bounds, fx.ErrInvalidParameter)
	}
	return &Image{src: r, bounds: bounds}, nil
}

// Bounds implements Node.
func (n *Image) Bounds() fx.Rect { return n.bounds }

// Sources implements Node.
func (n *Image) Sources() []Node { return nil }

// DependencyRegion implements Node.
func (n *Image) DependencyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// DirtyRegion implements Node.
func (n *Image) DirtyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// Raster returns the drawn raster.
func (n *Image) Raster() raster.Raster { return n.src }

// SetRaster replaces the drawn raster.
func (n *Image) SetRaster(r raster.Raster) {
	n.src = r
	n.touch()
}

// Render implements Node.
func (n *Image) Render(ctx fx.RenderContext) raster.Raster {
	return drawRaster(ctx, n.src, n.bounds)
}

// drawRaster maps the pixels of r onto the user rectangle bounds under
// ctx, cropped to the area of interest.
func drawRaster(ctx fx.RenderContext, r raster.Raster, bounds fx.Rect) raster.Raster {
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() || r == nil {
		return nil
	}
	pix := fx.RectFromImage(r.Bounds())
	if pix.Empty() {
		return nil
	}
	toUser := fx.Translate(bounds.Min.X, bounds.Min.Y).
		Multiply(fx.Scale(bounds.Width()/pix.Width(), bounds.Height()/pix.Height())).
		Multiply(fx.Translate(-pix.Min.X, -pix.Min.Y))
	m := ctx.Transform().Multiply(toUser)

	fx.Logger().Debug("node: image", "device", dev, "pixels", r.Bounds())
	out := raster.Affine(r, m, ctx.Hints().Interpolation())
	return raster.Pad(out, dev, raster.PadZero)
}

// Waiter yields a raster once it is available, blocking until then. A
// loader future is a Waiter.
type Waiter interface {
	Wait() raster.Raster
}

// FutureImage is an Image whose raster is still being decoded. The first
// Render blocks until the raster is ready.
type FutureImage struct {
	base
	future Waiter
	bounds fx.Rect
}

// NewFutureImage returns a node drawing the eventual raster of f into
// bounds.
func NewFutureImage(f Waiter, bounds fx.Rect) (*FutureImage, error) {
	if f == nil {
		return nil, fmt.Errorf("node: image without future: %w", fx.ErrInvalidParameter)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("node: image bounds %v: %w", bounds, fx.ErrInvalidParameter)
	}
	return &FutureImage{future: f, bounds: bounds}, nil
}

// Bounds implements Node.
func (n *FutureImage) Bounds() fx.Rect { return n.bounds }

// Sources implements Node.
func (n *FutureImage) Sources() []Node { return nil }

// DependencyRegion implements Node.
func (n *FutureImage) DependencyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// DirtyRegion implements Node.
func (n *FutureImage) DirtyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// Render implements Node.
func (n *FutureImage) Render(ctx fx.RenderContext) raster.Raster {
	if ctx.DeviceRect(n.bounds).Empty() {
		return nil
	}
	return drawRaster(ctx, n.future.Wait(), n.bounds)
}

package fx

import "image"

// RenderContext is the immutable input of every node rendering: the
// user-to-device transform, an optional area of interest in user space and
// the rendering hints. Derived contexts are created per graph edge with the
// With methods; a RenderContext is never modified in place.
type RenderContext struct {
	transform Matrix
	aoi       Shape
	hints     Hints
}

// ContextOption configures a RenderContext during creation.
type ContextOption func(*RenderContext)

// WithAOI sets the area of interest. A nil shape means unbounded.
func WithAOI(s Shape) ContextOption {
	return func(c *RenderContext) {
		c.aoi = s
	}
}

// WithHints replaces the hint set.
func WithHints(h Hints) ContextOption {
	return func(c *RenderContext) {
		c.hints = h
	}
}

// NewRenderContext creates a context with transform m.
//
// Example:
//
//	ctx := fx.NewRenderContext(fx.Scale(2, 2),
//	    fx.WithAOI(fx.XYWH(0, 0, 100, 100)),
//	    fx.WithHints(fx.Hints{}.With(fx.HintRendering, fx.RenderQuality)))
func NewRenderContext(m Matrix, opts ...ContextOption) RenderContext {
	c := RenderContext{transform: m}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Transform returns the user-to-device transform.
func (c RenderContext) Transform() Matrix {
	return c.transform
}

// AreaOfInterest returns the user-space area of interest, or nil when the
// whole node is wanted.
func (c RenderContext) AreaOfInterest() Shape {
	return c.aoi
}

// Hints returns the rendering hints.
func (c RenderContext) Hints() Hints {
	return c.hints
}

// WithTransform returns a copy of c using transform m.
func (c RenderContext) WithTransform(m Matrix) RenderContext {
	c.transform = m
	return c
}

// WithAreaOfInterest returns a copy of c using area of interest s.
func (c RenderContext) WithAreaOfInterest(s Shape) RenderContext {
	c.aoi = s
	return c
}

// WithHint returns a copy of c with one hint changed.
func (c RenderContext) WithHint(key HintKey, value any) RenderContext {
	c.hints = c.hints.With(key, value)
	return c
}

// Clip returns the user-space rectangle of bounds that the context asks
// for: bounds intersected with the area of interest bounds.
func (c RenderContext) Clip(bounds Rect) Rect {
	if c.aoi == nil {
		return bounds
	}
	return bounds.Intersect(c.aoi.Bounds())
}

// DeviceRect returns the device pixels covering the requested part of
// bounds. The result is empty when there is nothing to draw.
func (c RenderContext) DeviceRect(bounds Rect) image.Rectangle {
	r := c.Clip(bounds)
	if r.Empty() {
		return image.Rectangle{}
	}
	return c.transform.TransformRect(r).Device()
}

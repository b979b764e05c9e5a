// Package fx is a lazily evaluated raster filter-effects pipeline.
//
// A filter graph is a tree (or DAG) of render nodes from package node. Each
// node, given a [RenderContext], produces a raster from package raster on
// demand: nothing is computed until a consumer pulls a rendering. The context
// carries the user-to-device [Matrix], an optional area of interest and a set
// of immutable [Hints].
//
// # Quick Start
//
//	src := node.NewImage(raster.Wrap(img), fx.RectFromImage(img.Bounds()))
//	blur, err := node.NewGaussianBlur(src, 4, 4)
//	if err != nil {
//	    return err
//	}
//	ctx := fx.NewRenderContext(fx.Scale(2, 2))
//	r := blur.Render(ctx) // nil: nothing to paint
//
// # Coordinate Spaces
//
// Node bounds live in user space and never depend on the context. Rasters
// live in device space and always carry their integer origin, so a buffer
// index of zero never implies a logical origin of zero.
//
// # Logging
//
// fx produces no log output by default. Use [SetLogger] to route debug and
// warning records to any [log/slog] handler.
package fx

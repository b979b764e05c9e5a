// Package node implements the render node graph of the filter pipeline.
//
// Every operator is a [Node]. Nodes are built top-down from their sources
// and evaluated bottom-up: Render asks each source for a raster in a
// derived [fx.RenderContext], combines the results and returns a new
// raster. Nothing is computed before Render is called, and leaf rasters
// such as turbulence and lighting compute their tiles only when pixels are
// pulled.
//
// Node bounds are user-space rectangles that never depend on the context.
// Render returns nil when there is nothing to paint: an empty intersection
// of bounds and area of interest, a degenerate transform or an empty
// source. Constructors validate their parameters and return errors
// wrapping [fx.ErrInvalidParameter].
//
// Filters that work on a pixel grid (blur, morphology, displacement,
// lighting, tiling) split the device transform into a scale and a residual:
// sources are rendered with the scale only, the kernel runs on an
// axis-aligned grid and the residual rotation or shear is applied last.
package node

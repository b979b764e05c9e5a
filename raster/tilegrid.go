// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// DefaultTileSize is the edge length of the square tiles rasters use
// unless a producer asks for something else.
const DefaultTileSize = 64

// TileGrid divides a raster's bounds into fixed-size tiles anchored at an
// origin. Tiles on the right and bottom edges may be clipped by the
// bounds. Tile (0, 0) starts at Origin, so tile indices can be negative for
// bounds that extend above or left of the origin.
type TileGrid struct {
	Origin     image.Point
	TileWidth  int
	TileHeight int
	Bounds     image.Rectangle
}

// NewTileGrid returns a grid over bounds anchored at bounds.Min.
// Non-positive tile sizes fall back to DefaultTileSize.
func NewTileGrid(bounds image.Rectangle, tileWidth, tileHeight int) TileGrid {
	if tileWidth <= 0 {
		tileWidth = DefaultTileSize
	}
	if tileHeight <= 0 {
		tileHeight = DefaultTileSize
	}
	return TileGrid{
		Origin:     bounds.Min,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Bounds:     bounds,
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TileAt returns the index of the tile containing pixel (x, y).
func (g TileGrid) TileAt(x, y int) (tx, ty int) {
	return floorDiv(x-g.Origin.X, g.TileWidth), floorDiv(y-g.Origin.Y, g.TileHeight)
}

// TileRect returns the pixels of tile (tx, ty), clipped to Bounds.
func (g TileGrid) TileRect(tx, ty int) image.Rectangle {
	minX := g.Origin.X + tx*g.TileWidth
	minY := g.Origin.Y + ty*g.TileHeight
	return image.Rect(minX, minY, minX+g.TileWidth, minY+g.TileHeight).Intersect(g.Bounds)
}

// NumTiles returns the number of tile columns and rows covering Bounds.
func (g TileGrid) NumTiles() (nx, ny int) {
	if g.Bounds.Empty() || g.TileWidth <= 0 || g.TileHeight <= 0 {
		return 0, 0
	}
	minTX, minTY, maxTX, maxTY := g.TilesIn(g.Bounds)
	return maxTX - minTX, maxTY - minTY
}

// TilesIn returns the half-open range of tile indices overlapping r ∩ Bounds.
func (g TileGrid) TilesIn(r image.Rectangle) (minTX, minTY, maxTX, maxTY int) {
	r = r.Intersect(g.Bounds)
	if r.Empty() {
		return 0, 0, 0, 0
	}
	minTX, minTY = g.TileAt(r.Min.X, r.Min.Y)
	maxTX, maxTY = g.TileAt(r.Max.X-1, r.Max.Y-1)
	return minTX, minTY, maxTX + 1, maxTY + 1
}

// ForEach calls fn for every tile overlapping r, in row-major order, with
// the tile's rectangle clipped to r.
func (g TileGrid) ForEach(r image.Rectangle, fn func(tx, ty int, tile image.Rectangle)) {
	minTX, minTY, maxTX, maxTY := g.TilesIn(r)
	for ty := minTY; ty < maxTY; ty++ {
		for tx := minTX; tx < maxTX; tx++ {
			tile := g.TileRect(tx, ty).Intersect(r)
			if !tile.Empty() {
				fn(tx, ty, tile)
			}
		}
	}
}

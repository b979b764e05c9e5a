// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/fx/internal/parallel"
)

// FillFunc computes the pixels of dst. It must write every pixel of
// dst.Rect and nothing else.
type FillFunc func(dst *Buffer)

// lazy computes tiles on first request and keeps them for later pulls.
type lazy struct {
	bounds image.Rectangle
	format Format
	grid   TileGrid
	fill   FillFunc
	props  map[string]any

	mu       sync.Mutex
	tiles    map[image.Point]*lazyTile
	computed atomic.Int32
}

type lazyTile struct {
	once sync.Once
	buf  *Buffer
}

// Lazy returns a raster over bounds whose pixels are produced by fill one
// tile at a time, only when a consumer pulls them. Each tile is computed at
// most once; a pull spanning several missing tiles fills them in parallel,
// so fill must be safe for concurrent calls on distinct tiles. Lazy rasters
// are safe for concurrent reads.
func Lazy(bounds image.Rectangle, f Format, fill FillFunc, props map[string]any) Raster {
	return &lazy{
		bounds: bounds,
		format: f,
		grid:   NewTileGrid(bounds, DefaultTileSize, DefaultTileSize),
		fill:   fill,
		props:  props,
		tiles:  make(map[image.Point]*lazyTile),
	}
}

func (l *lazy) Bounds() image.Rectangle  { return l.bounds }
func (l *lazy) Format() Format           { return l.format }
func (l *lazy) SampleModel() SampleModel { return SampleModelOf(l.format) }
func (l *lazy) TileGrid() TileGrid       { return l.grid }

func (l *lazy) Data(r image.Rectangle) *Buffer {
	return pull(l, r)
}

func (l *lazy) Property(key string) (any, bool) {
	v, ok := l.props[key]
	return v, ok
}

func (l *lazy) CopyTo(dst *Buffer) *Buffer {
	var work []func()
	l.grid.ForEach(dst.Rect.Intersect(l.bounds), func(tx, ty int, part image.Rectangle) {
		work = append(work, func() {
			Copy(dst.SubBuffer(part), l.tile(tx, ty))
		})
	})
	// Parts are disjoint, so tiles may be written concurrently.
	parallel.Default().Run(work)
	return dst
}

func (l *lazy) tile(tx, ty int) *Buffer {
	key := image.Point{X: tx, Y: ty}
	l.mu.Lock()
	t, ok := l.tiles[key]
	if !ok {
		t = &lazyTile{}
		l.tiles[key] = t
	}
	l.mu.Unlock()

	t.once.Do(func() {
		buf := NewBuffer(l.grid.TileRect(tx, ty), l.format)
		l.fill(buf)
		t.buf = buf
		l.computed.Add(1)
	})
	return t.buf
}

// ComputedTiles returns how many tiles have been filled so far.
func ComputedTiles(r Raster) int {
	l, ok := r.(*lazy)
	if !ok {
		return 0
	}
	return int(l.computed.Load())
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Property keys understood by the filter nodes.
const (
	// PropAlphaOnly marks a raster whose producer rendered only coverage.
	// Value: bool.
	PropAlphaOnly = "alpha-only"

	// PropBrokenImage marks the placeholder substituted for an image that
	// failed to load. Value: bool.
	PropBrokenImage = "broken-image"
)

// Raster is a read-only rectangle of pixels in device space.
//
// Data and CopyTo never return or write pixels outside Bounds. Once
// returned from a producer, a Raster is immutable and may be shared by any
// number of consumers.
type Raster interface {
	// Bounds returns the device-space pixel rectangle.
	Bounds() image.Rectangle

	// Format returns the color model of the pixels.
	Format() Format

	// SampleModel returns the storage layout of buffers from Data.
	SampleModel() SampleModel

	// TileGrid returns the tile geometry of the raster.
	TileGrid() TileGrid

	// Data returns a copy of the pixels in Bounds() ∩ r. A zero-area
	// request yields an empty, non-nil Buffer.
	Data(r image.Rectangle) *Buffer

	// CopyTo fills the part of dst inside Bounds, converting to dst's
	// format, and returns dst. Pixels of dst outside Bounds are not touched.
	CopyTo(dst *Buffer) *Buffer

	// Property returns a producer-defined side-channel value.
	Property(key string) (any, bool)
}

// pull implements Data for any raster in terms of its CopyTo.
func pull(r Raster, rect image.Rectangle) *Buffer {
	rect = rect.Intersect(r.Bounds())
	buf := NewBuffer(rect, r.Format())
	if buf.Empty() {
		return buf
	}
	return r.CopyTo(buf)
}

// frozen exposes a finished Buffer as a Raster.
type frozen struct {
	buf   *Buffer
	grid  TileGrid
	props map[string]any
}

// Freeze returns a Raster backed by buf without copying. The caller gives
// up write access: buf must be freshly created and not referenced
// elsewhere for writing.
func Freeze(buf *Buffer) Raster {
	return &frozen{buf: buf, grid: NewTileGrid(buf.Rect, DefaultTileSize, DefaultTileSize)}
}

// FreezeWith is Freeze with side-channel properties.
func FreezeWith(buf *Buffer, props map[string]any) Raster {
	f := Freeze(buf).(*frozen)
	f.props = props
	return f
}

func (f *frozen) Bounds() image.Rectangle  { return f.buf.Rect }
func (f *frozen) Format() Format           { return f.buf.Format }
func (f *frozen) SampleModel() SampleModel { return SampleModelOf(f.buf.Format) }
func (f *frozen) TileGrid() TileGrid       { return f.grid }

func (f *frozen) Data(r image.Rectangle) *Buffer {
	return pull(f, r)
}

func (f *frozen) CopyTo(dst *Buffer) *Buffer {
	Copy(dst, f.buf)
	return dst
}

func (f *frozen) Property(key string) (any, bool) {
	v, ok := f.props[key]
	return v, ok
}

// BoolProperty reports whether r carries key set to true.
func BoolProperty(r Raster, key string) bool {
	v, ok := r.Property(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Empty returns a raster with no pixels.
func Empty(f Format) Raster {
	return Freeze(NewBuffer(image.Rectangle{}, f))
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides the read-only, tile-addressable pixel rasters
// exchanged between filter nodes.
//
// A [Raster] has fixed integer bounds in device space, a [Format] that
// describes its color model and a [SampleModel] that describes its storage.
// Pixels are pulled with Data or CopyTo; a raster never exposes storage
// that a caller could mutate.
//
// [Buffer] is the only writable pixel type. A producer allocates a Buffer,
// fills it and hands it out with [Freeze]; after that it must not be
// written again. Every Buffer carries its logical rectangle, so index zero
// of Pix is the pixel at Rect.Min, never an implicit (0, 0).
package raster

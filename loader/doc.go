// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package loader decodes images in the background for image nodes.
//
// A [Loader] resolves a URL to a [Future] at once and fetches, sniffs and
// decodes the bytes on its own goroutine. Completed rasters are kept in a
// sharded LRU cache keyed by URL, and concurrent requests for one URL share
// a single decode. Failures never surface as nil: the future fails, the
// error is logged at warn level and Wait returns a placeholder raster.
//
// Example:
//
//	l := loader.New(loader.WithCapacity(64))
//	f := l.Load("file:///tmp/texture.png")
//	img, _ := node.NewFutureImage(f, fx.XYWH(0, 0, 100, 100))
package loader

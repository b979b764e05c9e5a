// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Loader turns URLs into futures of decoded rasters. A Loader is safe for
// concurrent use; create one per document or application and pass it
// explicitly.
type Loader struct {
	cache    *Cache
	group    singleflight.Group
	registry *Registry
	fetcher  Fetcher
	logger   *slog.Logger
	maxSize  int
}

// New creates a loader.
func New(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.fetcher == nil {
		o.fetcher = &DefaultFetcher{}
	}
	return &Loader{
		cache:    NewCache(o.capacity),
		registry: o.registry,
		fetcher:  o.fetcher,
		logger:   o.logger,
		maxSize:  o.maxSize,
	}
}

func (l *Loader) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return fx.Logger()
}

// Cache returns the raster cache.
func (l *Loader) Cache() *Cache { return l.cache }

// Load starts loading rawURL and returns its future immediately. Cached
// rasters yield an already succeeded future. Concurrent loads of one URL
// fetch and decode it once.
func (l *Loader) Load(rawURL string) *Future {
	if r, ok := l.cache.Get(rawURL); ok {
		return Resolved(r)
	}
	f := newFuture()
	go func() {
		v, err, shared := l.group.Do(rawURL, func() (any, error) {
			if r, ok := l.cache.Get(rawURL); ok {
				return r, nil
			}
			r, err := l.load(rawURL)
			if err != nil {
				return nil, err
			}
			l.cache.Set(rawURL, r)
			return r, nil
		})
		if err != nil {
			if !shared {
				l.log().Warn("loader: image unavailable, using placeholder", "url", redact(rawURL), "err", err)
			}
			f.fail(err)
			return
		}
		f.succeed(v.(raster.Raster))
	}()
	return f
}

// Get loads rawURL and waits for the result.
func (l *Loader) Get(rawURL string) (raster.Raster, error) {
	f := l.Load(rawURL)
	return f.Wait(), f.Err()
}

// Decode decodes in-memory image data without caching.
func (l *Loader) Decode(data []byte) (raster.Raster, error) {
	img, mime, err := l.registry.Decode(data)
	if err != nil {
		return nil, err
	}
	img = l.fit(img)
	l.log().Debug("loader: decoded", "mime", mime, "bounds", img.Bounds())
	return raster.Wrap(img), nil
}

func (l *Loader) load(rawURL string) (raster.Raster, error) {
	data, err := l.fetcher.Fetch(context.Background(), rawURL)
	if err != nil {
		return nil, err
	}
	r, err := l.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", redact(rawURL), err)
	}
	return r, nil
}

// fit downsamples img so neither side exceeds maxSize.
func (l *Loader) fit(img image.Image) image.Image {
	b := img.Bounds()
	if l.maxSize <= 0 || (b.Dx() <= l.maxSize && b.Dy() <= l.maxSize) {
		return img
	}
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(h*l.maxSize/w, 1)
		w = l.maxSize
	} else {
		w = max(w*l.maxSize/h, 1)
		h = l.maxSize
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// redact shortens data: URLs for log output.
func redact(rawURL string) string {
	if IsDataURL(rawURL) && len(rawURL) > 48 {
		return rawURL[:48] + "..."
	}
	return rawURL
}

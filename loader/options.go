// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import "log/slog"

// Option configures a Loader during creation.
//
// Example:
//
//	l := loader.New(
//	    loader.WithCapacity(64),
//	    loader.WithMaxSize(2048),
//	)
type Option func(*options)

type options struct {
	capacity int
	registry *Registry
	fetcher  Fetcher
	logger   *slog.Logger
	maxSize  int
}

func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}

// WithCapacity sets how many rasters each cache shard keeps.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithRegistry replaces the format registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithFetcher replaces the byte source.
func WithFetcher(f Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithLogger sets the logger for load failures. By default the loader
// logs through fx.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxSize downsamples decoded images whose larger side exceeds n
// pixels. Zero keeps images at full size.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

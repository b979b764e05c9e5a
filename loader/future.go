// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"image"
	"sync"

	"github.com/gogpu/fx/raster"
)

// State is the lifecycle stage of a Future.
type State uint8

const (
	// Pending futures are still loading.
	Pending State = iota

	// Succeeded futures hold the decoded raster.
	Succeeded

	// Failed futures hold a placeholder raster and the error.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// placeholderSize is the extent of the broken-image stand-in.
var placeholderSize = image.Rect(0, 0, 16, 16)

// Future is the eventual result of a load. It moves from Pending to
// exactly one terminal state and never changes afterwards.
type Future struct {
	done chan struct{}

	mu    sync.Mutex
	state State
	r     raster.Raster
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a future that already succeeded with r.
func Resolved(r raster.Raster) *Future {
	f := newFuture()
	f.succeed(r)
	return f
}

// Rejected returns a future that already failed with err.
func Rejected(err error) *Future {
	f := newFuture()
	f.fail(err)
	return f
}

func (f *Future) succeed(r raster.Raster) {
	f.finish(Succeeded, r, nil)
}

func (f *Future) fail(err error) {
	f.finish(Failed, raster.Placeholder(placeholderSize), err)
}

func (f *Future) finish(s State, r raster.Raster, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Pending {
		return
	}
	f.state, f.r, f.err = s, r, err
	close(f.done)
}

// State returns the current state without blocking.
func (f *Future) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done returns a channel closed once the future is terminal.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the load completes and returns its raster. A failed
// load yields the placeholder, never nil.
func (f *Future) Wait() raster.Raster {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.r
}

// Err blocks until the load completes and returns its error, if any.
func (f *Future) Err() error {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sync"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when no registered decoder accepts the
// data.
var ErrUnsupportedFormat = errors.New("loader: unsupported image format")

// DecodeFunc decodes one image format.
type DecodeFunc func(io.Reader) (image.Image, error)

// Registry maps MIME types to decoders. Formats are recognized by their
// magic numbers, not by file names or declared content types.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// DefaultRegistry returns a registry for PNG, JPEG, GIF, BMP, TIFF and
// WebP.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("image/png", png.Decode)
	r.Register("image/jpeg", jpeg.Decode)
	r.Register("image/gif", gif.Decode)
	r.Register("image/bmp", bmp.Decode)
	r.Register("image/tiff", tiff.Decode)
	r.Register("image/webp", webp.Decode)
	return r
}

// Register installs (or replaces) the decoder for a MIME type.
func (r *Registry) Register(mime string, decode DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[mime] = decode
}

// Sniff returns the MIME type recognized from the leading bytes of data.
func (r *Registry) Sniff(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("loader: sniff: %w", err)
	}
	if kind == filetype.Unknown {
		return "", ErrUnsupportedFormat
	}
	return kind.MIME.Value, nil
}

// Decode sniffs data and decodes it with the matching decoder.
func (r *Registry) Decode(data []byte) (image.Image, string, error) {
	mime, err := r.Sniff(data)
	if err != nil {
		return nil, "", err
	}
	r.mu.RLock()
	decode, ok := r.decoders[mime]
	r.mu.RUnlock()
	if !ok {
		return nil, mime, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, mime, fmt.Errorf("loader: decode %s: %w", mime, err)
	}
	return img, mime, nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, rawURL string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return f(ctx, rawURL)
}

// DefaultFetcher reads data: URLs, file: URLs, bare paths and
// http(s): URLs.
type DefaultFetcher struct {
	// Client performs HTTP requests; nil means http.DefaultClient.
	Client *http.Client

	// MaxBytes limits the size of a fetched resource; 0 means no limit.
	MaxBytes int64
}

// Fetch implements Fetcher.
func (f *DefaultFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if IsDataURL(rawURL) {
		d, err := ParseDataURL(rawURL)
		if err != nil {
			return nil, err
		}
		return d.Data, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Bare path, including Windows drive letters.
		return f.readFile(rawURL)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return f.readFile(u.Path)
	case "http", "https":
		return f.get(ctx, u.String())
	}
	return nil, fmt.Errorf("loader: unsupported scheme %q", u.Scheme)
}

func (f *DefaultFetcher) readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer file.Close()
	return f.readAll(file)
}

func (f *DefaultFetcher) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: get %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loader: get %s: %s", u, resp.Status)
	}
	return f.readAll(resp.Body)
}

func (f *DefaultFetcher) readAll(r io.Reader) ([]byte, error) {
	if f.MaxBytes > 0 {
		r = io.LimitReader(r, f.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	if f.MaxBytes > 0 && int64(len(data)) > f.MaxBytes {
		return nil, fmt.Errorf("loader: resource exceeds %d bytes", f.MaxBytes)
	}
	return data, nil
}

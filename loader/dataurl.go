// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package loader

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidDataURL is returned for malformed data: URLs.
var ErrInvalidDataURL = errors.New("loader: invalid data URL")

// DataURL is a decoded data: URL.
type DataURL struct {
	MediaType string
	Data      []byte
}

// IsDataURL reports whether s uses the data: scheme.
func IsDataURL(s string) bool {
	return len(s) >= 5 && strings.EqualFold(s[:5], "data:")
}

// ParseDataURL decodes data:[<mediatype>][;base64],<payload>. The media
// type defaults to text/plain;charset=US-ASCII. Without ;base64 the
// payload is percent-decoded.
func ParseDataURL(s string) (*DataURL, error) {
	if !IsDataURL(s) {
		return nil, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURL)
	}
	header, payload, ok := strings.Cut(s[5:], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURL)
	}

	params := strings.Split(header, ";")
	b64 := false
	if n := len(params); n > 0 && strings.EqualFold(strings.TrimSpace(params[n-1]), "base64") {
		b64 = true
		params = params[:n-1]
	}
	mediaType := strings.TrimSpace(strings.Join(params, ";"))
	if mediaType == "" || strings.HasPrefix(mediaType, ";") {
		mediaType = "text/plain;charset=US-ASCII" + mediaType
	}

	var data []byte
	if b64 {
		// Whitespace is common in hand-written documents.
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, payload)
		if unescaped, err := url.PathUnescape(clean); err == nil {
			clean = unescaped
		}
		var err error
		data, err = base64.StdEncoding.DecodeString(clean)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
		}
	} else {
		text, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
		}
		data = []byte(text)
	}
	return &DataURL{MediaType: mediaType, Data: data}, nil
}

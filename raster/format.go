// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Format is a pixel color model: channel count, order, alpha presence and
// premultiplication. All formats use 8 bits per channel.
type Format uint8

const (
	// FormatAlpha8 is coverage only (1 byte per pixel).
	FormatAlpha8 Format = iota

	// FormatGray8 is opaque 8-bit grayscale (1 byte per pixel).
	FormatGray8

	// FormatRGB8 is opaque 24-bit RGB (3 bytes per pixel).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight (non-premultiplied) alpha.
	FormatRGBA8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha.
	// All compositing and resampling happens in this format.
	FormatRGBAPremul

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of stored channels.
	Channels int

	// HasAlpha indicates if the format stores alpha.
	HasAlpha bool

	// IsPremultiplied indicates if color is premultiplied by alpha.
	IsPremultiplied bool

	// IsGrayscale indicates a single luminance channel.
	IsGrayscale bool

	// AlphaOffset is the byte offset of alpha within a pixel, or -1.
	AlphaOffset int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatAlpha8: {
		BytesPerPixel: 1,
		Channels:      1,
		HasAlpha:      true,
		AlphaOffset:   0,
	},
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsGrayscale:   true,
		AlphaOffset:   -1,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		AlphaOffset:   -1,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		AlphaOffset:   3,
	},
	FormatRGBAPremul: {
		BytesPerPixel:   4,
		Channels:        4,
		HasAlpha:        true,
		IsPremultiplied: true,
		AlphaOffset:     3,
	},
}

var formatNames = [formatCount]string{
	FormatAlpha8:     "Alpha8",
	FormatGray8:      "Gray8",
	FormatRGB8:       "RGB8",
	FormatRGBA8:      "RGBA8",
	FormatRGBAPremul: "RGBAPremul",
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{AlphaOffset: -1}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of stored channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format stores alpha.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsPremultiplied returns true if color is premultiplied by alpha.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsAlphaOnly reports whether the format stores nothing but alpha.
func (f Format) IsAlphaOnly() bool {
	return f == FormatAlpha8
}

// RowBytes returns the minimum stride for a row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns the format name.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return formatNames[f]
}

// SampleModel describes the physical storage of the buffers a raster
// returns. It is always coherent with the raster's Format.
type SampleModel struct {
	// PixelStride is the distance in bytes between adjacent pixels.
	PixelStride int

	// Bands is the number of samples per pixel.
	Bands int

	// AlphaBand is the index of the alpha sample, or -1.
	AlphaBand int
}

// SampleModelOf returns the packed interleaved layout for f.
func SampleModelOf(f Format) SampleModel {
	info := f.Info()
	return SampleModel{
		PixelStride: info.BytesPerPixel,
		Bands:       info.Channels,
		AlphaBand:   info.AlphaOffset,
	}
}

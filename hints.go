package fx

// HintKey names a rendering hint.
type HintKey uint8

const (
	// HintRendering selects quality vs. speed trade-offs. Value: Rendering.
	HintRendering HintKey = iota

	// HintInterpolation selects the resampling filter. Value: Interpolation.
	HintInterpolation

	// HintColorInterpolation selects the color space filters operate in.
	// Value: ColorSpace.
	HintColorInterpolation

	// HintFilterAsAlpha tells sources that the consumer only needs alpha.
	// Value: bool.
	HintFilterAsAlpha
)

// Rendering is the value of HintRendering.
type Rendering uint8

const (
	RenderDefault Rendering = iota
	RenderQuality
	RenderSpeed
)

// Interpolation is the value of HintInterpolation.
type Interpolation uint8

const (
	// InterpBilinear is the default resampling filter.
	InterpBilinear Interpolation = iota
	InterpNearest
	InterpBicubic
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	case InterpBicubic:
		return "bicubic"
	default:
		return "unknown"
	}
}

// ColorSpace is the value of HintColorInterpolation.
type ColorSpace uint8

const (
	ColorSRGB ColorSpace = iota
	ColorLinearRGB
)

// Hints is an immutable mapping from hint keys to values.
// The zero value holds no hints. With returns a modified copy.
type Hints struct {
	m map[HintKey]any
}

// With returns a copy of h with key set to value.
func (h Hints) With(key HintKey, value any) Hints {
	m := make(map[HintKey]any, len(h.m)+1)
	for k, v := range h.m {
		m[k] = v
	}
	m[key] = value
	return Hints{m: m}
}

// Without returns a copy of h with key removed.
func (h Hints) Without(key HintKey) Hints {
	if _, ok := h.m[key]; !ok {
		return h
	}
	m := make(map[HintKey]any, len(h.m))
	for k, v := range h.m {
		if k != key {
			m[k] = v
		}
	}
	return Hints{m: m}
}

// Get returns the value stored for key.
func (h Hints) Get(key HintKey) (any, bool) {
	v, ok := h.m[key]
	return v, ok
}

// Len returns the number of hints set.
func (h Hints) Len() int {
	return len(h.m)
}

// Rendering returns the HintRendering value, or RenderDefault.
func (h Hints) Rendering() Rendering {
	v, _ := h.m[HintRendering].(Rendering)
	return v
}

// Interpolation returns the HintInterpolation value, or InterpBilinear.
func (h Hints) Interpolation() Interpolation {
	v, _ := h.m[HintInterpolation].(Interpolation)
	return v
}

// ColorSpace returns the HintColorInterpolation value, or ColorSRGB.
func (h Hints) ColorSpace() ColorSpace {
	v, _ := h.m[HintColorInterpolation].(ColorSpace)
	return v
}

// FilterAsAlpha reports whether HintFilterAsAlpha is set to true.
func (h Hints) FilterAsAlpha() bool {
	v, _ := h.m[HintFilterAsAlpha].(bool)
	return v
}

// Package blend implements the SVG composite operators and blend modes on
// premultiplied RGBA pixels.
//
// All kernels take and return premultiplied 8-bit components. Every result
// is clamped to [0, 255] and color components never exceed alpha.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - SVG 1.1 feComposite and feBlend
//   - Jim Blinn, "Three Wrongs Make a Right" (exact division by 255)
package blend

// mulDiv255 returns round(a*b/255) exactly, without a division.
func mulDiv255(a, b byte) byte {
	t := uint32(a)*uint32(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// div255 returns round(x/255) for x in [0, 255*255*3].
func div255(x uint32) uint32 {
	return (x + 127) / 255
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// clampInt clamps v to [0, hi].
func clampInt(v, hi int) byte {
	if v < 0 {
		return 0
	}
	if v > hi {
		return byte(hi)
	}
	return byte(v)
}

// minByte returns the smaller of two bytes.
func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

// screenAlpha is the alpha rule shared by multiply, screen, darken and
// lighten: s + d - s*d/255.
func screenAlpha(sa, da byte) byte {
	return addClamp(sa, da-mulDiv255(sa, da))
}

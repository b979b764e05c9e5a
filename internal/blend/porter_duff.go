package blend

import "github.com/gogpu/fx"

// BlendFunc blends one source pixel into one destination pixel.
// All values are premultiplied alpha, 0-255.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// For returns the blend function for a composite rule. Unknown operators
// fall back to over.
func For(rule fx.CompositeRule) BlendFunc {
	switch rule.Op {
	case fx.CompositeIn:
		return blendIn
	case fx.CompositeOut:
		return blendOut
	case fx.CompositeAtop:
		return blendAtop
	case fx.CompositeXor:
		return blendXor
	case fx.CompositeArithmetic:
		return arithmetic(rule.K1, rule.K2, rule.K3, rule.K4)
	case fx.CompositeMultiply:
		return blendMultiply
	case fx.CompositeScreen:
		return blendScreen
	case fx.CompositeDarken:
		return blendDarken
	case fx.CompositeLighten:
		return blendLighten
	default:
		return blendOver
	}
}

// blendOver composites source over destination.
// Formula: S + D*(1-Sa)
func blendOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendIn keeps the source where the destination is opaque.
// Formula: S*Da
func blendIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// blendOut keeps the source where the destination is transparent.
// Formula: S*(1-Da)
func blendOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := inv255(da)
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// blendAtop composites source over destination, keeping destination alpha.
// Formula: S*Da + D*(1-Sa)
func blendAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// blendXor keeps source and destination where the other is transparent.
// Formula: S*(1-Da) + D*(1-Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := inv255(da)
	invSa := inv255(sa)
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// arithmetic returns the feComposite arithmetic operator:
// k1*S*D + k2*S + k3*D + k4, evaluated per component in [0, 255].
func arithmetic(k1, k2, k3, k4 float64) BlendFunc {
	kk1 := k1 / 255
	kk4 := k4*255 + 0.5
	ch := func(s, d byte) int {
		fs, fd := float64(s), float64(d)
		v := kk1*fs*fd + k2*fs + k3*fd + kk4
		if v < 0 {
			return 0
		}
		return int(v)
	}
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		a := clampInt(ch(sa, da), 255)
		return clampInt(ch(sr, dr), int(a)),
			clampInt(ch(sg, dg), int(a)),
			clampInt(ch(sb, db), int(a)),
			a
	}
}

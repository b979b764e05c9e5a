package blend

// blendMultiply is the feBlend multiply mode.
// Color: S*(1-Da) + D*(1-Sa) + S*D; alpha: Sa + Da - Sa*Da.
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	srcM := uint32(inv255(da))
	dstM := uint32(inv255(sa))
	ch := func(s, d byte) byte {
		v := div255(uint32(s)*srcM + uint32(d)*dstM + uint32(s)*uint32(d))
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	a := screenAlpha(sa, da)
	return minByte(ch(sr, dr), a), minByte(ch(sg, dg), a), minByte(ch(sb, db), a), a
}

// blendScreen is the feBlend screen mode, applied to every component.
// Formula: S + D - S*D
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return screenAlpha(sr, dr), screenAlpha(sg, dg), screenAlpha(sb, db), screenAlpha(sa, da)
}

// extended returns the two alpha-compensated candidates darken and
// lighten choose between: S*(1-Da) + D and D*(1-Sa) + S.
func extended(s, d, invDa, invSa byte) (t1, t2 byte) {
	return addClamp(mulDiv255(s, invDa), d), addClamp(mulDiv255(d, invSa), s)
}

// blendDarken is the feBlend darken mode: per channel minimum of the
// extended values, screen alpha.
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa, invSa := inv255(da), inv255(sa)
	pick := func(s, d byte) byte {
		t1, t2 := extended(s, d, invDa, invSa)
		return minByte(t1, t2)
	}
	return pick(sr, dr), pick(sg, dg), pick(sb, db), screenAlpha(sa, da)
}

// blendLighten is the feBlend lighten mode: per channel maximum of the
// extended values, screen alpha.
func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa, invSa := inv255(da), inv255(sa)
	a := screenAlpha(sa, da)
	pick := func(s, d byte) byte {
		t1, t2 := extended(s, d, invDa, invSa)
		return minByte(max(t1, t2), a)
	}
	return pick(sr, dr), pick(sg, dg), pick(sb, db), a
}

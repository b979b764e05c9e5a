package fx

// CompositeOp selects a per-pixel composite or blend function.
type CompositeOp uint8

const (
	CompositeOver CompositeOp = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
	CompositeMultiply
	CompositeScreen
	CompositeDarken
	CompositeLighten
)

var compositeNames = [...]string{
	CompositeOver:       "over",
	CompositeIn:         "in",
	CompositeOut:        "out",
	CompositeAtop:       "atop",
	CompositeXor:        "xor",
	CompositeArithmetic: "arithmetic",
	CompositeMultiply:   "multiply",
	CompositeScreen:     "screen",
	CompositeDarken:     "darken",
	CompositeLighten:    "lighten",
}

// String returns the SVG name of the operator.
func (op CompositeOp) String() string {
	if int(op) < len(compositeNames) {
		return compositeNames[op]
	}
	return "unknown"
}

// CompositeRule is an operator plus the four arithmetic coefficients.
// K1..K4 are only read by CompositeArithmetic.
type CompositeRule struct {
	Op             CompositeOp
	K1, K2, K3, K4 float64
}

// Common rules.
var (
	Over     = CompositeRule{Op: CompositeOver}
	In       = CompositeRule{Op: CompositeIn}
	Out      = CompositeRule{Op: CompositeOut}
	Atop     = CompositeRule{Op: CompositeAtop}
	Xor      = CompositeRule{Op: CompositeXor}
	Multiply = CompositeRule{Op: CompositeMultiply}
	Screen   = CompositeRule{Op: CompositeScreen}
	Darken   = CompositeRule{Op: CompositeDarken}
	Lighten  = CompositeRule{Op: CompositeLighten}
)

// Arithmetic returns the rule k1*s*d + k2*s + k3*d + k4.
func Arithmetic(k1, k2, k3, k4 float64) CompositeRule {
	return CompositeRule{Op: CompositeArithmetic, K1: k1, K2: k2, K3: k3, K4: k4}
}

package blend

import (
	"testing"

	"github.com/gogpu/fx"
)

type px [4]byte

func apply(rule fx.CompositeRule, s, d px) px {
	r, g, b, a := For(rule)(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
	return px{r, g, b, a}
}

// samplePixels returns a spread of valid premultiplied pixels.
func samplePixels() []px {
	var out []px
	for _, a := range []byte{0, 1, 64, 128, 200, 255} {
		for _, c := range []byte{0, 1, 63, 127, 254, 255} {
			if c > a {
				continue
			}
			out = append(out, px{c, a - c/2, a / 3, a})
		}
	}
	return out
}

func TestOverIdentityLaws(t *testing.T) {
	for _, d := range samplePixels() {
		for _, s := range samplePixels() {
			if s[3] != 255 {
				continue
			}
			if got := apply(fx.Over, s, d); got != s {
				t.Fatalf("opaque %v over %v = %v, want source", s, d, got)
			}
		}
		if got := apply(fx.Over, px{}, d); got != d {
			t.Fatalf("transparent over %v = %v, want destination", d, got)
		}
	}
}

func TestCompositeKernels(t *testing.T) {
	red := px{255, 0, 0, 255}
	blue := px{0, 0, 255, 255}
	white := px{255, 255, 255, 255}
	dark := px{10, 20, 30, 255}

	tests := []struct {
		name string
		rule fx.CompositeRule
		s, d px
		want px
	}{
		{"in half", fx.In, px{200, 100, 50, 200}, px{0, 0, 0, 128}, px{100, 50, 25, 100}},
		{"in transparent", fx.In, red, px{}, px{}},
		{"out transparent", fx.Out, px{200, 100, 50, 200}, px{}, px{200, 100, 50, 200}},
		{"out opaque", fx.Out, red, blue, px{}},
		{"atop keeps dst alpha", fx.Atop, red, px{0, 0, 128, 128}, px{128, 0, 0, 128}},
		{"xor opaque", fx.Xor, red, blue, px{}},
		{"xor disjoint", fx.Xor, red, px{}, red},
		{"arithmetic source", fx.Arithmetic(0, 1, 0, 0), dark, red, dark},
		{"arithmetic dest", fx.Arithmetic(0, 0, 1, 0), dark, red, red},
		{"arithmetic product", fx.Arithmetic(1, 0, 0, 0), white, dark, dark},
		{"arithmetic clamps", fx.Arithmetic(0, 0, 0, 2), dark, dark, white},
		{"arithmetic negative", fx.Arithmetic(0, -1, 0, 0), dark, dark, px{}},
		{"multiply primaries", fx.Multiply, red, blue, px{0, 0, 0, 255}},
		{"multiply white", fx.Multiply, white, dark, dark},
		{"screen", fx.Screen, red, blue, px{255, 0, 255, 255}},
		{"darken", fx.Darken, white, dark, dark},
		{"darken transparent src", fx.Darken, px{}, px{10, 20, 30, 40}, px{10, 20, 30, 40}},
		{"lighten", fx.Lighten, white, dark, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(tt.rule, tt.s, tt.d); got != tt.want {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.rule.Op, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestKernelsKeepPremultipliedInvariant(t *testing.T) {
	rules := []fx.CompositeRule{
		fx.Over, fx.In, fx.Out, fx.Atop, fx.Xor, fx.Multiply, fx.Screen, fx.Darken, fx.Lighten,
		fx.Arithmetic(0.5, 0.75, 0.75, 0.1),
	}
	for _, rule := range rules {
		for _, s := range samplePixels() {
			for _, d := range samplePixels() {
				got := apply(rule, s, d)
				for i := range 3 {
					if got[i] > got[3] {
						t.Fatalf("%s(%v, %v) = %v: color exceeds alpha", rule.Op, s, d, got)
					}
				}
			}
		}
	}
}

func TestForUnknownFallsBackToOver(t *testing.T) {
	rule := fx.CompositeRule{Op: fx.CompositeOp(200)}
	if got := apply(rule, px{}, px{1, 2, 3, 4}); got != (px{1, 2, 3, 4}) {
		t.Errorf("unknown operator = %v, want over behavior", got)
	}
}

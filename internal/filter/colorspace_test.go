package filter

import (
	"image"
	"testing"
)

func TestColorSpaceEndpoints(t *testing.T) {
	for _, v := range []byte{0, 255} {
		if srgbToLinear[v] != v || linearToSRGB[v] != v {
			t.Errorf("endpoint %d not preserved: %d, %d", v, srgbToLinear[v], linearToSRGB[v])
		}
	}
	// Mid gray is darker in linear light.
	if got := srgbToLinear[128]; got < 50 || got > 60 {
		t.Errorf("srgbToLinear[128] = %d, want about 55", got)
	}
}

func TestColorSpaceRoundTripOpaque(t *testing.T) {
	b := solidBuffer(image.Rect(0, 0, 1, 1), 200, 150, 100, 255)
	ToLinearRGB(b)
	ToSRGB(b)

	p := pixel(b, 0, 0)
	want := [4]byte{200, 150, 100, 255}
	for c := range p {
		if absDiff(p[c], want[c]) > 2 {
			t.Errorf("round trip = %v, want about %v", p, want)
			break
		}
	}
}

func TestColorSpaceKeepsAlpha(t *testing.T) {
	b := gradientBuffer(image.Rect(0, 0, 8, 8))
	before := b.Clone()
	ToLinearRGB(b)

	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] != before.Pix[i] {
			t.Fatalf("alpha at %d changed from %d to %d", i, before.Pix[i], b.Pix[i])
		}
	}
	if !premulValid(b) {
		t.Error("color exceeds alpha after conversion")
	}
}

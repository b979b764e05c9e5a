package filter

import (
	"bytes"
	"image"
	"testing"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

func renderNoise(p TurbulenceParams, r image.Rectangle) *raster.Buffer {
	dst := raster.NewBuffer(r, raster.FormatRGBA8)
	NewTurbulence(p, fx.Identity()).Fill(dst, fx.Identity())
	return dst
}

func TestTurbulenceDeterministic(t *testing.T) {
	p := TurbulenceParams{BaseFrequencyX: 0.05, BaseFrequencyY: 0.05, Octaves: 3, Seed: 7}
	r := image.Rect(0, 0, 32, 32)

	a, b := renderNoise(p, r), renderNoise(p, r)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same parameters produced different noise")
	}

	p.Seed = 8
	if c := renderNoise(p, r); bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds produced identical noise")
	}
}

func TestTurbulenceOctaveLimit(t *testing.T) {
	p := TurbulenceParams{BaseFrequencyX: 0.05, BaseFrequencyY: 0.05, Octaves: 20}
	if got := NewTurbulence(p, fx.Identity()).Octaves(); got != 5 {
		t.Errorf("Octaves() = %d, want 5", got)
	}

	p.Octaves = 3
	if got := NewTurbulence(p, fx.Identity()).Octaves(); got != 3 {
		t.Errorf("Octaves() = %d, want 3", got)
	}

	p = TurbulenceParams{BaseFrequencyX: 0.0001, BaseFrequencyY: 0.0001, Octaves: 20}
	if got := NewTurbulence(p, fx.Identity()).Octaves(); got != 8 {
		t.Errorf("Octaves() = %d, want cap of 8", got)
	}
}

func TestTurbulenceZeroFrequency(t *testing.T) {
	p := TurbulenceParams{Octaves: 4}
	if got := NewTurbulence(p, fx.Identity()).Octaves(); got != 4 {
		t.Errorf("Octaves() = %d, want 4", got)
	}
}

func TestFractalNoiseCentered(t *testing.T) {
	p := TurbulenceParams{BaseFrequencyX: 0.1, BaseFrequencyY: 0.1, Octaves: 2, Seed: 1, Fractal: true}
	dst := renderNoise(p, image.Rect(0, 0, 64, 64))

	var sum int
	for _, v := range dst.Pix {
		sum += int(v)
	}
	mean := sum / len(dst.Pix)
	if mean < 100 || mean > 155 {
		t.Errorf("mean = %d, want near 127", mean)
	}
}

func TestTurbulenceFillHonorsOrigin(t *testing.T) {
	p := TurbulenceParams{BaseFrequencyX: 0.07, BaseFrequencyY: 0.03, Octaves: 2, Seed: 3}
	whole := renderNoise(p, image.Rect(0, 0, 20, 20))
	part := renderNoise(p, image.Rect(10, 5, 20, 15))

	for y := 5; y < 15; y++ {
		for x := 10; x < 20; x++ {
			if pixel(whole, x, y) != pixel(part, x, y) {
				t.Fatalf("pixel(%d,%d) differs between tiles", x, y)
			}
		}
	}
}

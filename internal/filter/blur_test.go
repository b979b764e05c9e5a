package filter

import (
	"bytes"
	"image"
	"testing"

	"github.com/gogpu/fx/raster"
)

func TestGaussianBlurZeroSigmaIsIdentity(t *testing.T) {
	src := gradientBuffer(image.Rect(-3, 5, 17, 21))

	for _, quality := range []bool{false, true} {
		got := GaussianBlur(src, 0, 0, quality)
		if got.Rect != src.Rect {
			t.Fatalf("Rect = %v, want %v", got.Rect, src.Rect)
		}
		if !bytes.Equal(got.Pix, src.Pix) {
			t.Errorf("quality=%v: sigma 0 changed pixels", quality)
		}
	}
}

func TestGaussianBlurDoesNotModifySource(t *testing.T) {
	src := gradientBuffer(image.Rect(0, 0, 16, 16))
	want := src.Clone()

	GaussianBlur(src, 3, 3, false)
	GaussianBlur(src, 1, 1, true)

	if !bytes.Equal(src.Pix, want.Pix) {
		t.Error("GaussianBlur modified its source")
	}
}

func TestGaussianBlurUniformInterior(t *testing.T) {
	r := image.Rect(100, 100, 140, 140)
	src := solidBuffer(r, 200, 100, 50, 255)

	tests := []struct {
		name    string
		sigma   float64
		quality bool
	}{
		{"box even", 3, false},
		{"box odd", 5, false},
		{"kernel", 1.5, true},
	}
	for _, tt := range tests {
		got := GaussianBlur(src, tt.sigma, tt.sigma, tt.quality)
		p := pixel(got, 120, 120)
		want := [4]byte{200, 100, 50, 255}
		for c := range p {
			if absDiff(p[c], want[c]) > 1 {
				t.Errorf("%s: center = %v, want %v", tt.name, p, want)
				break
			}
		}
	}
}

func TestBoxBlurOddIsSymmetric(t *testing.T) {
	r := image.Rect(0, 0, 41, 41)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 20, 20, 255, 255, 255, 255)

	got := GaussianBlur(src, 5, 5, false) // d = 9
	for k := 1; k <= 12; k++ {
		l, rr := pixel(got, 20-k, 20), pixel(got, 20+k, 20)
		u, d := pixel(got, 20, 20-k), pixel(got, 20, 20+k)
		if l != rr || u != d {
			t.Errorf("offset %d: left %v right %v up %v down %v", k, l, rr, u, d)
		}
	}
	if p := pixel(got, 20-13, 20); p[3] != 0 {
		t.Errorf("pixel beyond the box radius = %v, want transparent", p)
	}
}

func TestBoxBlurEvenStaysCentered(t *testing.T) {
	r := image.Rect(0, 0, 41, 1)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 20, 0, 255, 255, 255, 255)

	BoxBlur(src, 4, false)
	for k := 1; k <= 5; k++ {
		l, rr := pixel(src, 20-k, 0), pixel(src, 20+k, 0)
		if absDiff(l[3], rr[3]) > 1 {
			t.Errorf("offset %d: left alpha %d right alpha %d", k, l[3], rr[3])
		}
	}
	if p := pixel(src, 26, 0); p[3] != 0 {
		t.Errorf("pixel beyond radius 5 = %v, want transparent", p)
	}
}

func TestGaussianBlurKeepsPremultipliedInvariant(t *testing.T) {
	src := gradientBuffer(image.Rect(0, 0, 32, 24))

	for _, quality := range []bool{false, true} {
		if got := GaussianBlur(src, 2.5, 4, quality); !premulValid(got) {
			t.Errorf("quality=%v: color exceeds alpha after blur", quality)
		}
	}
}

func TestGaussianBlurConvertsStraightAlpha(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	src := raster.NewBuffer(r, raster.FormatRGBA8)
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 128
	}

	got := GaussianBlur(src, 0, 0, false)
	if got.Format != raster.FormatRGBAPremul {
		t.Fatalf("Format = %v, want RGBAPremul", got.Format)
	}
	if p := pixel(got, 1, 1); p[0] != 128 || p[3] != 128 {
		t.Errorf("pixel = %v, want premultiplied red at half alpha", p)
	}
}

func TestBlurRadius(t *testing.T) {
	if got := BlurRadius(0, false); got != 0 {
		t.Errorf("BlurRadius(0) = %d, want 0", got)
	}
	if got, want := BlurRadius(5, false), BoxBlurRadius(9); got != want {
		t.Errorf("BlurRadius(5, fast) = %d, want %d", got, want)
	}
	if got, want := BlurRadius(5, true), QualityRadius(5); got != want {
		t.Errorf("BlurRadius(5, quality) = %d, want %d", got, want)
	}
	if got, want := BlurRadius(1, false), QualityRadius(1); got != want {
		t.Errorf("BlurRadius(1, fast) = %d, want %d (small sigma uses the kernel)", got, want)
	}
}

func TestUseBoxBlur(t *testing.T) {
	tests := []struct {
		sigma   float64
		quality bool
		want    bool
	}{
		{1.9, false, false},
		{2, false, true},
		{10, false, true},
		{10, true, false},
	}
	for _, tt := range tests {
		if got := UseBoxBlur(tt.sigma, tt.quality); got != tt.want {
			t.Errorf("UseBoxBlur(%v, %v) = %v, want %v", tt.sigma, tt.quality, got, tt.want)
		}
	}
}

func BenchmarkGaussianBlurBox(b *testing.B) {
	src := gradientBuffer(image.Rect(0, 0, 512, 512))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GaussianBlur(src, 10, 10, false)
	}
}

func BenchmarkGaussianBlurKernel(b *testing.B) {
	src := gradientBuffer(image.Rect(0, 0, 512, 512))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GaussianBlur(src, 3, 3, true)
	}
}

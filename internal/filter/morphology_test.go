package filter

import (
	"bytes"
	"image"
	"testing"

	"github.com/gogpu/fx/raster"
)

func TestMorphologyDilatePixel(t *testing.T) {
	r := image.Rect(0, 0, 11, 11)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 5, 5, 255, 0, 0, 255)

	got := Morphology(src, 2, 2, true)
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			inside := x >= 3 && x <= 7 && y >= 3 && y <= 7
			p := pixel(got, x, y)
			if inside && p != [4]byte{255, 0, 0, 255} {
				t.Errorf("pixel(%d,%d) = %v, want red", x, y, p)
			}
			if !inside && p[3] != 0 {
				t.Errorf("pixel(%d,%d) = %v, want transparent", x, y, p)
			}
		}
	}
}

func TestMorphologyErodePixelVanishes(t *testing.T) {
	r := image.Rect(0, 0, 9, 9)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 4, 4, 255, 255, 255, 255)

	got := Morphology(src, 1, 1, false)
	for i, v := range got.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d after erosion, want 0", i, v)
		}
	}
}

func TestMorphologyErodeMovesEdge(t *testing.T) {
	r := image.Rect(0, 0, 20, 4)
	got := Morphology(stepEdge(r, 10), 3, 0, false)

	for x := 0; x < 20; x++ {
		want := byte(0)
		if x < 7 {
			want = 255
		}
		if p := pixel(got, x, 2); p[3] != want {
			t.Errorf("x=%d alpha = %d, want %d", x, p[3], want)
		}
	}
}

func TestMorphologyClosingRestoresEdge(t *testing.T) {
	r := image.Rect(-4, 2, 28, 10)
	src := stepEdge(r, 12)

	closed := Morphology(Morphology(src, 3, 2, true), 3, 2, false)
	if !bytes.Equal(closed.Pix, src.Pix) {
		t.Fatal("closing changed a straight edge")
	}
	again := Morphology(Morphology(closed, 3, 2, true), 3, 2, false)
	if !bytes.Equal(again.Pix, closed.Pix) {
		t.Error("closing is not idempotent")
	}
}

func TestMorphologyZeroRadius(t *testing.T) {
	src := gradientBuffer(image.Rect(0, 0, 8, 8))
	got := Morphology(src, 0, 0, true)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("zero radius changed pixels")
	}
	if &got.Pix[0] == &src.Pix[0] {
		t.Error("Morphology returned its source")
	}
}

func TestMorphologyPerChannel(t *testing.T) {
	r := image.Rect(0, 0, 3, 1)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 0, 0, 200, 0, 0, 200)
	setPixel(src, 2, 0, 0, 100, 0, 100)

	got := Morphology(src, 1, 0, true)
	if p := pixel(got, 1, 0); p != [4]byte{200, 100, 0, 200} {
		t.Errorf("pixel = %v, want channel-wise max [200 100 0 200]", p)
	}
}

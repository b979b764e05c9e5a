package filter

import (
	"image"
	"testing"

	"github.com/gogpu/fx/raster"
)

func TestLuminanceAlpha(t *testing.T) {
	r := image.Rect(0, 0, 3, 1)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	setPixel(src, 0, 0, 255, 0, 0, 255)
	setPixel(src, 1, 0, 255, 255, 255, 255)

	got := LuminanceAlpha(src)
	if got.Format != raster.FormatAlpha8 {
		t.Fatalf("Format = %v, want Alpha8", got.Format)
	}
	if want := []byte{54, 255, 0}; string(got.Pix[:3]) != string(want) {
		t.Errorf("alpha = %v, want %v", got.Pix[:3], want)
	}
}

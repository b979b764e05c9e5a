package filter

import (
	"bytes"
	"image"
	"testing"

	"github.com/gogpu/fx/raster"
)

func straightMap(r image.Rectangle, cr, cg, cb, ca byte) *raster.Buffer {
	m := raster.NewBuffer(r, raster.FormatRGBA8)
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = cr, cg, cb, ca
	}
	return m
}

func TestDisplaceShift(t *testing.T) {
	r := image.Rect(0, 0, 20, 8)
	src := gradientBuffer(r)
	m := straightMap(r, 255, 128, 0, 255)

	got := Displace(src, m, 10, 10, ChannelR, ChannelG)
	for y := 0; y < 8; y++ {
		for x := 0; x < 20; x++ {
			want := [4]byte{}
			if x+5 < 20 {
				want = pixel(src, x+5, y)
			}
			if p := pixel(got, x, y); p != want {
				t.Fatalf("pixel(%d,%d) = %v, want %v", x, y, p, want)
			}
		}
	}
}

func TestDisplaceNeutralMap(t *testing.T) {
	r := image.Rect(3, 3, 15, 15)
	src := gradientBuffer(r)

	got := Displace(src, straightMap(r, 128, 128, 128, 128), 10, 10, ChannelR, ChannelA)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("neutral map moved pixels")
	}
}

func TestChannelString(t *testing.T) {
	for c, want := range map[Channel]string{ChannelR: "R", ChannelG: "G", ChannelB: "B", ChannelA: "A", Channel(9): "?"} {
		if got := c.String(); got != want {
			t.Errorf("Channel(%d).String() = %q, want %q", c, got, want)
		}
	}
}

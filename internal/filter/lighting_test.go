package filter

import (
	"image"
	"testing"

	"github.com/gogpu/fx/raster"
)

var white = [3]float32{1, 1, 1}

func TestDiffuseFlatSurface(t *testing.T) {
	src := solidBuffer(image.Rect(0, 0, 8, 8), 0, 0, 0, 255)
	got := Diffuse(src, Lighting{
		Light:        DistantLight{Elevation: 90, Color: white},
		SurfaceScale: 1,
		Constant:     1,
		ScaleX:       1,
		ScaleY:       1,
	})

	for _, pt := range []image.Point{{0, 0}, {4, 4}, {7, 0}, {7, 7}} {
		if p := pixel(got, pt.X, pt.Y); p != [4]byte{255, 255, 255, 255} {
			t.Errorf("pixel%v = %v, want opaque white", pt, p)
		}
	}
}

func TestSpecularAlphaIsMaxChannel(t *testing.T) {
	src := solidBuffer(image.Rect(0, 0, 4, 4), 0, 0, 0, 255)
	got := Specular(src, Lighting{
		Light:        DistantLight{Elevation: 90, Color: [3]float32{1, 0.5, 0}},
		SurfaceScale: 1,
		Constant:     0.5,
		Exponent:     1,
		ScaleX:       1,
		ScaleY:       1,
	})

	if got.Format != raster.FormatRGBA8 {
		t.Fatalf("Format = %v, want straight RGBA8", got.Format)
	}
	p := pixel(got, 2, 2)
	if absDiff(p[0], 128) > 1 || absDiff(p[1], 64) > 1 || p[2] != 0 {
		t.Errorf("pixel = %v, want about [128 64 0]", p)
	}
	if p[3] != max(p[0], p[1], p[2]) {
		t.Errorf("alpha = %d, want max channel %d", p[3], max(p[0], p[1], p[2]))
	}
}

func TestNormalsRamp(t *testing.T) {
	r := image.Rect(0, 0, 10, 3)
	src := raster.NewBuffer(r, raster.FormatRGBAPremul)
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			setPixel(src, x, y, 0, 0, 0, byte(x*20))
		}
	}

	normals := Normals(src, 1, 1, 1)
	for _, x := range []int{0, 5, 9} {
		n := normals[1*10+x]
		if n.X >= 0 {
			t.Errorf("x=%d: normal X = %v, want negative on a rising ramp", x, n.X)
		}
		if n.Y != 0 {
			t.Errorf("x=%d: normal Y = %v, want 0", x, n.Y)
		}
	}
	if h := normals[5].Height; absDiff(byte(h*255+0.5), 100) > 1 {
		t.Errorf("height = %v, want 100/255", h)
	}
}

func TestNormalsFlat(t *testing.T) {
	src := solidBuffer(image.Rect(3, 3, 6, 6), 0, 0, 0, 128)
	for i, n := range Normals(src, 5, 2, 2) {
		if n.X != 0 || n.Y != 0 || n.Z != 1 {
			t.Errorf("normal[%d] = %+v, want (0, 0, 1)", i, n)
		}
	}
}

func TestSpotLightCone(t *testing.T) {
	src := solidBuffer(image.Rect(0, 0, 60, 1), 0, 0, 0, 0)
	got := Diffuse(src, Lighting{
		Light: SpotLight{
			Z:                10,
			SpecularExponent: 1,
			ConeAngle:        10,
			Color:            white,
		},
		SurfaceScale: 1,
		Constant:     1,
		ScaleX:       1,
		ScaleY:       1,
	})

	if p := pixel(got, 0, 0); p[0] < 250 {
		t.Errorf("pixel under the light = %v, want lit", p)
	}
	if p := pixel(got, 50, 0); p != [4]byte{0, 0, 0, 255} {
		t.Errorf("pixel outside the cone = %v, want opaque black", p)
	}
}

func TestPointLightDirection(t *testing.T) {
	lx, ly, lz, c := PointLight{X: 3, Y: 4, Z: 0, Color: white}.Vector(0, 0, 0)
	if absDiff(byte(lx*100), 60) > 1 || absDiff(byte(ly*100), 80) > 1 || lz != 0 {
		t.Errorf("vector = (%v, %v, %v), want (0.6, 0.8, 0)", lx, ly, lz)
	}
	if c != white {
		t.Errorf("color = %v, want %v", c, white)
	}
}

package filter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fx/raster"
)

// Normal is a unit surface normal plus the surface height at a pixel.
type Normal struct {
	X, Y, Z float32
	Height  float32
}

// Sobel weights for a pixel, indexed by [x on edge][y on edge].
var sobelFactor = [2][2]float32{
	{1.0 / 4, 1.0 / 3},
	{1.0 / 2, 2.0 / 3},
}

// Normals derives the bump map of b from its alpha channel. The surface
// height is surfaceScale*alpha/255; gradients are Sobel estimates scaled
// by the device pixels per user unit (scaleX, scaleY). Edge and corner
// pixels drop the missing neighbors and use the matching factor.
//
// The result is packed row-major over b.Rect.
func Normals(b *raster.Buffer, surfaceScale, scaleX, scaleY float32) []Normal {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	alpha := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := b.PremulAt(b.Rect.Min.X+x, b.Rect.Min.Y+y)
			alpha[y*w+x] = float32(a) / 255
		}
	}
	at := func(x, y int) float32 { return alpha[y*w+x] }

	out := make([]Normal, w*h)
	for y := 0; y < h; y++ {
		top, bottom := max(y-1, 0), min(y+1, h-1)
		yEdge := btoi(y == 0 || y == h-1)
		for x := 0; x < w; x++ {
			left, right := max(x-1, 0), min(x+1, w-1)
			xEdge := btoi(x == 0 || x == w-1)

			gx := 2 * (at(right, y) - at(left, y))
			if top != y {
				gx += at(right, top) - at(left, top)
			}
			if bottom != y {
				gx += at(right, bottom) - at(left, bottom)
			}
			gy := 2 * (at(x, bottom) - at(x, top))
			if left != x {
				gy += at(left, bottom) - at(left, top)
			}
			if right != x {
				gy += at(right, bottom) - at(right, top)
			}
			nx := -surfaceScale * scaleX * sobelFactor[xEdge][yEdge] * gx
			ny := -surfaceScale * scaleY * sobelFactor[yEdge][xEdge] * gy
			norm := math32.Sqrt(nx*nx + ny*ny + 1)
			out[y*w+x] = Normal{
				X:      nx / norm,
				Y:      ny / norm,
				Z:      1 / norm,
				Height: surfaceScale * at(x, y),
			}
		}
	}
	return out
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Light computes, for a surface point in user space, the unit vector
// toward the light and the light color arriving there (channels in
// [0, 1]).
type Light interface {
	Vector(x, y, z float32) (lx, ly, lz float32, color [3]float32)
}

// DistantLight is infinitely far away; angles are in degrees.
type DistantLight struct {
	Azimuth   float32
	Elevation float32
	Color     [3]float32
}

// Vector implements Light.
func (l DistantLight) Vector(_, _, _ float32) (float32, float32, float32, [3]float32) {
	az := l.Azimuth * math32.Pi / 180
	el := l.Elevation * math32.Pi / 180
	return math32.Cos(az) * math32.Cos(el), math32.Sin(az) * math32.Cos(el), math32.Sin(el), l.Color
}

// PointLight radiates from a position in user space.
type PointLight struct {
	X, Y, Z float32
	Color   [3]float32
}

// Vector implements Light.
func (l PointLight) Vector(x, y, z float32) (float32, float32, float32, [3]float32) {
	lx, ly, lz := normalize(l.X-x, l.Y-y, l.Z-z)
	return lx, ly, lz, l.Color
}

// SpotLight is a point light restricted to a cone around the direction
// toward PointsAt. ConeAngle is in degrees; zero means no cone.
type SpotLight struct {
	X, Y, Z                         float32
	PointsAtX, PointsAtY, PointsAtZ float32
	SpecularExponent                float32
	ConeAngle                       float32
	Color                           [3]float32
}

// Vector implements Light.
func (l SpotLight) Vector(x, y, z float32) (float32, float32, float32, [3]float32) {
	lx, ly, lz := normalize(l.X-x, l.Y-y, l.Z-z)
	sx, sy, sz := normalize(l.PointsAtX-l.X, l.PointsAtY-l.Y, l.PointsAtZ-l.Z)
	cos := -(lx*sx + ly*sy + lz*sz)
	if cos <= 0 {
		return lx, ly, lz, [3]float32{}
	}
	if l.ConeAngle != 0 && cos < math32.Cos(math32.Abs(l.ConeAngle)*math32.Pi/180) {
		return lx, ly, lz, [3]float32{}
	}
	exp := l.SpecularExponent
	if exp == 0 {
		exp = 1
	}
	f := math32.Pow(cos, exp)
	return lx, ly, lz, [3]float32{l.Color[0] * f, l.Color[1] * f, l.Color[2] * f}
}

func normalize(x, y, z float32) (float32, float32, float32) {
	n := math32.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return 0, 0, 0
	}
	return x / n, y / n, z / n
}

// Lighting holds the parameters shared by diffuse and specular lighting.
type Lighting struct {
	Light        Light
	SurfaceScale float32

	// Constant is kd for diffuse and ks for specular lighting.
	Constant float32

	// Exponent is the specular shininess; unused by Diffuse.
	Exponent float32

	// ScaleX and ScaleY are device pixels per user unit.
	ScaleX, ScaleY float32
}

// Diffuse lights the bump map b and returns an opaque premultiplied
// buffer over b.Rect: color = kd * max(N·L, 0) * light color.
func Diffuse(b *raster.Buffer, l Lighting) *raster.Buffer {
	dst := raster.NewBuffer(b.Rect, raster.FormatRGBAPremul)
	l.shade(b, func(n Normal, lx, ly, lz float32, c [3]float32, p []byte) {
		ndl := math32.Max(n.X*lx+n.Y*ly+n.Z*lz, 0)
		f := l.Constant * ndl * 255
		p[0] = roundByte(float64(f * c[0]))
		p[1] = roundByte(float64(f * c[1]))
		p[2] = roundByte(float64(f * c[2]))
		p[3] = 255
	}, dst)
	return dst
}

// Specular lights the bump map b and returns a straight-alpha buffer over
// b.Rect: color = ks * pow(N·H, exponent) * light color with H the half
// vector between L and the eye (0, 0, 1), alpha = max(R, G, B).
func Specular(b *raster.Buffer, l Lighting) *raster.Buffer {
	dst := raster.NewBuffer(b.Rect, raster.FormatRGBA8)
	l.shade(b, func(n Normal, lx, ly, lz float32, c [3]float32, p []byte) {
		hx, hy, hz := normalize(lx, ly, lz+1)
		ndh := math32.Max(n.X*hx+n.Y*hy+n.Z*hz, 0)
		f := l.Constant * math32.Pow(ndh, l.Exponent) * 255
		p[0] = roundByte(float64(f * c[0]))
		p[1] = roundByte(float64(f * c[1]))
		p[2] = roundByte(float64(f * c[2]))
		p[3] = max(p[0], p[1], p[2])
	}, dst)
	return dst
}

func (l Lighting) shade(b *raster.Buffer, fn func(Normal, float32, float32, float32, [3]float32, []byte), dst *raster.Buffer) {
	normals := Normals(b, l.SurfaceScale, l.ScaleX, l.ScaleY)
	if normals == nil {
		return
	}
	w := b.Rect.Dx()
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		row := dst.Row(y)
		uy := float32(y) / l.ScaleY
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			n := normals[(y-b.Rect.Min.Y)*w+(x-b.Rect.Min.X)]
			lx, ly, lz, c := l.Light.Vector(float32(x)/l.ScaleX, uy, n.Height)
			i := (x - b.Rect.Min.X) * 4
			fn(n, lx, ly, lz, c, row[i:i+4:i+4])
		}
	}
}

package filter

import "github.com/gogpu/fx/raster"

// fastBlurMin is the smallest standard deviation blurred with boxes.
const fastBlurMin = 2.0

// UseBoxBlur reports whether an axis with standard deviation sigma takes
// the triple box path. Small deviations and quality rendering always use
// the true Gaussian kernel.
func UseBoxBlur(sigma float64, quality bool) bool {
	return !quality && sigma >= fastBlurMin
}

// BlurRadius returns how many pixels a blur with standard deviation sigma
// reads on each side of a destination pixel.
func BlurRadius(sigma float64, quality bool) int {
	if sigma <= 0 {
		return 0
	}
	if UseBoxBlur(sigma, quality) {
		return BoxBlurRadius(BoxBlurDiameter(sigma))
	}
	return QualityRadius(sigma)
}

// GaussianBlur blurs src with the given standard deviations and returns a
// new premultiplied buffer covering src.Rect. Pixels outside src are
// treated as transparent black, so callers pad the source by BlurRadius
// to avoid darkened edges.
//
// The horizontal pass runs first. Each axis independently chooses the
// box approximation or the Gaussian kernel via UseBoxBlur.
func GaussianBlur(src *raster.Buffer, sigmaX, sigmaY float64, quality bool) *raster.Buffer {
	dst := premulCopy(src)
	if dst.Empty() {
		return dst
	}
	blurAxis(dst, sigmaX, quality, false)
	blurAxis(dst, sigmaY, quality, true)
	return dst
}

func blurAxis(b *raster.Buffer, sigma float64, quality, vertical bool) {
	if sigma <= 0 {
		return
	}
	if UseBoxBlur(sigma, quality) {
		BoxBlur(b, BoxBlurDiameter(sigma), vertical)
		return
	}
	Convolve(b, CachedGaussianKernel(sigma), vertical)
}

// BoxBlur applies three box passes of diameter d along one axis of b, in
// place. For odd d the three boxes are centered; for even d the first two
// boxes are offset half a pixel in opposite directions and the last is
// one pixel wider, which keeps the result centered.
func BoxBlur(b *raster.Buffer, d int, vertical bool) {
	if d <= 1 {
		return
	}
	var tmp []byte
	eachLine(b, vertical, func(line []byte) {
		if tmp == nil {
			tmp = make([]byte, len(line))
		}
		n := len(line) / 4
		if d%2 == 0 {
			boxLine(tmp, line, n, d, d/2)
			boxLine(line, tmp, n, d, d/2-1)
			boxLine(tmp, line, n, d+1, d/2)
		} else {
			boxLine(tmp, line, n, d, d/2)
			boxLine(line, tmp, n, d, d/2)
			boxLine(tmp, line, n, d, d/2)
		}
		copy(line, tmp)
	})
}

// boxLine writes to dst the moving average of src over the window
// [i-loc, i-loc+size) for every pixel i. The running sum is updated in
// constant time per pixel; the division uses a rounded 8.24 fixed-point
// factor.
func boxLine(dst, src []byte, n, size, loc int) {
	const half = 1 << 23
	scale := (1 << 24) / size
	var sr, sg, sb, sa int
	add := func(j int, sign int) {
		if j < 0 || j >= n {
			return
		}
		p := src[j*4 : j*4+4 : j*4+4]
		sr += sign * int(p[0])
		sg += sign * int(p[1])
		sb += sign * int(p[2])
		sa += sign * int(p[3])
	}
	for j := 0; j < size-loc && j < n; j++ {
		add(j, 1)
	}
	for i := 0; i < n; i++ {
		o := dst[i*4 : i*4+4 : i*4+4]
		o[0] = byte((sr*scale + half) >> 24)
		o[1] = byte((sg*scale + half) >> 24)
		o[2] = byte((sb*scale + half) >> 24)
		o[3] = byte((sa*scale + half) >> 24)
		add(i-loc, -1)
		add(i-loc+size, 1)
	}
}

// Convolve applies a symmetric 1D kernel along one axis of b, in place.
// Taps that fall outside b contribute nothing.
func Convolve(b *raster.Buffer, kernel []float32, vertical bool) {
	if len(kernel) <= 1 {
		return
	}
	radius := len(kernel) / 2
	var tmp []byte
	eachLine(b, vertical, func(line []byte) {
		if tmp == nil {
			tmp = make([]byte, len(line))
		}
		n := len(line) / 4
		for i := 0; i < n; i++ {
			lo, hi := max(i-radius, 0), min(i+radius, n-1)
			var r, g, bl, a float32
			for j := lo; j <= hi; j++ {
				k := kernel[j-i+radius]
				p := line[j*4 : j*4+4 : j*4+4]
				r += k * float32(p[0])
				g += k * float32(p[1])
				bl += k * float32(p[2])
				a += k * float32(p[3])
			}
			o := tmp[i*4 : i*4+4 : i*4+4]
			o[0] = roundByte(float64(r))
			o[1] = roundByte(float64(g))
			o[2] = roundByte(float64(bl))
			o[3] = roundByte(float64(a))
		}
		copy(line, tmp)
	})
}

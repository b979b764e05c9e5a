package filter

import "github.com/gogpu/fx/raster"

// Morphology returns src dilated (running maximum) or eroded (running
// minimum) over a (2*rx+1) x (2*ry+1) window, as a new premultiplied
// buffer covering src.Rect. The window is clipped to src, so pixels near
// the edges only consider neighbors that exist.
//
// Both passes use a monotonic deque and cost O(1) amortized per pixel
// regardless of the radius.
func Morphology(src *raster.Buffer, rx, ry int, dilate bool) *raster.Buffer {
	dst := premulCopy(src)
	if dst.Empty() {
		return dst
	}
	morphAxis(dst, rx, dilate, false)
	morphAxis(dst, ry, dilate, true)
	return dst
}

func morphAxis(b *raster.Buffer, r int, dilate, vertical bool) {
	if r <= 0 {
		return
	}
	var tmp []byte
	var dq []int
	eachLine(b, vertical, func(line []byte) {
		n := len(line) / 4
		if tmp == nil {
			tmp = make([]byte, len(line))
			dq = make([]int, n)
		}
		for c := 0; c < 4; c++ {
			runningExtreme(tmp, line, dq, n, c, r, dilate)
		}
		copy(line, tmp)
	})
}

// runningExtreme writes to dst channel c the max (dilate) or min of src
// channel c over [i-r, i+r] for every pixel i.
func runningExtreme(dst, src []byte, dq []int, n, c, r int, dilate bool) {
	head, tail := 0, 0
	next := 0
	for i := 0; i < n; i++ {
		hi := min(i+r, n-1)
		for ; next <= hi; next++ {
			v := src[next*4+c]
			for tail > head {
				last := src[dq[tail-1]*4+c]
				if (dilate && last > v) || (!dilate && last < v) {
					break
				}
				tail--
			}
			dq[tail] = next
			tail++
		}
		for dq[head] < i-r {
			head++
		}
		dst[i*4+c] = src[dq[head]*4+c]
	}
}

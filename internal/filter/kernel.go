package filter

import (
	"math"
	"sync"
)

// halfMass is the Gaussian mass one side of the quality kernel must reach.
const halfMass = 0.499999999999999999

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// QualityRadius returns the radius of the discrete Gaussian kernel for the
// standard deviation sigma: the smallest i such that half the center tap
// plus taps 1..i-1 reach halfMass. The loop also stops once a tap no
// longer changes the running sum.
//
// For sigma <= 0, returns 0.
func QualityRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	norm := sigma * sqrt2Pi
	twoSigmaSq := 2 * sigma * sigma
	area := 0.5 / norm
	i := 1
	for area < halfMass {
		next := area + math.Exp(-float64(i*i)/twoSigmaSq)/norm
		if next == area {
			break
		}
		area = next
		i++
	}
	return i
}

// GaussianKernel generates the 1D quality kernel for sigma. The kernel has
// 2*QualityRadius(sigma)+1 taps and is normalized so all values sum to 1.
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	radius := QualityRadius(sigma)
	size := radius*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	vals := make([]float64, size)
	sum := float64(0)
	for i := range vals {
		x := float64(i - radius)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		kernel[i] = float32(v / sum)
	}
	return kernel
}

// BoxBlurDiameter returns the box size d of the triple box blur
// approximating a Gaussian with standard deviation sigma:
// d = floor(3*sqrt(2π)/4*sigma + 0.5).
func BoxBlurDiameter(sigma float64) int {
	return int(math.Floor(3*sqrt2Pi/4*sigma + 0.5))
}

// BoxBlurRadius returns how far the three box passes of diameter d reach
// on each side: 3*(d/2)-1 for even d, 3*(d/2) for odd d.
func BoxBlurRadius(d int) int {
	if d <= 0 {
		return 0
	}
	r := d / 2
	if d%2 == 0 {
		return 3*r - 1
	}
	return 3 * r
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Keyed by the exact bits of sigma.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[uint64][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[uint64][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	key := math.Float64bits(sigma)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half of the entries; map order makes this random.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a shared Gaussian kernel for sigma.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}

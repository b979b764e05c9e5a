package filter

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
)

// Lattice constants of the reference Perlin noise.
const (
	bSize   = 0x100
	bMask   = 0xff
	perlinN = 0x1000

	randM = 2147483647 // 2**31 - 1
	randA = 16807      // 7**5, primitive root of randM
	randQ = 127773     // randM / randA
	randR = 2836       // randM % randA

	maxOctaves = 8
)

// TurbulenceParams describes a noise pattern. Frequencies are in cycles
// per user unit; Tile is the user-space stitching rectangle.
type TurbulenceParams struct {
	BaseFrequencyX float64
	BaseFrequencyY float64
	Octaves        int
	Seed           int
	Fractal        bool
	Stitch         bool
	Tile           fx.Rect
}

type stitchInfo struct {
	width, height int
	wrapX, wrapY  int
}

func (s *stitchInfo) double() {
	s.width *= 2
	s.height *= 2
	s.wrapX = 2*s.wrapX - perlinN
	s.wrapY = 2*s.wrapY - perlinN
}

// Turbulence generates the reference turbulence and fractal noise. A
// Turbulence is immutable after construction and safe for concurrent
// Fill calls.
type Turbulence struct {
	baseX, baseY float64
	octaves      int
	fractal      bool
	stitch       *stitchInfo

	lattice  [bSize + bSize + 2]int
	gradient [bSize * 8]float64
}

// NewTurbulence prepares the noise lattice for p. deviceToUser maps
// device pixels to user space; octaves too fine to show up at that
// resolution are dropped and the count is capped at eight.
func NewTurbulence(p TurbulenceParams, deviceToUser fx.Matrix) *Turbulence {
	t := &Turbulence{
		baseX:   p.BaseFrequencyX,
		baseY:   p.BaseFrequencyY,
		octaves: limitOctaves(p, deviceToUser),
		fractal: p.Fractal,
	}
	if p.Stitch && !p.Tile.Empty() {
		t.setupStitch(p.Tile)
	}
	t.initLattice(p.Seed)
	return t
}

// Octaves returns the number of octaves actually summed.
func (t *Turbulence) Octaves() int {
	return t.octaves
}

func limitOctaves(p TurbulenceParams, m fx.Matrix) int {
	n := p.Octaves
	vx := m.TransformVector(fx.Pt(0.5, 0))
	vy := m.TransformVector(fx.Pt(0, 0.5))
	limit := func(d, freq float64) {
		if d <= 0 || freq <= 0 {
			return
		}
		if lim := -int(math.Round((math.Log(d) + math.Log(freq)) / math.Ln2)); n > lim {
			n = lim
		}
	}
	limit(math.Max(math.Abs(vx.X), math.Abs(vy.X)), p.BaseFrequencyX)
	limit(math.Max(math.Abs(vx.Y), math.Abs(vy.Y)), p.BaseFrequencyY)
	if n < 1 && p.Octaves > 1 {
		n = 1
	}
	if n > maxOctaves {
		n = maxOctaves
	}
	return max(n, 0)
}

// setupStitch adjusts the base frequencies so an integral number of
// lattice cells spans the tile, then records the wrap points.
func (t *Turbulence) setupStitch(tile fx.Rect) {
	adjust := func(freq, size float64) float64 {
		lo := math.Floor(size*freq) / size
		hi := math.Ceil(size*freq) / size
		if freq/lo < hi/freq {
			return lo
		}
		return hi
	}
	t.baseX = adjust(t.baseX, tile.Width())
	t.baseY = adjust(t.baseY, tile.Height())

	s := &stitchInfo{
		width:  int(tile.Width() * t.baseX),
		height: int(tile.Height() * t.baseY),
	}
	s.wrapX = int(tile.Min.X*t.baseX + perlinN + float64(s.width))
	s.wrapY = int(tile.Min.Y*t.baseY + perlinN + float64(s.height))
	if s.width == 0 {
		s.width = 1
	}
	if s.height == 0 {
		s.height = 1
	}
	t.stitch = s
}

func setupSeed(seed int) int {
	if seed <= 0 {
		seed = -(seed % (randM - 1)) + 1
	}
	if seed > randM-1 {
		seed = randM - 1
	}
	return seed
}

// random is the Park-Miller minimal standard generator.
func random(seed int) int {
	r := randA*(seed%randQ) - randR*(seed/randQ)
	if r <= 0 {
		r += randM
	}
	return r
}

func (t *Turbulence) initLattice(seed int) {
	seed = setupSeed(seed)
	for k := 0; k < 4; k++ {
		for i := 0; i < bSize; i++ {
			seed = random(seed)
			u := float64(seed%(bSize+bSize) - bSize)
			seed = random(seed)
			v := float64(seed%(bSize+bSize) - bSize)
			s := 1 / math.Sqrt(u*u+v*v)
			t.gradient[i*8+k*2] = u * s
			t.gradient[i*8+k*2+1] = v * s
		}
	}
	for i := 0; i < bSize; i++ {
		t.lattice[i] = i
	}
	for i := bSize - 1; i > 0; i-- {
		seed = random(seed)
		j := seed % bSize
		t.lattice[i], t.lattice[j] = t.lattice[j], t.lattice[i]
	}
	for i := 0; i < bSize+2; i++ {
		t.lattice[bSize+i] = t.lattice[i]
	}
}

func sCurve(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// noise2 evaluates the four channel noises at (x, y) in lattice space.
func (t *Turbulence) noise2(out *[4]float64, x, y float64, s *stitchInfo) {
	tx := x + perlinN
	bx0 := int(tx)
	bx1 := bx0 + 1
	ty := y + perlinN
	by0 := int(ty)
	by1 := by0 + 1
	if s != nil {
		if bx1 >= s.wrapX {
			if bx0 >= s.wrapX {
				bx0 -= s.width
			}
			bx1 -= s.width
		}
		if by1 >= s.wrapY {
			if by0 >= s.wrapY {
				by0 -= s.height
			}
			by1 -= s.height
		}
	}
	i := t.lattice[bx0&bMask]
	j := t.lattice[bx1&bMask]
	by0 &= bMask
	by1 &= bMask

	rx0 := tx - float64(int(tx))
	rx1 := rx0 - 1
	ry0 := ty - float64(int(ty))
	ry1 := ry0 - 1
	sx := sCurve(rx0)
	sy := sCurve(ry0)

	b00 := (t.lattice[i+by0] & bMask) << 3
	b10 := (t.lattice[j+by0] & bMask) << 3
	b01 := (t.lattice[i+by1] & bMask) << 3
	b11 := (t.lattice[j+by1] & bMask) << 3

	g := &t.gradient
	for c := 0; c < 4; c++ {
		k := c * 2
		out[c] = lerp(sy,
			lerp(sx, rx0*g[b00+k]+ry0*g[b00+k+1], rx1*g[b10+k]+ry0*g[b10+k+1]),
			lerp(sx, rx0*g[b01+k]+ry1*g[b01+k+1], rx1*g[b11+k]+ry1*g[b11+k+1]))
	}
}

// At returns the straight-alpha RGBA noise value at a user-space point.
func (t *Turbulence) At(x, y float64) [4]byte {
	var sum, n [4]float64
	ratio := 255.0
	if t.fractal {
		ratio = 127.5
		sum = [4]float64{127.5, 127.5, 127.5, 127.5}
	}
	var si stitchInfo
	var sp *stitchInfo
	if t.stitch != nil {
		si = *t.stitch
		sp = &si
	}
	x *= t.baseX
	y *= t.baseY
	for o := 0; o < t.octaves; o++ {
		t.noise2(&n, x, y, sp)
		for c := range sum {
			if t.fractal {
				sum[c] += n[c] * ratio
			} else {
				sum[c] += math.Abs(n[c]) * ratio
			}
		}
		ratio *= 0.5
		x *= 2
		y *= 2
		if sp != nil {
			sp.double()
		}
	}
	var out [4]byte
	for c := range out {
		out[c] = clampByte(int(sum[c]))
	}
	return out
}

// Fill writes the noise into dst, a straight-alpha FormatRGBA8 buffer.
// Pixel (x, y) samples the user-space point deviceToUser(x, y).
func (t *Turbulence) Fill(dst *raster.Buffer, deviceToUser fx.Matrix) {
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		row := dst.Row(y)
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			p := deviceToUser.TransformPoint(fx.Pt(float64(x), float64(y)))
			v := t.At(p.X, p.Y)
			i := (x - dst.Rect.Min.X) * 4
			copy(row[i:i+4], v[:])
		}
	}
}

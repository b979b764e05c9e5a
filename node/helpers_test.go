package node

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func identity() fx.RenderContext {
	return fx.NewRenderContext(fx.Identity())
}

// flood returns a solid rectangle node.
func flood(t *testing.T, r fx.Rect, c color.Color) *Flood {
	t.Helper()
	n, err := NewFlood(region.Fixed(r), c)
	require.NoError(t, err)
	return n
}

// pixels renders n under ctx and returns premultiplied pixels.
func pixels(t *testing.T, n Node, ctx fx.RenderContext) *raster.Buffer {
	t.Helper()
	r := n.Render(ctx)
	require.NotNil(t, r)
	return raster.Convert(r.Data(r.Bounds()), raster.FormatRGBAPremul)
}

func at(b *raster.Buffer, x, y int) [4]byte {
	r, g, bl, a := b.PremulAt(x, y)
	return [4]byte{r, g, bl, a}
}

func rgba(c color.RGBA) [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// near asserts every channel of got is within tol of want.
func near(t *testing.T, want, got [4]byte, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], tol, "channel %d: want %v, got %v", i, want, got)
	}
}

// fakeWaiter hands out a prepared raster.
type fakeWaiter struct {
	r     raster.Raster
	calls int
}

func (w *fakeWaiter) Wait() raster.Raster {
	w.calls++
	return w.r
}

// checker returns a 2x2 raster with distinct opaque pixels.
func checker() raster.Raster {
	b := raster.NewBuffer(image.Rect(0, 0, 2, 2), raster.FormatRGBAPremul)
	b.Set(0, 0, red)
	b.Set(1, 0, blue)
	b.Set(0, 1, white)
	b.Set(1, 1, black)
	return raster.Freeze(b)
}

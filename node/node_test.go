package node

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

func TestFloodRender(t *testing.T) {
	n := flood(t, fx.XYWH(0, 0, 10, 10), red)

	b := pixels(t, n, identity())
	assert.Equal(t, image.Rect(0, 0, 10, 10), b.Rect)
	assert.Equal(t, rgba(red), at(b, 5, 5))
	assert.Equal(t, rgba(red), at(b, 0, 9))
}

func TestFloodRotated(t *testing.T) {
	n := flood(t, fx.XYWH(0, 0, 10, 10), red)

	b := pixels(t, n, fx.NewRenderContext(fx.Rotate(math.Pi/4)))
	near(t, rgba(red), at(b, 0, 7), 1)
	assert.Equal(t, [4]byte{}, at(b, -6, 1), "corner of the bounding box lies outside the square")
}

func TestRenderDisjointAreaOfInterestIsNil(t *testing.T) {
	src := flood(t, fx.XYWH(0, 0, 10, 10), red)
	blur, err := NewGaussianBlur(src, 1, 1)
	require.NoError(t, err)
	offset, err := NewOffset(src, 2, 2)
	require.NoError(t, err)

	ctx := fx.NewRenderContext(fx.Identity(), fx.WithAOI(fx.XYWH(100, 100, 5, 5)))
	for name, n := range map[string]Node{"flood": src, "blur": blur, "offset": offset} {
		assert.Nil(t, n.Render(ctx), name)
	}
}

func TestAreaOfInterestCropsOutput(t *testing.T) {
	n := flood(t, fx.XYWH(0, 0, 100, 100), red)

	ctx := fx.NewRenderContext(fx.Identity(), fx.WithAOI(fx.XYWH(10, 20, 5, 5)))
	r := n.Render(ctx)
	require.NotNil(t, r)
	assert.Equal(t, image.Rect(10, 20, 15, 25), r.Bounds())
}

func TestModifiedCounter(t *testing.T) {
	f := flood(t, fx.XYWH(0, 0, 10, 10), red)
	blur, err := NewGaussianBlur(f, 1, 1)
	require.NoError(t, err)

	before := f.Modified()
	f.SetColor(blue)
	assert.Greater(t, f.Modified(), before)

	before = blur.Modified()
	require.NoError(t, blur.SetStdDeviation(2, 2))
	assert.Greater(t, blur.Modified(), before)

	before = blur.Modified()
	assert.ErrorIs(t, blur.SetStdDeviation(-1, 2), fx.ErrInvalidParameter)
	assert.Equal(t, before, blur.Modified(), "rejected change must not count")
}

func TestInvalidParameters(t *testing.T) {
	src := flood(t, fx.XYWH(0, 0, 10, 10), red)

	tests := []struct {
		name string
		err  error
	}{
		{"blur negative", second(NewGaussianBlur(src, -1, 0))},
		{"blur nil source", second(NewGaussianBlur(nil, 1, 1))},
		{"morphology zero radius", second(NewMorphology(src, 0, 1, true))},
		{"composite empty", second(NewComposite(fx.Over))},
		{"composite nil source", second(NewComposite(fx.Over, src, nil))},
		{"color matrix shape", second(NewColorMatrix(src, [][]float64{{1, 0, 0, 0, 0}}))},
		{"specular exponent", second(NewSpecularLighting(src, DistantLight{}, 1, 1, 0))},
		{"diffuse constant", second(NewDiffuseLighting(src, DistantLight{}, 1, -1))},
		{"turbulence octaves", second(NewTurbulence(region.Fixed(fx.XYWH(0, 0, 1, 1)), TurbulenceParams{Octaves: -1}))},
		{"turbulence frequency", second(NewTurbulence(region.Fixed(fx.XYWH(0, 0, 1, 1)), TurbulenceParams{BaseFrequencyX: -0.1}))},
		{"flood nil region", second(NewFlood(nil, red))},
		{"image empty bounds", second(NewImage(checker(), fx.Rect{}))},
		{"tile nil region", second(NewTile(src, nil, region.Fixed(fx.XYWH(0, 0, 1, 1)), false))},
		{"pad mode", second(NewPad(src, fx.XYWH(0, 0, 1, 1), raster.PadMode(9)))},
		{"displacement channel", second(NewDisplacementMap(src, src, 1, Channel(7), ChannelA))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, fx.ErrInvalidParameter)
		})
	}
}

func second[T any](_ T, err error) error { return err }

func TestDependencyAndDirtyRegions(t *testing.T) {
	src := flood(t, fx.XYWH(0, 0, 100, 100), red)
	blur, err := NewGaussianBlur(src, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, fx.XYWH(4, 7, 13, 7), blur.DependencyRegion(0, fx.XYWH(10, 10, 1, 1)))
	assert.Equal(t, fx.XYWH(0, 0, 7, 4), blur.DependencyRegion(0, fx.XYWH(0, 0, 1, 1)),
		"dependency is clipped to the source")
	assert.Equal(t, fx.XYWH(4, 7, 13, 7), blur.DirtyRegion(0, fx.XYWH(10, 10, 1, 1)))
	assert.True(t, blur.DependencyRegion(1, fx.XYWH(0, 0, 1, 1)).Empty())
	assert.True(t, blur.DirtyRegion(-1, fx.XYWH(0, 0, 1, 1)).Empty())

	offset, err := NewOffset(src, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, fx.XYWH(0, 0, 2, 2), offset.DependencyRegion(0, fx.XYWH(5, 3, 2, 2)))
	assert.Equal(t, fx.XYWH(5, 3, 2, 2), offset.DirtyRegion(0, fx.XYWH(0, 0, 2, 2)))
}

func TestGraphicsFillShape(t *testing.T) {
	p := fx.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(0, 20)
	p.Close()
	g, err := NewGraphics(FillShape(p, blue))
	require.NoError(t, err)
	assert.Equal(t, fx.XYWH(0, 0, 20, 20), g.Bounds())

	b := pixels(t, g, identity())
	assert.Equal(t, rgba(blue), at(b, 2, 2))
	assert.Equal(t, [4]byte{}, at(b, 18, 18))
}

func TestCoverageThreshold(t *testing.T) {
	r := image.Rect(0, 0, 4, 1)

	aa := coverage(fx.XYWH(0, 0, 2.75, 1), fx.Identity(), r, true)
	assert.Equal(t, byte(255), aa.Pix[1])
	assert.InDelta(t, 191, aa.Pix[2], 2)
	assert.Equal(t, byte(0), aa.Pix[3])

	hard := coverage(fx.XYWH(0, 0, 2.75, 1), fx.Identity(), r, false)
	assert.Equal(t, []byte{255, 255, 255, 0}, hard.Pix[:4])

	hard = coverage(fx.XYWH(0, 0, 2.25, 1), fx.Identity(), r, false)
	assert.Equal(t, []byte{255, 255, 0, 0}, hard.Pix[:4])
}

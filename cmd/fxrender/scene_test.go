package main

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/loader"
	"github.com/gogpu/fx/raster"
)

func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.Background.Turbulence.Opacity = 0
	cfg.Shape.Shadow.Color = ""
	return cfg
}

func pixelAt(b *raster.Buffer, x, y int) color.NRGBA {
	i := b.PixOffset(x, y)
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

func near(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, "R of %v", got)
	assert.InDelta(t, want.G, got.G, 1, "G of %v", got)
	assert.InDelta(t, want.B, got.B, 1, "B of %v", got)
	assert.InDelta(t, want.A, got.A, 1, "A of %v", got)
}

func TestRenderPlainScene(t *testing.T) {
	cfg := plainConfig()
	scene, err := buildScene(cfg, loader.New())
	require.NoError(t, err)

	out := render(cfg, scene)
	assert.Equal(t, image.Rect(0, 0, 64, 48), out.Rect)
	near(t, color.NRGBA{R: 0x1e, G: 0x24, B: 0x30, A: 255}, pixelAt(out, 0, 0))
	near(t, color.NRGBA{R: 0xe0, G: 0x7a, B: 0x2f, A: 255}, pixelAt(out, 32, 24))
}

func TestBackgroundNoiseCoversCanvas(t *testing.T) {
	canvas := fx.XYWH(0, 0, 64, 48)
	bg, err := background(DefaultConfig().Background, canvas)
	require.NoError(t, err)

	srcs := bg.Sources()
	require.Len(t, srcs, 2)
	assert.Equal(t, canvas, srcs[0].Bounds(), "flood")
	assert.Equal(t, canvas, srcs[1].Bounds(), "noise")
}

func TestRenderScaledScene(t *testing.T) {
	cfg := plainConfig()
	cfg.Scale = 2
	scene, err := buildScene(cfg, loader.New())
	require.NoError(t, err)

	out := render(cfg, scene)
	assert.Equal(t, image.Rect(0, 0, 128, 96), out.Rect)
	near(t, color.NRGBA{R: 0xe0, G: 0x7a, B: 0x2f, A: 255}, pixelAt(out, 64, 48))
}

func TestRenderDefaultSceneIsOpaque(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	scene, err := buildScene(cfg, loader.New())
	require.NoError(t, err)

	out := render(cfg, scene)
	for y := 0; y < 30; y += 7 {
		for x := 0; x < 40; x += 7 {
			assert.Equal(t, uint8(255), pixelAt(out, x, y).A, "alpha at (%d, %d)", x, y)
		}
	}
}

func TestRenderSceneWithImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Pix[1], img.Pix[2] = 0, 0 // every pixel stays opaque, first is red
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	cfg := plainConfig()
	cfg.Shape.Points = 0
	cfg.Image = ImageConfig{
		URL:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  20,
		Height: 20,
	}
	scene, err := buildScene(cfg, loader.New())
	require.NoError(t, err)

	out := render(cfg, scene)
	near(t, color.NRGBA{R: 255, A: 255}, pixelAt(out, 2, 2))
	near(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixelAt(out, 17, 17))
	near(t, color.NRGBA{R: 0x1e, G: 0x24, B: 0x30, A: 255}, pixelAt(out, 30, 30))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte("[background.turbulence]\nopacity = 0\n"), 0o600))
	outPath := filepath.Join(dir, "out.png")

	root := newRootCmd()
	root.SetArgs([]string{"render", scenePath, "-o", outPath, "--width", "32", "--height", "24"})
	require.NoError(t, root.Execute())

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 24), got.Bounds())
}

func TestRenderCommandRejectsBadFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"render", "-o", filepath.Join(t.TempDir(), "x.png"), "--quality", "ultra"})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"config"})
	require.NoError(t, root.Execute())

	cfg, err := LoadConfig(&out)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/loader"
	"github.com/gogpu/fx/node"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// buildScene assembles the filter graph described by cfg. Images are
// requested from ld up front and waited on only during rendering.
func buildScene(cfg Config, ld *loader.Loader) (node.Node, error) {
	canvas := fx.XYWH(0, 0, float64(cfg.Width), float64(cfg.Height))

	layers := make([]node.Node, 0, 3)
	bg, err := background(cfg.Background, canvas)
	if err != nil {
		return nil, err
	}
	layers = append(layers, bg)

	if cfg.Shape.Points > 0 {
		s, err := star(cfg.Shape, canvas)
		if err != nil {
			return nil, err
		}
		layers = append(layers, s)
	}

	if cfg.Image.URL != "" {
		bounds := fx.XYWH(cfg.Image.X, cfg.Image.Y, cfg.Image.Width, cfg.Image.Height)
		img, err := node.NewFutureImage(ld.Load(cfg.Image.URL), bounds)
		if err != nil {
			return nil, err
		}
		layers = append(layers, img)
	}

	return node.NewMerge(layers...)
}

func background(cfg BackgroundConfig, canvas fx.Rect) (node.Node, error) {
	c, err := parseColor(cfg.Color, 1)
	if err != nil {
		return nil, err
	}
	flood, err := node.NewFlood(region.Fixed(canvas), c)
	if err != nil {
		return nil, err
	}
	t := cfg.Turbulence
	if t.Opacity <= 0 {
		return flood, nil
	}
	// The noise covers the flood's bounding box, expressed in its units.
	noiseRegion := region.Primitive{
		X: region.Float(0), Y: region.Float(0),
		Width: region.Float(1), Height: region.Float(1),
		Units:   region.ObjectBoundingBox,
		Ref:     flood,
		Default: region.SourceUnion(flood),
	}
	if err := noiseRegion.Validate(); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	noise, err := node.NewTurbulence(noiseRegion, node.TurbulenceParams{
		BaseFrequencyX: t.BaseFrequency,
		BaseFrequencyY: t.BaseFrequency,
		Octaves:        t.Octaves,
		Seed:           t.Seed,
		Fractal:        t.Fractal,
		Stitch:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	gray, err := node.NewSaturate(noise, 0)
	if err != nil {
		return nil, err
	}
	// bottom + opacity·top
	return node.NewComposite(fx.Arithmetic(0, t.Opacity, 1, 0), flood, gray)
}

func star(cfg ShapeConfig, canvas fx.Rect) (node.Node, error) {
	c, err := parseColor(cfg.Color, 1)
	if err != nil {
		return nil, err
	}
	cx, cy := (canvas.Min.X+canvas.Max.X)/2, (canvas.Min.Y+canvas.Max.Y)/2
	outer := min(canvas.Width(), canvas.Height()) * 0.35
	g, err := node.NewGraphics(node.FillShape(starPath(cx, cy, outer, outer*0.45, cfg.Points), c))
	if err != nil {
		return nil, err
	}

	var n node.Node = g
	if cfg.Blur > 0 {
		if n, err = node.NewGaussianBlur(n, cfg.Blur, cfg.Blur); err != nil {
			return nil, err
		}
	}
	sh := cfg.Shadow
	if sh.Color == "" {
		return n, nil
	}
	sc, err := parseColor(sh.Color, sh.Opacity)
	if err != nil {
		return nil, err
	}
	return node.NewDropShadow(n, sh.DX, sh.DY, sh.Blur, sc)
}

// starPath returns a star with the given number of points, its first
// point straight up.
func starPath(cx, cy, outer, inner float64, points int) *fx.Path {
	p := fx.NewPath()
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// render evaluates n for a canvas of cfg's size at cfg's scale and
// returns straight-alpha RGBA pixels.
func render(cfg Config, n node.Node) *raster.Buffer {
	w := int(math.Ceil(float64(cfg.Width) * cfg.Scale))
	h := int(math.Ceil(float64(cfg.Height) * cfg.Scale))
	ctx := fx.NewRenderContext(fx.Scale(cfg.Scale, cfg.Scale), fx.WithHints(cfg.Hints()))

	out := raster.NewBuffer(image.Rect(0, 0, w, h), raster.FormatRGBA8)
	if r := n.Render(ctx); r != nil {
		r.CopyTo(out)
	}
	return out
}

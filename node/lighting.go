package node

import (
	"fmt"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// Light sources of the lighting nodes. Positions are in user space.
type (
	Light        = filter.Light
	DistantLight = filter.DistantLight
	PointLight   = filter.PointLight
	SpotLight    = filter.SpotLight
)

// Lighting shades the alpha channel of its source, read as a height
// map, with a single light.
type Lighting struct {
	base
	src          Node
	light        Light
	surfaceScale float64
	constant     float64
	exponent     float64
	specular     bool
}

// NewDiffuseLighting returns the Lambertian lighting of src with the
// diffuse constant kd.
func NewDiffuseLighting(src Node, light Light, surfaceScale, kd float64) (*Lighting, error) {
	if err := checkLighting(src, light, kd); err != nil {
		return nil, err
	}
	return &Lighting{src: src, light: light, surfaceScale: surfaceScale, constant: kd}, nil
}

// NewSpecularLighting returns the Phong highlights of src with the
// specular constant ks and an exponent in [1, 128].
func NewSpecularLighting(src Node, light Light, surfaceScale, ks, exponent float64) (*Lighting, error) {
	if err := checkLighting(src, light, ks); err != nil {
		return nil, err
	}
	if exponent < 1 || exponent > 128 {
		return nil, fmt.Errorf("node: specular exponent %g: %w", exponent, fx.ErrInvalidParameter)
	}
	return &Lighting{
		src: src, light: light, surfaceScale: surfaceScale,
		constant: ks, exponent: exponent, specular: true,
	}, nil
}

func checkLighting(src Node, light Light, k float64) error {
	if src == nil || light == nil {
		return fmt.Errorf("node: lighting needs source and light: %w", fx.ErrInvalidParameter)
	}
	if k < 0 {
		return fmt.Errorf("node: lighting constant %g: %w", k, fx.ErrInvalidParameter)
	}
	return nil
}

// SetLight replaces the light source.
func (n *Lighting) SetLight(l Light) {
	n.light = l
	n.touch()
}

// Bounds implements Node.
func (n *Lighting) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *Lighting) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *Lighting) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *Lighting) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node. The height map is pulled once; the shading
// runs tile by tile as the result is read.
func (n *Lighting) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	s, ok := splitScale(ctx)
	if !ok {
		return nil
	}
	work := s.workRect(ctx, bounds)
	if work.Empty() {
		return nil
	}
	heights := pull(n.src, s.ctx, grow(work, 1, 1))

	l := filter.Lighting{
		Light:        n.light,
		SurfaceScale: float32(n.surfaceScale),
		Constant:     float32(n.constant),
		Exponent:     float32(n.exponent),
		ScaleX:       float32(math.Abs(s.sx)),
		ScaleY:       float32(math.Abs(s.sy)),
	}
	shade, format := filter.Diffuse, raster.FormatRGBAPremul
	if n.specular {
		shade, format = filter.Specular, raster.FormatRGBA8
	}
	lit := raster.Lazy(work, format, func(dst *raster.Buffer) {
		raster.Copy(dst, shade(heights.SubBuffer(grow(dst.Rect, 1, 1)), l))
	}, nil)
	return s.finish(ctx, lit, bounds)
}

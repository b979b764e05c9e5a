package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
	"github.com/gogpu/fx/region"
)

// TurbulenceParams describes a turbulence or fractal noise pattern.
type TurbulenceParams = filter.TurbulenceParams

// Turbulence fills its region with Perlin turbulence or fractal noise.
type Turbulence struct {
	base
	region region.Region
	params TurbulenceParams
}

// NewTurbulence returns a noise generator over r. Frequencies and the
// octave count must not be negative. A stitching pattern without a tile
// stitches to the region.
func NewTurbulence(r region.Region, p TurbulenceParams) (*Turbulence, error) {
	if r == nil {
		return nil, fmt.Errorf("node: turbulence without region: %w", fx.ErrInvalidParameter)
	}
	if err := validateTurbulence(p); err != nil {
		return nil, err
	}
	return &Turbulence{region: r, params: p}, nil
}

func validateTurbulence(p TurbulenceParams) error {
	if p.BaseFrequencyX < 0 || p.BaseFrequencyY < 0 {
		return fmt.Errorf("node: turbulence frequency (%g, %g): %w", p.BaseFrequencyX, p.BaseFrequencyY, fx.ErrInvalidParameter)
	}
	if p.Octaves < 0 {
		return fmt.Errorf("node: turbulence octaves %d: %w", p.Octaves, fx.ErrInvalidParameter)
	}
	return nil
}

// Params returns the noise parameters.
func (n *Turbulence) Params() TurbulenceParams { return n.params }

// SetParams changes the noise parameters.
func (n *Turbulence) SetParams(p TurbulenceParams) error {
	if err := validateTurbulence(p); err != nil {
		return err
	}
	n.params = p
	n.touch()
	return nil
}

// Bounds implements Node.
func (n *Turbulence) Bounds() fx.Rect { return n.region.Rect() }

// Sources implements Node.
func (n *Turbulence) Sources() []Node { return nil }

// DependencyRegion implements Node.
func (n *Turbulence) DependencyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// DirtyRegion implements Node.
func (n *Turbulence) DirtyRegion(int, fx.Rect) fx.Rect { return fx.Rect{} }

// Render implements Node. Tiles are generated as they are pulled. Under
// rotation the whole device bounding box is filled.
func (n *Turbulence) Render(ctx fx.RenderContext) raster.Raster {
	bounds := n.Bounds()
	dev := ctx.DeviceRect(bounds)
	if dev.Empty() {
		return nil
	}
	inv, ok := ctx.Transform().Invert()
	if !ok {
		return nil
	}
	p := n.params
	if p.Stitch && p.Tile.Empty() {
		p.Tile = bounds
	}
	t := filter.NewTurbulence(p, inv)
	fx.Logger().Debug("node: turbulence", "device", dev, "octaves", t.Octaves(), "fractal", p.Fractal)
	return raster.Lazy(dev, raster.FormatRGBA8, func(dst *raster.Buffer) {
		t.Fill(dst, inv)
	}, nil)
}

package node

import (
	"fmt"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/raster"
)

// ColorMatrix transforms the color of every pixel with a 4x5 matrix.
type ColorMatrix struct {
	base
	src Node
	m   filter.ColorMatrix
}

// NewColorMatrix returns src transformed by rows, 4 rows of 5 columns
// with offsets in [0, 1] units.
func NewColorMatrix(src Node, rows [][]float64) (*ColorMatrix, error) {
	if src == nil {
		return nil, fmt.Errorf("node: color matrix without source: %w", fx.ErrInvalidParameter)
	}
	m, err := filter.NewColorMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("node: %w: %w", fx.ErrInvalidParameter, err)
	}
	return &ColorMatrix{src: src, m: m}, nil
}

// NewSaturate returns src with saturation scaled by s; 0 is grayscale.
func NewSaturate(src Node, s float64) (*ColorMatrix, error) {
	if src == nil {
		return nil, fmt.Errorf("node: saturate without source: %w", fx.ErrInvalidParameter)
	}
	return &ColorMatrix{src: src, m: filter.SaturateMatrix(float32(s))}, nil
}

// NewHueRotate returns src with hues rotated by degrees.
func NewHueRotate(src Node, degrees float64) (*ColorMatrix, error) {
	if src == nil {
		return nil, fmt.Errorf("node: hue rotate without source: %w", fx.ErrInvalidParameter)
	}
	return &ColorMatrix{src: src, m: filter.HueRotateMatrix(float32(degrees))}, nil
}

// NewLuminanceToAlpha returns a black image whose alpha is the luminance
// of src.
func NewLuminanceToAlpha(src Node) (*ColorMatrix, error) {
	if src == nil {
		return nil, fmt.Errorf("node: luminance to alpha without source: %w", fx.ErrInvalidParameter)
	}
	return &ColorMatrix{src: src, m: filter.LuminanceToAlphaMatrix()}, nil
}

// Bounds implements Node.
func (n *ColorMatrix) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *ColorMatrix) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *ColorMatrix) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *ColorMatrix) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *ColorMatrix) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.Bounds())
	if dev.Empty() {
		return nil
	}
	return raster.Freeze(inColorSpace(ctx, pull(n.src, ctx, dev), n.m.Apply))
}

// inColorSpace runs fn on b in the color space selected by ctx.
func inColorSpace(ctx fx.RenderContext, b *raster.Buffer, fn func(*raster.Buffer) *raster.Buffer) *raster.Buffer {
	if ctx.Hints().ColorSpace() != fx.ColorLinearRGB {
		return fn(b)
	}
	filter.ToLinearRGB(b)
	out := fn(b)
	filter.ToSRGB(out)
	return out
}

// TransferFunc is the transfer function of one channel.
type TransferFunc = filter.TransferFunc

// Transfer function kinds.
const (
	TransferIdentity = filter.TransferIdentity
	TransferTable    = filter.TransferTable
	TransferDiscrete = filter.TransferDiscrete
	TransferLinear   = filter.TransferLinear
	TransferGamma    = filter.TransferGamma
)

// ComponentTransfer remaps every channel through its own transfer
// function.
type ComponentTransfer struct {
	base
	src   Node
	funcs [4]TransferFunc
	luts  [4][256]byte
}

// NewComponentTransfer returns src with channels remapped by r, g, b and
// a.
func NewComponentTransfer(src Node, r, g, b, a TransferFunc) (*ComponentTransfer, error) {
	if src == nil {
		return nil, fmt.Errorf("node: component transfer without source: %w", fx.ErrInvalidParameter)
	}
	n := &ComponentTransfer{src: src}
	n.setFuncs([4]TransferFunc{r, g, b, a})
	return n, nil
}

func (n *ComponentTransfer) setFuncs(f [4]TransferFunc) {
	n.funcs = f
	for i := range f {
		n.luts[i] = f[i].LookupTable()
	}
}

// SetFunc replaces the transfer function of channel c.
func (n *ComponentTransfer) SetFunc(c Channel, f TransferFunc) {
	funcs := n.funcs
	funcs[c] = f
	n.setFuncs(funcs)
	n.touch()
}

// Bounds implements Node.
func (n *ComponentTransfer) Bounds() fx.Rect { return n.src.Bounds() }

// Sources implements Node.
func (n *ComponentTransfer) Sources() []Node { return []Node{n.src} }

// DependencyRegion implements Node.
func (n *ComponentTransfer) DependencyRegion(src int, out fx.Rect) fx.Rect {
	return dependency(n.Sources(), src, out, 0, 0)
}

// DirtyRegion implements Node.
func (n *ComponentTransfer) DirtyRegion(src int, in fx.Rect) fx.Rect {
	return dirty(n, src, in, 0, 0)
}

// Render implements Node.
func (n *ComponentTransfer) Render(ctx fx.RenderContext) raster.Raster {
	dev := ctx.DeviceRect(n.Bounds())
	if dev.Empty() {
		return nil
	}
	return raster.Freeze(inColorSpace(ctx, pull(n.src, ctx, dev), func(b *raster.Buffer) *raster.Buffer {
		return filter.ComponentTransfer(b, &n.luts)
	}))
}

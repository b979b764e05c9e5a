package fx

import "math"

// Shape is a closed region in user space. Areas of interest and clip
// regions are expressed as shapes.
type Shape interface {
	// Bounds returns a rectangle containing the whole shape.
	Bounds() Rect

	// Path returns the outline of the shape.
	Path() *Path
}

// PathElement is a single segment of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths. The zero value is an empty path.
type Path struct {
	elements []PathElement
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Point{X: x, Y: y}})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Point{X: x, Y: y}})
}

// QuadTo appends a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{
		Control: Point{X: cx, Y: cy},
		Point:   Point{X: x, Y: y},
	})
}

// CubicTo appends a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    Point{X: x, Y: y},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path segments. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Bounds returns the bounding box of all points and control points.
// Bezier hulls contain their curves, so the result is conservative.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(q Point) {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}

// Path implements Shape.
func (p *Path) Path() *Path {
	return p
}

// Transform returns a copy of p with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			out.elements = append(out.elements, e)
		}
	}
	return out
}

// TransformShape maps s through m. Rectangles stay rectangles under scale
// and translation; everything else becomes a Path.
func TransformShape(m Matrix, s Shape) Shape {
	if s == nil {
		return nil
	}
	if r, ok := s.(Rect); ok && m.B == 0 && m.D == 0 {
		return m.TransformRect(r)
	}
	return s.Path().Transform(m)
}

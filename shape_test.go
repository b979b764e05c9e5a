package fx

import (
	"math"
	"testing"
)

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if got := p.Bounds(); got != (Rect{}) {
		t.Errorf("empty path bounds = %v, want zero Rect", got)
	}

	p.MoveTo(1, 1)
	p.QuadTo(5, -3, 4, 2)
	p.CubicTo(0, 6, -1, 3, 1, 1)
	p.Close()

	want := Rect{Min: Pt(-1, -3), Max: Pt(5, 6)}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if n := len(p.Elements()); n != 4 {
		t.Errorf("len(Elements) = %d, want 4", n)
	}
}

func TestPathTransform(t *testing.T) {
	p := XYWH(0, 0, 2, 1).Path()
	q := p.Transform(Translate(10, 20).Multiply(Scale(2, 2)))

	if got, want := q.Bounds(), XYWH(10, 20, 4, 2); got != want {
		t.Errorf("transformed bounds = %v, want %v", got, want)
	}
	if got := p.Bounds(); got != XYWH(0, 0, 2, 1) {
		t.Errorf("Transform modified the source path: %v", got)
	}
	if _, ok := q.Elements()[len(q.Elements())-1].(Close); !ok {
		t.Error("Close element lost by Transform")
	}
}

func TestTransformShape(t *testing.T) {
	r := XYWH(1, 1, 2, 2)

	if got, ok := TransformShape(Scale(3, 3), r).(Rect); !ok || got != XYWH(3, 3, 6, 6) {
		t.Errorf("scaled rect = %v (%T), want Rect", got, got)
	}

	rotated := TransformShape(Rotate(math.Pi/4), r)
	if _, ok := rotated.(*Path); !ok {
		t.Fatalf("rotated rect is %T, want *Path", rotated)
	}
	b := rotated.Bounds()
	if math.Abs(b.Width()-2*math.Sqrt2) > 1e-9 {
		t.Errorf("rotated width = %v, want %v", b.Width(), 2*math.Sqrt2)
	}

	if TransformShape(Identity(), nil) != nil {
		t.Error("nil shape should stay nil")
	}
}

func TestCompositeRules(t *testing.T) {
	if Over.Op.String() != "over" || Lighten.Op.String() != "lighten" {
		t.Errorf("names: %q, %q", Over.Op, Lighten.Op)
	}
	if CompositeOp(200).String() != "unknown" {
		t.Error("out of range op should be unknown")
	}
	a := Arithmetic(0.5, 1, -1, 0.25)
	if a.Op != CompositeArithmetic || a.K1 != 0.5 || a.K2 != 1 || a.K3 != -1 || a.K4 != 0.25 {
		t.Errorf("Arithmetic = %+v", a)
	}
}

package floe

import (
	"errors"
	"math"
	"testing"
)

// --- Shape bounds ---

func TestRectangleBoundsBorderPositions(t *testing.T) {
	rect := Bounds{X: 0, Y: 0, W: 100, H: 50}

	cases := []struct {
		name  string
		style ShapeStyle
		want  Bounds
	}{
		{"fill only", Filled(Red), rect},
		{"center border", Outlined(Black, 4), Bounds{X: -2, Y: -2, W: 104, H: 54}},
		{"inside border", ShapeStyle{Border: &Black, BorderThickness: 4, BorderPosition: BorderInside}, rect},
		{"outside border", ShapeStyle{Border: &Black, BorderThickness: 4, BorderPosition: BorderOutside}, Bounds{X: -4, Y: -4, W: 108, H: 58}},
	}
	for _, c := range cases {
		n, err := NewRectangle(rect, c.style)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		assertBounds(t, c.name, n.Bounds(), c.want)
		assertBounds(t, c.name+" rect", n.Rect(), rect)
	}
}

func TestEllipseBounds(t *testing.T) {
	rect := Bounds{X: 10, Y: 10, W: 40, H: 20}
	n, err := NewEllipse(rect, Filled(Blue))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindEllipse {
		t.Errorf("Kind = %s", n.Kind())
	}
	assertBounds(t, "ellipse", n.Bounds(), rect)
}

func TestNewShapeValidation(t *testing.T) {
	if _, err := NewRectangle(Bounds{W: -1, H: 1}, Filled(Red)); err == nil {
		t.Error("negative width should fail")
	}
	if _, err := NewRectangle(Bounds{W: 1, H: 1}, Outlined(Red, -2)); err == nil {
		t.Error("negative border thickness should fail")
	}
	bad := Filled(Red)
	bad.CornerRadius = -1
	if _, err := NewRectangle(Bounds{W: 1, H: 1}, bad); err == nil {
		t.Error("negative corner radius should fail")
	}
}

// --- Blank ---

func TestNewBlank(t *testing.T) {
	b := Bounds{X: 0, Y: 0, W: 640, H: 480}
	n, err := NewBlank(b, White)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, "blank", n.Bounds(), b)
	assertColor(t, "background", n.BackgroundColor(), White)

	if _, err := NewBlank(Bounds{W: -1}, White); err == nil {
		t.Error("negative size should fail")
	}
}

// --- Lines and polygons ---

func TestNewLineBounds(t *testing.T) {
	n, err := NewLine([]Point{Pt(0, 0), Pt(100, 50)}, PathStyle{Color: Black, Thickness: 4})
	if err != nil {
		t.Fatal(err)
	}
	// The point hull grown by half the stroke width per side.
	assertBounds(t, "line", n.Bounds(), Bounds{X: -2, Y: -2, W: 104, H: 54})
	if n.Closed() {
		t.Error("line should be open")
	}
	if n.PathFill() != nil {
		t.Error("line should have no fill")
	}
}

func TestNewLineValidation(t *testing.T) {
	style := PathStyle{Color: Black, Thickness: 1}
	if _, err := NewLine([]Point{Pt(0, 0)}, style); err == nil {
		t.Error("single-point line should fail")
	}
	var geomErr *GeometryError
	_, err := NewLine([]Point{Pt(0, 0), Pt(1, math.NaN())}, style)
	if !errors.As(err, &geomErr) {
		t.Errorf("non-finite point error = %v, want GeometryError", err)
	}
}

func TestNewPolygon(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}
	n, err := NewPolygon(pts, Red, PathStyle{Color: Black, Thickness: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !n.Closed() {
		t.Error("polygon should be closed")
	}
	if n.PathFill() == nil {
		t.Fatal("polygon should have a fill")
	}
	assertColor(t, "fill", *n.PathFill(), Red)
	assertBounds(t, "polygon", n.Bounds(), Bounds{X: 0, Y: 0, W: 10, H: 10})

	if _, err := NewPolygon(pts[:2], Red, PathStyle{}); err == nil {
		t.Error("two-point polygon should fail")
	}
}

func TestLineInputNotRetained(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 10)}
	n, err := NewLine(pts, PathStyle{Color: Black, Thickness: 2})
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = Pt(999, 999)
	assertPoint(t, "first point", n.Points()[0], Pt(0, 0))
}

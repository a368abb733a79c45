package floe

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func tweenEndpoints(t *testing.T) (a, b *Node) {
	t.Helper()
	a = mustRect(t, Bounds{W: 10, H: 10}, Filled(Black))
	b = mustRect(t, Bounds{W: 30, H: 30}, Filled(White)).Move(20, 0)
	return a, b
}

// --- Boundary laws ---

func TestTweenEndpointsAreExact(t *testing.T) {
	a, b := tweenEndpoints(t)

	start, err := Tween(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if start != a {
		t.Error("t=0 should return the first scene unchanged")
	}

	end, err := Tween(a, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if end != b {
		t.Error("t=1 should return the second scene unchanged")
	}
}

func TestTweenClampsParameter(t *testing.T) {
	a, b := tweenEndpoints(t)
	before, err := Tween(a, b, -0.5)
	if err != nil {
		t.Fatal(err)
	}
	after, err := Tween(a, b, 2)
	if err != nil {
		t.Fatal(err)
	}
	if before != a || after != b {
		t.Error("out-of-range parameters should clamp to the endpoints")
	}
}

// --- Interpolation ---

func TestTweenMidpointRect(t *testing.T) {
	a, b := tweenEndpoints(t)
	mid, err := Tween(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertBounds(t, "bounds", mid.Bounds(), Bounds{X: 10, Y: 0, W: 20, H: 20})
	assertColor(t, "fill", *mid.ShapeStyle().Fill, Gray)

	// Inputs are untouched.
	assertBounds(t, "a", a.Bounds(), Bounds{W: 10, H: 10})
	assertColor(t, "a fill", *a.ShapeStyle().Fill, Black)
}

func TestTweenLineAndPolygon(t *testing.T) {
	style := PathStyle{Color: Black, Thickness: 2}
	a, err := NewLine([]Point{Pt(0, 0), Pt(10, 0)}, style)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLine([]Point{Pt(0, 10), Pt(30, 10)}, PathStyle{Color: Black, Thickness: 6})
	if err != nil {
		t.Fatal(err)
	}
	mid, err := Tween(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertPoint(t, "second point", mid.Points()[1], Pt(20, 5))
	assertNear(t, "thickness", mid.PathStyle().Thickness, 4)
	// Bounds track the interpolated stroke.
	assertBounds(t, "bounds", mid.Bounds(), Bounds{X: -2, Y: 3, W: 24, H: 4})
}

func TestTweenText(t *testing.T) {
	a, _ := NewText("go", FontStyle{Family: "Arial", Size: 10, Color: Black})
	b, _ := NewText("go", FontStyle{Family: "Arial", Size: 30, Color: Red})
	mid, err := Tween(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "size", mid.FontStyle().Size, 20)
	assertNear(t, "height", mid.Bounds().H, 20)
	assertColor(t, "color", mid.FontStyle().Color, Color{0.5, 0, 0, 1})
}

func TestTweenRecursesIntoGroups(t *testing.T) {
	a1, b1 := tweenEndpoints(t)
	ga := Compose(a1, a1.Move(100, 0))
	gb := Compose(b1, b1.Move(100, 0))

	mid, err := Tween(ga, gb, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if mid.NumChildren() != 2 {
		t.Fatalf("children = %d", mid.NumChildren())
	}
	assertBounds(t, "first child", mid.ChildAt(0).Bounds(), Bounds{X: 10, Y: 0, W: 20, H: 20})
	assertBounds(t, "second child", mid.ChildAt(1).Bounds(), Bounds{X: 110, Y: 0, W: 20, H: 20})
}

// --- Incompatibility ---

func TestTweenIncompatibleKind(t *testing.T) {
	rect := mustRect(t, Bounds{W: 10, H: 10}, Filled(Red))
	ellipse, _ := NewEllipse(Bounds{W: 10, H: 10}, Filled(Red))

	_, err := Tween(rect, ellipse, 0.5)
	var incompatible *IncompatibleSceneError
	if !errors.As(err, &incompatible) {
		t.Fatalf("error = %v, want IncompatibleSceneError", err)
	}
	if incompatible.Path != "root" {
		t.Errorf("Path = %q, want root", incompatible.Path)
	}
}

func TestTweenIncompatibleChildReportsPath(t *testing.T) {
	a := Compose(
		mustRect(t, Bounds{W: 10, H: 10}, Filled(Red)),
		mustRect(t, Bounds{W: 10, H: 10}, Filled(Red)),
	)
	mismatched, _ := NewText("x", FontStyle{Size: 10, Color: Black})
	b := Compose(mustRect(t, Bounds{W: 10, H: 10}, Filled(Red)), mismatched)

	_, err := Tween(a, b, 0.5)
	var incompatible *IncompatibleSceneError
	if !errors.As(err, &incompatible) {
		t.Fatalf("error = %v, want IncompatibleSceneError", err)
	}
	if incompatible.Path != "root.children[1]" {
		t.Errorf("Path = %q, want root.children[1]", incompatible.Path)
	}
}

func TestTweenIncompatibleAtEndpointsStillFails(t *testing.T) {
	rect := mustRect(t, Bounds{W: 10, H: 10}, Filled(Red))
	text, _ := NewText("x", FontStyle{Size: 10, Color: Black})
	// Structure is checked before the endpoint shortcut.
	if _, err := Tween(rect, text, 0); err == nil {
		t.Error("incompatible scenes should fail at t=0 too")
	}
}

func TestTweenTextContentMismatch(t *testing.T) {
	a, _ := NewText("one", FontStyle{Size: 10, Color: Black})
	b, _ := NewText("two", FontStyle{Size: 10, Color: Black})
	if _, err := Tween(a, b, 0.5); err == nil {
		t.Error("differing text content should fail")
	}
}

func TestTweenChildCountMismatch(t *testing.T) {
	one := Compose(mustRect(t, Bounds{W: 1, H: 1}, Filled(Red)))
	two := Compose(
		mustRect(t, Bounds{W: 1, H: 1}, Filled(Red)),
		mustRect(t, Bounds{W: 1, H: 1}, Filled(Red)),
	)
	if _, err := Tween(one, two, 0.5); err == nil {
		t.Error("differing child counts should fail")
	}
}

// --- Easing ---

func TestTweenEaseLinearMatchesTween(t *testing.T) {
	a, b := tweenEndpoints(t)
	plain, err := Tween(a, b, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	eased, err := TweenEase(a, b, 0.25, ease.Linear)
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Equal(eased) {
		t.Error("linear easing should match plain interpolation")
	}
}

func TestTweenEasePreservesEndpoints(t *testing.T) {
	a, b := tweenEndpoints(t)
	start, err := TweenEase(a, b, 0, ease.InOutQuad)
	if err != nil {
		t.Fatal(err)
	}
	end, err := TweenEase(a, b, 1, ease.InOutQuad)
	if err != nil {
		t.Fatal(err)
	}
	if start != a || end != b {
		t.Error("easing should preserve the endpoints")
	}
}

func TestTweenEaseOvershoots(t *testing.T) {
	a, b := tweenEndpoints(t)

	// OutBack exceeds 1 near the end of the run; the frame must travel
	// past the destination rather than clamp onto it.
	mid, err := TweenEase(a, b, 0.8, ease.OutBack)
	if err != nil {
		t.Fatal(err)
	}
	if got := mid.Offset().X; got <= b.Offset().X {
		t.Errorf("offset x = %g, want beyond %g", got, b.Offset().X)
	}
}

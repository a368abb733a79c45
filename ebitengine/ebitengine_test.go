package ebitengine

import (
	"math"
	"testing"

	"github.com/floekit/floe"
)

const epsilon = 1e-9

func TestRectPoints(t *testing.T) {
	pts := rectPoints(floe.Bounds{X: 10, Y: 20, W: 30, H: 40})
	want := []floe.Point{{X: 10, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 60}, {X: 10, Y: 60}}
	if len(pts) != 4 {
		t.Fatalf("points = %d, want 4", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestRoundedRectPointsStayInside(t *testing.T) {
	b := floe.Bounds{X: 0, Y: 0, W: 100, H: 50}
	slack := b.Expand(epsilon, epsilon, epsilon, epsilon)
	for _, p := range roundedRectPoints(b, 10) {
		if !slack.Contains(p) {
			t.Fatalf("outline point %v escapes %v", p, b)
		}
	}
	// An oversized radius clamps instead of self-intersecting.
	for _, p := range roundedRectPoints(b, 500) {
		if !slack.Contains(p) {
			t.Fatalf("clamped outline point %v escapes %v", p, b)
		}
	}
}

func TestRoundedRectPointsZeroRadius(t *testing.T) {
	b := floe.Bounds{W: 10, H: 10}
	if got := len(roundedRectPoints(b, 0)); got != 4 {
		t.Errorf("points = %d, want plain rectangle", got)
	}
}

func TestEllipsePointsLieOnEllipse(t *testing.T) {
	b := floe.Bounds{X: 0, Y: 0, W: 40, H: 20}
	pts := ellipsePoints(b)
	if len(pts) != ellipseSegments {
		t.Fatalf("points = %d, want %d", len(pts), ellipseSegments)
	}
	for _, p := range pts {
		dx := (p.X - 20) / 20
		dy := (p.Y - 10) / 10
		if math.Abs(dx*dx+dy*dy-1) > epsilon {
			t.Fatalf("point %v is off the ellipse", p)
		}
	}
}

func TestDiscPointsRadius(t *testing.T) {
	center := floe.Pt(5, 5)
	for _, p := range discPoints(center, 3) {
		if math.Abs(p.Distance(center)-3) > epsilon {
			t.Fatalf("point %v is off the disc edge", p)
		}
	}
}

func TestColorVertex(t *testing.T) {
	v := colorVertex(floe.Pt(3, 4), floe.Color{R: 1, G: 0.5, B: 0, A: 0.25})
	if v.DstX != 3 || v.DstY != 4 {
		t.Errorf("position = (%v, %v)", v.DstX, v.DstY)
	}
	if v.ColorR != 1 || v.ColorG != 0.5 || v.ColorB != 0 || v.ColorA != 0.25 {
		t.Errorf("color = (%v, %v, %v, %v)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

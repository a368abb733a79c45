package floe

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Tween produces the scene between a and b at parameter t. The two trees
// must match structurally: same shape, same kinds, and identical
// non-numeric payloads (text content, font family, path point counts,
// style presence). Numeric attributes interpolate linearly.
//
// t=0 returns a and t=1 returns b, exactly; values outside [0, 1] are
// clamped. A structural mismatch fails fast with IncompatibleSceneError;
// there is no best-effort cross-fade of incompatible payloads.
func Tween(a, b *Node, t float64) (*Node, error) {
	if a == nil || b == nil {
		panic("floe: Tween with nil node")
	}
	if !isFinite(t) {
		return nil, geometryErrorf("tween parameter %g", t)
	}
	if err := compatible(a, b, "root"); err != nil {
		return nil, err
	}
	return tweenAt(a, b, clamp01(t)), nil
}

// TweenEase is Tween with the parameter remapped through a gween easing
// function before interpolation. Only the input parameter is clamped: the
// eased value may leave [0, 1], which is what lets curves like
// ease.OutBack overshoot their target.
func TweenEase(a, b *Node, t float64, fn ease.TweenFunc) (*Node, error) {
	if a == nil || b == nil {
		panic("floe: TweenEase with nil node")
	}
	if fn == nil {
		fn = ease.Linear
	}
	if !isFinite(t) {
		return nil, geometryErrorf("tween parameter %g", t)
	}
	if err := compatible(a, b, "root"); err != nil {
		return nil, err
	}
	eased := float64(fn(float32(clamp01(t)), 0, 1, 1))
	return tweenAt(a, b, eased), nil
}

// tweenAt interpolates two verified-compatible trees at an unclamped
// parameter. Exactly 0 and 1 hand back the inputs themselves.
func tweenAt(a, b *Node, t float64) *Node {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return lerpNode(a, b, t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// compatible walks both trees positionally and reports the first structural
// mismatch. Only attributes that cannot be interpolated are checked here.
func compatible(a, b *Node, path string) error {
	mismatch := func(format string, args ...any) error {
		return &IncompatibleSceneError{Path: path, Reason: fmt.Sprintf(format, args...)}
	}

	if a.kind != b.kind {
		return mismatch("kind %s vs %s", a.kind, b.kind)
	}
	if len(a.children) != len(b.children) {
		return mismatch("child count %d vs %d", len(a.children), len(b.children))
	}

	switch a.kind {
	case KindRect, KindEllipse:
		if (a.shape.Fill == nil) != (b.shape.Fill == nil) {
			return mismatch("fill present vs absent")
		}
		if (a.shape.Border == nil) != (b.shape.Border == nil) {
			return mismatch("border present vs absent")
		}
		if a.shape.BorderPosition != b.shape.BorderPosition {
			return mismatch("border position %d vs %d", a.shape.BorderPosition, b.shape.BorderPosition)
		}
	case KindLine:
		if len(a.path) != len(b.path) {
			return mismatch("point count %d vs %d", len(a.path), len(b.path))
		}
		if a.closed != b.closed {
			return mismatch("closed vs open path")
		}
		if a.pathStyle.Cap != b.pathStyle.Cap {
			return mismatch("stroke cap %d vs %d", a.pathStyle.Cap, b.pathStyle.Cap)
		}
		if (a.pathFill == nil) != (b.pathFill == nil) {
			return mismatch("path fill present vs absent")
		}
	case KindText:
		if a.text != b.text {
			return mismatch("text content %q vs %q", a.text, b.text)
		}
		if a.font.Family != b.font.Family {
			return mismatch("font family %q vs %q", a.font.Family, b.font.Family)
		}
	case KindGroup:
		if a.arranged != b.arranged {
			return mismatch("arranged vs plain group")
		}
		if a.arranged && a.arrangeDir != b.arrangeDir {
			return mismatch("arrangement direction %s vs %s", a.arrangeDir, b.arrangeDir)
		}
		if a.arranged && a.align != b.align {
			return mismatch("arrangement alignment %d vs %d", a.align, b.align)
		}
	}

	for i := range a.children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if err := compatible(a.children[i], b.children[i], childPath); err != nil {
			return err
		}
	}
	return nil
}

// lerpNode interpolates two compatible nodes. Derived geometry (shape and
// path bounds, text measurement) is recomputed from the interpolated inputs
// so the result is a node the constructors could have produced.
func lerpNode(a, b *Node, t float64) *Node {
	out := a.clone()
	out.offset = a.offset.Lerp(b.offset, t)

	switch a.kind {
	case KindBlank:
		out.bounds = a.bounds.Lerp(b.bounds, t)
		out.background = a.background.Lerp(b.background, t)

	case KindRect, KindEllipse:
		out.rect = a.rect.Lerp(b.rect, t)
		out.shape = lerpShapeStyle(a.shape, b.shape, t)
		out.bounds = shapeBounds(out.rect, out.shape)

	case KindLine:
		for i := range out.path {
			out.path[i] = a.path[i].Lerp(b.path[i], t)
		}
		out.pathStyle.Color = a.pathStyle.Color.Lerp(b.pathStyle.Color, t)
		out.pathStyle.Thickness = lerp(a.pathStyle.Thickness, b.pathStyle.Thickness, t)
		if a.pathFill != nil {
			fill := a.pathFill.Lerp(*b.pathFill, t)
			out.pathFill = &fill
		}
		out.bounds = pathBounds(out.path, out.pathStyle.Thickness)

	case KindText:
		out.font.Size = lerp(a.font.Size, b.font.Size, t)
		out.font.Color = a.font.Color.Lerp(b.font.Color, t)
		out.bounds = measureText(out.text, out.font.Size)

	case KindGroup:
		out.gap = lerp(a.gap, b.gap, t)
		out.bounds = a.bounds.Lerp(b.bounds, t)
		for i := range out.children {
			out.children[i] = lerpNode(a.children[i], b.children[i], t)
		}
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpShapeStyle(a, b ShapeStyle, t float64) ShapeStyle {
	out := ShapeStyle{
		BorderThickness: lerp(a.BorderThickness, b.BorderThickness, t),
		BorderPosition:  a.BorderPosition,
		CornerRadius:    lerp(a.CornerRadius, b.CornerRadius, t),
	}
	if a.Fill != nil {
		fill := a.Fill.Lerp(*b.Fill, t)
		out.Fill = &fill
	}
	if a.Border != nil {
		border := a.Border.Lerp(*b.Border, t)
		out.Border = &border
	}
	return out
}

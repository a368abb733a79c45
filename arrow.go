package floe

import "math"

// HeadKind selects the arrowhead rendering.
type HeadKind uint8

const (
	// HeadTriangle is a solid filled triangle.
	HeadTriangle HeadKind = iota
	// HeadOpen is two stroked barbs with no fill.
	HeadOpen
)

// ArrowStyle controls arrowhead geometry and placement.
type ArrowStyle struct {
	HeadLength   float64
	HeadAngleDeg float64
	Kind         HeadKind
	AtStart      bool
	AtEnd        bool
}

// DefaultArrowStyle is a single triangular head at the end of the line.
func DefaultArrowStyle() ArrowStyle {
	return ArrowStyle{HeadLength: 20, HeadAngleDeg: 30, Kind: HeadTriangle, AtEnd: true}
}

// NewArrow draws a straight arrow from start to end. The shaft is shortened
// under each solid head so the stroke does not poke past the tip.
func NewArrow(start, end Point, line PathStyle, style ArrowStyle) (*Node, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return nil, geometryErrorf("non-finite arrow endpoints %v, %v", start, end)
	}
	if start == end {
		return nil, geometryErrorf("zero-length arrow at %v", start)
	}
	if !isFinite(style.HeadLength) || style.HeadLength <= 0 {
		return nil, geometryErrorf("arrow head length %g", style.HeadLength)
	}
	if !isFinite(style.HeadAngleDeg) || style.HeadAngleDeg <= 0 || style.HeadAngleDeg >= 90 {
		return nil, geometryErrorf("arrow head angle %g degrees", style.HeadAngleDeg)
	}

	dir := end.Sub(start).Normalize()

	// Solid heads would show the squared-off shaft end through their tip,
	// so the shaft retreats by half its thickness at each headed endpoint.
	backup := line.Thickness / 2
	shaftStart, shaftEnd := start, end
	if style.AtStart && style.Kind == HeadTriangle {
		shaftStart = start.Add(dir.Mul(backup))
	}
	if style.AtEnd && style.Kind == HeadTriangle {
		shaftEnd = end.Sub(dir.Mul(backup))
	}

	shaft, err := NewLine([]Point{shaftStart, shaftEnd}, line)
	if err != nil {
		return nil, err
	}

	parts := []*Node{shaft}
	if style.AtStart {
		head, err := arrowHead(start, dir.Neg(), line, style)
		if err != nil {
			return nil, err
		}
		parts = append(parts, head)
	}
	if style.AtEnd {
		head, err := arrowHead(end, dir, line, style)
		if err != nil {
			return nil, err
		}
		parts = append(parts, head)
	}
	return Compose(parts...), nil
}

// arrowHead builds one head with its tip at tip, pointing along dir.
func arrowHead(tip, dir Point, line PathStyle, style ArrowStyle) (*Node, error) {
	angle := style.HeadAngleDeg * math.Pi / 180
	perp := Pt(-dir.Y, dir.X)
	along := dir.Mul(style.HeadLength * math.Cos(angle))
	across := perp.Mul(style.HeadLength * math.Sin(angle))
	left := tip.Sub(along).Add(across)
	right := tip.Sub(along).Sub(across)

	if style.Kind == HeadOpen {
		return NewLine([]Point{left, tip, right}, line)
	}
	outline := line
	outline.Thickness = 0
	return NewPolygon([]Point{tip, left, right}, line.Color, outline)
}

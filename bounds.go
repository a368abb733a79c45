package floe

import "math"

// Bounds is an axis-aligned rectangle given by its top-left corner and size.
// Width and height are never negative for bounds produced by this package.
type Bounds struct {
	X, Y, W, H float64
}

// NewBounds creates a Bounds and validates it: all values must be finite and
// the size non-negative.
func NewBounds(x, y, w, h float64) (Bounds, error) {
	b := Bounds{X: x, Y: y, W: w, H: h}
	if err := b.validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// BoundsOfSize creates a Bounds of the given size anchored at the origin.
func BoundsOfSize(w, h float64) (Bounds, error) {
	return NewBounds(0, 0, w, h)
}

// BoundsFromPoints returns the minimal Bounds containing all given points.
// With no points the zero Bounds is returned.
func BoundsFromPoints(points ...Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (b Bounds) validate() error {
	if !b.IsFinite() {
		return geometryErrorf("non-finite bounds %v", b)
	}
	if b.W < 0 || b.H < 0 {
		return geometryErrorf("negative size %gx%g", b.W, b.H)
	}
	return nil
}

// IsFinite reports whether all four values are finite.
func (b Bounds) IsFinite() bool {
	return isFinite(b.X) && isFinite(b.Y) && isFinite(b.W) && isFinite(b.H)
}

// Left returns the minimum x coordinate.
func (b Bounds) Left() float64 { return b.X }

// Top returns the minimum y coordinate.
func (b Bounds) Top() float64 { return b.Y }

// Right returns the maximum x coordinate.
func (b Bounds) Right() float64 { return b.X + b.W }

// Bottom returns the maximum y coordinate.
func (b Bounds) Bottom() float64 { return b.Y + b.H }

// TopLeftPoint returns the top-left corner.
func (b Bounds) TopLeftPoint() Point { return Point{b.X, b.Y} }

// Size returns the width and height as a vector.
func (b Bounds) Size() Point { return Point{b.W, b.H} }

// CenterPoint returns the center of the bounds.
func (b Bounds) CenterPoint() Point {
	return Point{b.X + b.W/2, b.Y + b.H/2}
}

// Corner returns the named position on the bounds. Unrecognized positions
// fail with a CornerError.
func (b Bounds) Corner(c Corner) (Point, error) {
	if !c.Valid() {
		return Point{}, &CornerError{Corner: c}
	}
	return b.corner(c), nil
}

// corner is the unchecked variant for positions known to be valid.
func (b Bounds) corner(c Corner) Point {
	switch c {
	case TopLeft:
		return Point{b.X, b.Y}
	case TopMiddle:
		return Point{b.X + b.W/2, b.Y}
	case TopRight:
		return Point{b.X + b.W, b.Y}
	case MiddleRight:
		return Point{b.X + b.W, b.Y + b.H/2}
	case BottomRight:
		return Point{b.X + b.W, b.Y + b.H}
	case BottomMiddle:
		return Point{b.X + b.W/2, b.Y + b.H}
	case BottomLeft:
		return Point{b.X, b.Y + b.H}
	case MiddleLeft:
		return Point{b.X, b.Y + b.H/2}
	default:
		return Point{b.X + b.W/2, b.Y + b.H/2}
	}
}

// Translate returns the bounds shifted by the given vector.
func (b Bounds) Translate(p Point) Bounds {
	return Bounds{X: b.X + p.X, Y: b.Y + p.Y, W: b.W, H: b.H}
}

// Union returns the minimal bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	left := math.Min(b.X, o.X)
	top := math.Min(b.Y, o.Y)
	right := math.Max(b.Right(), o.Right())
	bottom := math.Max(b.Bottom(), o.Bottom())
	return Bounds{X: left, Y: top, W: right - left, H: bottom - top}
}

// Intersect returns the overlap of b and o. The second result is false when
// the rectangles do not touch at all; bounds that merely share an edge
// intersect with a zero-area result.
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	left := math.Max(b.X, o.X)
	top := math.Max(b.Y, o.Y)
	right := math.Min(b.Right(), o.Right())
	bottom := math.Min(b.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return Bounds{}, false
	}
	return Bounds{X: left, Y: top, W: right - left, H: bottom - top}, true
}

// Inset shrinks the bounds by dx on the left/right and dy on the top/bottom.
// Negative values grow the bounds.
func (b Bounds) Inset(dx, dy float64) Bounds {
	return Bounds{X: b.X + dx, Y: b.Y + dy, W: b.W - 2*dx, H: b.H - 2*dy}
}

// Expand grows the bounds by the given amount on each side.
func (b Bounds) Expand(left, top, right, bottom float64) Bounds {
	return Bounds{
		X: b.X - left,
		Y: b.Y - top,
		W: b.W + left + right,
		H: b.H + top + bottom,
	}
}

// Contains reports whether the point lies inside the bounds.
// Points on the edge are considered inside.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W &&
		p.Y >= b.Y && p.Y <= b.Y+b.H
}

// ContainsBounds reports whether o lies fully inside b.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return o.X >= b.X && o.Y >= b.Y &&
		o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// Lerp linearly interpolates between two bounds.
func (b Bounds) Lerp(o Bounds, t float64) Bounds {
	return Bounds{
		X: b.X + (o.X-b.X)*t,
		Y: b.Y + (o.Y-b.Y)*t,
		W: b.W + (o.W-b.W)*t,
		H: b.H + (o.H-b.H)*t,
	}
}

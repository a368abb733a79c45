package floe

import (
	"fmt"
	"math"
)

// Point is a 2D point or vector. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both components are finite (not NaN or Inf).
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Corner ---

// Corner names one of the nine reference positions on a Bounds: the four
// corners, the four edge midpoints, and the center.
type Corner uint8

const (
	TopLeft Corner = iota
	TopMiddle
	TopRight
	MiddleRight
	BottomRight
	BottomMiddle
	BottomLeft
	MiddleLeft
	Center
)

var cornerNames = [...]string{
	TopLeft:      "top-left",
	TopMiddle:    "top-middle",
	TopRight:     "top-right",
	MiddleRight:  "middle-right",
	BottomRight:  "bottom-right",
	BottomMiddle: "bottom-middle",
	BottomLeft:   "bottom-left",
	MiddleLeft:   "middle-left",
	Center:       "center",
}

// Valid reports whether c is one of the nine named positions.
func (c Corner) Valid() bool {
	return c <= Center
}

func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", uint8(c))
	}
	return cornerNames[c]
}

// Opposite returns the position mirrored through the center.
// Center is its own opposite.
func (c Corner) Opposite() Corner {
	switch c {
	case TopLeft:
		return BottomRight
	case TopMiddle:
		return BottomMiddle
	case TopRight:
		return BottomLeft
	case MiddleRight:
		return MiddleLeft
	case BottomRight:
		return TopLeft
	case BottomMiddle:
		return TopMiddle
	case BottomLeft:
		return TopRight
	case MiddleLeft:
		return MiddleRight
	default:
		return Center
	}
}

// --- Direction ---

// Direction is one of the eight named unit directions. Multiply by a
// magnitude with Times to express a declarative offset such as "10 units
// down".
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var directionNames = [...]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
}

var invSqrt2 = 1 / math.Sqrt2

var directionVectors = [...]Point{
	Up:        {0, -1},
	Down:      {0, 1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-invSqrt2, -invSqrt2},
	UpRight:   {invSqrt2, -invSqrt2},
	DownLeft:  {-invSqrt2, invSqrt2},
	DownRight: {invSqrt2, invSqrt2},
}

// Valid reports whether d is one of the eight named directions.
func (d Direction) Valid() bool {
	return d <= DownRight
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Vector returns the unit vector for the direction. Diagonal directions are
// normalized so every direction has length 1.
func (d Direction) Vector() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionVectors[d]
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Cardinal reports whether d is one of the four axis-aligned directions.
func (d Direction) Cardinal() bool {
	return d.Horizontal() || d.Vertical()
}

// Times returns an Offset of the given magnitude in this direction.
func (d Direction) Times(gap float64) Offset {
	return Offset{Dir: d, Gap: gap}
}

// ParseDirection returns the Direction named by s ("up", "down-right", ...).
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if s == name {
			return Direction(d), nil
		}
	}
	return 0, &DirectionError{Name: s}
}

// Offset is a direction with a magnitude, the declarative gap used by NextTo.
type Offset struct {
	Dir Direction
	Gap float64
}

// Vector returns the offset as a plain vector.
func (o Offset) Vector() Point {
	return o.Dir.Vector().Mul(o.Gap)
}

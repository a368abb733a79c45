package floe

// BorderPosition controls where a shape's border sits relative to its
// geometric rectangle. The shape's bounds grow to cover the border.
type BorderPosition uint8

const (
	// BorderCenter straddles the border on the rectangle edge.
	BorderCenter BorderPosition = iota
	// BorderInside keeps the border fully inside the rectangle.
	BorderInside
	// BorderOutside draws the border fully outside the rectangle.
	BorderOutside
)

// StrokeCap selects the shape of line endpoints.
type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// ShapeStyle is the closed style record for rectangles and ellipses.
// Nil Fill or Border means the corresponding pass is skipped.
type ShapeStyle struct {
	Fill            *Color
	Border          *Color
	BorderThickness float64
	BorderPosition  BorderPosition
	CornerRadius    float64
}

// Filled is a convenience constructor for a borderless filled shape.
func Filled(c Color) ShapeStyle {
	fill := c
	return ShapeStyle{Fill: &fill}
}

// Outlined is a convenience constructor for a fill-less bordered shape.
func Outlined(c Color, thickness float64) ShapeStyle {
	border := c
	return ShapeStyle{Border: &border, BorderThickness: thickness}
}

// PathStyle is the closed style record for lines and polylines.
type PathStyle struct {
	Color     Color
	Thickness float64
	Cap       StrokeCap
}

// FontStyle is the closed style record for text. Family is an adapter hint;
// the core measures text with a deterministic reference face so layout does
// not depend on installed fonts.
type FontStyle struct {
	Family string
	Size   float64
	Color  Color
}

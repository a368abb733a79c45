package floe

// NewBlank creates an expansive blank region filled with the background
// color, typically used as a canvas behind other nodes.
func NewBlank(b Bounds, background Color) (*Node, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &Node{kind: KindBlank, bounds: b, background: background}, nil
}

// NewRectangle creates a rectangle node. The given bounds are the geometric
// rectangle; the node's bounds grow to cover a border drawn at or outside
// the edge.
func NewRectangle(rect Bounds, style ShapeStyle) (*Node, error) {
	return newShape(KindRect, rect, style)
}

// NewEllipse creates an ellipse node inscribed in the given rectangle.
func NewEllipse(rect Bounds, style ShapeStyle) (*Node, error) {
	return newShape(KindEllipse, rect, style)
}

func newShape(kind Kind, rect Bounds, style ShapeStyle) (*Node, error) {
	if err := rect.validate(); err != nil {
		return nil, err
	}
	if err := validateShapeStyle(style); err != nil {
		return nil, err
	}
	style = copyShapeStyle(style)
	return &Node{
		kind:   kind,
		rect:   rect,
		shape:  style,
		bounds: shapeBounds(rect, style),
	}, nil
}

func validateShapeStyle(s ShapeStyle) error {
	if !isFinite(s.BorderThickness) || s.BorderThickness < 0 {
		return geometryErrorf("border thickness %g", s.BorderThickness)
	}
	if !isFinite(s.CornerRadius) || s.CornerRadius < 0 {
		return geometryErrorf("corner radius %g", s.CornerRadius)
	}
	return nil
}

// shapeBounds expands the geometric rectangle to cover the border overhang.
func shapeBounds(rect Bounds, style ShapeStyle) Bounds {
	if style.Border == nil || style.BorderThickness == 0 {
		return rect
	}
	switch style.BorderPosition {
	case BorderOutside:
		return rect.Inset(-style.BorderThickness, -style.BorderThickness)
	case BorderInside:
		return rect
	default: // BorderCenter
		return rect.Inset(-style.BorderThickness/2, -style.BorderThickness/2)
	}
}

// BorderRect returns the rectangle on which a shape's border stroke is
// centered, per the shape's BorderPosition. Renderers stroke this rectangle
// with the shape's border thickness.
func BorderRect(rect Bounds, style ShapeStyle) Bounds {
	t := style.BorderThickness
	switch style.BorderPosition {
	case BorderInside:
		return rect.Inset(t/2, t/2)
	case BorderOutside:
		return rect.Inset(-t/2, -t/2)
	default:
		return rect
	}
}

// NewLine creates a polyline node through the given points. At least two
// points are required.
func NewLine(points []Point, style PathStyle) (*Node, error) {
	return newPath(points, style, false, nil)
}

// NewPolygon creates a closed, filled polygon node. The outline is stroked
// with the given path style; pass a zero-thickness style for fill only.
func NewPolygon(points []Point, fill Color, style PathStyle) (*Node, error) {
	if len(points) < 3 {
		return nil, geometryErrorf("polygon needs at least 3 points, got %d", len(points))
	}
	f := fill
	return newPath(points, style, true, &f)
}

func newPath(points []Point, style PathStyle, closed bool, fill *Color) (*Node, error) {
	if len(points) < 2 {
		return nil, geometryErrorf("line needs at least 2 points, got %d", len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, geometryErrorf("non-finite point %v at index %d", p, i)
		}
	}
	if err := validatePathStyle(style); err != nil {
		return nil, err
	}
	path := make([]Point, len(points))
	copy(path, points)
	return &Node{
		kind:      KindLine,
		path:      path,
		pathStyle: style,
		closed:    closed,
		pathFill:  fill,
		bounds:    pathBounds(path, style.Thickness),
	}, nil
}

func validatePathStyle(s PathStyle) error {
	if !isFinite(s.Thickness) || s.Thickness < 0 {
		return geometryErrorf("stroke thickness %g", s.Thickness)
	}
	return nil
}

// pathBounds is the point bounding box grown by half the stroke width on
// every side.
func pathBounds(points []Point, thickness float64) Bounds {
	b := BoundsFromPoints(points...)
	if thickness > 0 {
		b = b.Inset(-thickness/2, -thickness/2)
	}
	return b
}

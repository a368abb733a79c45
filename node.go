package floe

import "fmt"

// Kind discriminates the node payload. A single flat struct is used for all
// node kinds to keep structural diffing and interpolation simple.
type Kind uint8

const (
	KindBlank Kind = iota
	KindRect
	KindEllipse
	KindLine
	KindText
	KindGroup
)

var kindNames = [...]string{
	KindBlank:   "blank",
	KindRect:    "rect",
	KindEllipse: "ellipse",
	KindLine:    "line",
	KindText:    "text",
	KindGroup:   "group",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Alignment selects how arranged children line up on the axis perpendicular
// to the arrangement direction.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Node is the fundamental composable unit: an immutable value with local
// bounds, an offset in its parent's frame, and zero or more children. Nodes
// are never mutated after construction; every "setter" returns a new node
// sharing unchanged substructure. Immutability makes trees safe to share
// across composites and across goroutines, and gives Tween exact boundary
// behavior.
type Node struct {
	kind   Kind
	bounds Bounds // local frame, includes border overhang for shapes
	offset Point  // position of the local frame in the parent frame

	children []*Node

	// Shape payload (KindRect, KindEllipse). rect is the geometric
	// rectangle before border adjustment; bounds derives from it.
	rect  Bounds
	shape ShapeStyle

	// Line payload (KindLine).
	path      []Point
	pathStyle PathStyle
	closed    bool
	pathFill  *Color // fill for closed paths (arrow heads, polygons)

	// Text payload (KindText).
	text string
	font FontStyle

	// Blank payload (KindBlank).
	background Color

	// Group metadata (KindGroup). Arranged composites record how they were
	// built so the layout intent survives diffing and inspection.
	arranged   bool
	arrangeDir Direction
	gap        float64
	align      Alignment

	// source links a copy back to the node it was derived from, so scope
	// and resolve lookups keyed on the caller's original still find it
	// after Move, Pad, NextTo and friends have produced copies. Not part
	// of the node's value: Equal ignores it.
	source *Node
}

// Kind returns the node's payload discriminator.
func (n *Node) Kind() Kind { return n.kind }

// Bounds returns the node's bounds in its parent's frame (local bounds
// shifted by the node's offset).
func (n *Node) Bounds() Bounds { return n.bounds.Translate(n.offset) }

// Offset returns the node's offset relative to the parent's origin.
func (n *Node) Offset() Point { return n.offset }

// Children returns the child list in paint order. The returned slice MUST
// NOT be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node { return n.children[index] }

// ShapeStyle returns the shape payload. Meaningful for rect and ellipse
// nodes only.
func (n *Node) ShapeStyle() ShapeStyle { return n.shape }

// Rect returns the geometric rectangle of a shape node, before border
// adjustment.
func (n *Node) Rect() Bounds { return n.rect }

// Points returns the polyline points of a line node in the local frame.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Points() []Point { return n.path }

// PathStyle returns the stroke style of a line node.
func (n *Node) PathStyle() PathStyle { return n.pathStyle }

// Closed reports whether a line node is a closed polygon.
func (n *Node) Closed() bool { return n.closed }

// PathFill returns the fill color of a closed line node, or nil.
func (n *Node) PathFill() *Color { return n.pathFill }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// FontStyle returns the font style of a text node.
func (n *Node) FontStyle() FontStyle { return n.font }

// BackgroundColor returns the fill color of a blank node.
func (n *Node) BackgroundColor() Color { return n.background }

// Arranged reports whether a group node was produced by Arrange, along with
// its direction, gap, and alignment metadata.
func (n *Node) Arranged() (ok bool, dir Direction, gap float64, align Alignment) {
	return n.arranged, n.arrangeDir, n.gap, n.align
}

// --- Copy-on-write ---

// clone returns a shallow copy with its own children and path slices. The
// children themselves are shared: they are immutable.
func (n *Node) clone() *Node {
	c := *n
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		copy(c.children, n.children)
	}
	if len(n.path) > 0 {
		c.path = make([]Point, len(n.path))
		copy(c.path, n.path)
	}
	c.source = n
	return &c
}

// shift returns a copy of the node with d added to its offset.
func (n *Node) shift(d Point) *Node {
	c := n.clone()
	c.offset = c.offset.Add(d)
	return c
}

// Move returns a new node offset by (dx, dy) relative to its current
// position. Panics on non-finite input.
func (n *Node) Move(dx, dy float64) *Node {
	d := Pt(dx, dy)
	if !d.IsFinite() {
		panic("floe: Move with non-finite offset")
	}
	return n.shift(d)
}

// MoveTo returns a new node whose bounds top-left sits at p in the parent
// frame.
func (n *Node) MoveTo(p Point) *Node {
	if !p.IsFinite() {
		panic("floe: MoveTo with non-finite point")
	}
	return n.shift(p.Sub(n.Bounds().TopLeftPoint()))
}

// WithShapeStyle returns a copy of a rect or ellipse node with a new style.
// The bounds are recomputed for the new border. Panics when called on a
// non-shape node.
func (n *Node) WithShapeStyle(s ShapeStyle) (*Node, error) {
	if n.kind != KindRect && n.kind != KindEllipse {
		panic("floe: WithShapeStyle on a " + n.kind.String() + " node")
	}
	if err := validateShapeStyle(s); err != nil {
		return nil, err
	}
	c := n.clone()
	c.shape = copyShapeStyle(s)
	c.bounds = shapeBounds(c.rect, c.shape)
	return c, nil
}

// WithPathStyle returns a copy of a line node with a new stroke style.
// Panics when called on a non-line node.
func (n *Node) WithPathStyle(s PathStyle) (*Node, error) {
	if n.kind != KindLine {
		panic("floe: WithPathStyle on a " + n.kind.String() + " node")
	}
	if err := validatePathStyle(s); err != nil {
		return nil, err
	}
	c := n.clone()
	c.pathStyle = s
	c.bounds = pathBounds(c.path, s.Thickness)
	return c, nil
}

// WithText returns a copy of a text node with new content, re-measured.
// Panics when called on a non-text node.
func (n *Node) WithText(content string) *Node {
	if n.kind != KindText {
		panic("floe: WithText on a " + n.kind.String() + " node")
	}
	c := n.clone()
	c.text = content
	c.bounds = measureText(content, c.font.Size)
	return c
}

// --- Structural equality ---

// Equal reports deep structural and value equality of two trees. Floats are
// compared exactly; Tween relies on this for its boundary laws.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.kind != o.kind ||
		n.bounds != o.bounds ||
		n.offset != o.offset ||
		n.rect != o.rect ||
		n.closed != o.closed ||
		n.text != o.text ||
		n.font != o.font ||
		n.background != o.background ||
		n.arranged != o.arranged ||
		n.arrangeDir != o.arrangeDir ||
		n.gap != o.gap ||
		n.align != o.align ||
		n.pathStyle != o.pathStyle {
		return false
	}
	if !colorPtrEqual(n.pathFill, o.pathFill) ||
		!shapeStyleEqual(n.shape, o.shape) {
		return false
	}
	if len(n.path) != len(o.path) {
		return false
	}
	for i := range n.path {
		if n.path[i] != o.path[i] {
			return false
		}
	}
	if len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func colorPtrEqual(a, b *Color) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func shapeStyleEqual(a, b ShapeStyle) bool {
	return colorPtrEqual(a.Fill, b.Fill) &&
		colorPtrEqual(a.Border, b.Border) &&
		a.BorderThickness == b.BorderThickness &&
		a.BorderPosition == b.BorderPosition &&
		a.CornerRadius == b.CornerRadius
}

// copyShapeStyle deep-copies the optional color pointers so callers cannot
// mutate a node's style through a retained pointer.
func copyShapeStyle(s ShapeStyle) ShapeStyle {
	if s.Fill != nil {
		fill := *s.Fill
		s.Fill = &fill
	}
	if s.Border != nil {
		border := *s.Border
		s.Border = &border
	}
	return s
}

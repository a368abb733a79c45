package floe

// Composition operators. Each builds a new group node from existing nodes
// without mutating them; inputs are shared, never copied, and placement is
// expressed through per-child offsets.

// group builds a composite with explicit bounds.
func group(bounds Bounds, children ...*Node) *Node {
	return &Node{kind: KindGroup, bounds: bounds, children: children}
}

// unionBounds returns the union of the children's parent-frame bounds.
func unionBounds(children []*Node) Bounds {
	if len(children) == 0 {
		return Bounds{}
	}
	b := children[0].Bounds()
	for _, c := range children[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}

// placeTopLeft returns a copy of n whose parent-frame top-left sits at p.
func placeTopLeft(n *Node, p Point) *Node {
	return n.shift(p.Sub(n.Bounds().TopLeftPoint()))
}

// Compose overlays the given nodes at a shared origin. The composite bounds
// are the union of all member bounds; paint order is input order. An empty
// call yields a zero-size group.
func Compose(nodes ...*Node) *Node {
	children := make([]*Node, len(nodes))
	copy(children, nodes)
	return group(unionBounds(children), children...)
}

// Anchor overlays the given nodes like Compose, but the composite bounds
// come from the node at anchorIndex alone; the other members may extend
// beyond them. Panics if anchorIndex is out of range.
func Anchor(anchorIndex int, nodes ...*Node) *Node {
	if anchorIndex < 0 || anchorIndex >= len(nodes) {
		panic("floe: anchor index out of range")
	}
	children := make([]*Node, len(nodes))
	copy(children, nodes)
	return group(children[anchorIndex].Bounds(), children...)
}

// Pad returns a composite whose bounds are n's bounds expanded by amount on
// all sides. The content keeps its position, so zero padding is a bounds
// identity.
func Pad(n *Node, amount float64) (*Node, error) {
	return PadEach(n, amount, amount, amount, amount)
}

// PadEach pads each side independently.
func PadEach(n *Node, left, top, right, bottom float64) (*Node, error) {
	for _, v := range [...]float64{left, top, right, bottom} {
		if !isFinite(v) || v < 0 {
			return nil, geometryErrorf("padding %g", v)
		}
	}
	return group(n.Bounds().Expand(left, top, right, bottom), n), nil
}

// Pad is the method form of the package-level Pad.
func (n *Node) Pad(amount float64) (*Node, error) {
	return Pad(n, amount)
}

// nextToCorners maps a direction to the pair of positions that touch when b
// is placed next to a: a's position first, b's second. Cardinal directions
// meet edge midpoints, so the perpendicular axis is center-aligned;
// diagonals meet opposing corners.
var nextToCorners = [...][2]Corner{
	Up:        {TopMiddle, BottomMiddle},
	Down:      {BottomMiddle, TopMiddle},
	Left:      {MiddleLeft, MiddleRight},
	Right:     {MiddleRight, MiddleLeft},
	UpLeft:    {TopLeft, BottomRight},
	UpRight:   {TopRight, BottomLeft},
	DownLeft:  {BottomLeft, TopRight},
	DownRight: {BottomRight, TopLeft},
}

// NextTo places b adjacent to a along the given offset's direction, with the
// offset's gap between them. The composite bounds are the union of a and the
// placed b.
func NextTo(a, b *Node, off Offset) (*Node, error) {
	if !off.Dir.Valid() {
		return nil, &DirectionError{Name: off.Dir.String()}
	}
	if !isFinite(off.Gap) {
		return nil, geometryErrorf("gap %g", off.Gap)
	}
	corners := nextToCorners[off.Dir]
	return Align(a, b, corners[0], corners[1], off.Vector())
}

// NextTo is the method form of the package-level NextTo.
func (n *Node) NextTo(other *Node, off Offset) (*Node, error) {
	return NextTo(n, other, off)
}

// Align composes child over anchor so that the named positions coincide,
// then shifts child by extra. This is the general primitive behind NextTo.
func Align(anchor, child *Node, anchorCorner, childCorner Corner, extra Point) (*Node, error) {
	ap, err := anchor.Bounds().Corner(anchorCorner)
	if err != nil {
		return nil, err
	}
	cp, err := child.Bounds().Corner(childCorner)
	if err != nil {
		return nil, err
	}
	if !extra.IsFinite() {
		return nil, geometryErrorf("alignment offset %v", extra)
	}
	placed := child.shift(ap.Sub(cp).Add(extra))
	return group(anchor.Bounds().Union(placed.Bounds()), anchor, placed), nil
}

// CenterTo places content so its center coincides with container's center.
// The composite bounds equal container's bounds; content may overflow them,
// which is not an error.
func CenterTo(container, content *Node) *Node {
	d := container.Bounds().CenterPoint().Sub(content.Bounds().CenterPoint())
	return group(container.Bounds(), container, content.shift(d))
}

// AddCentered is the method form of CenterTo.
func (n *Node) AddCentered(content *Node) *Node {
	return CenterTo(n, content)
}

// Arrange lays out children sequentially along a cardinal direction,
// inserting gap between consecutive children and aligning them on the
// perpendicular axis. Input order is significant and preserved. An empty
// child list yields a zero-size arranged group at the origin; this is a
// valid degenerate composite, not an error.
func Arrange(children []*Node, dir Direction, gap float64, align Alignment) (*Node, error) {
	if !dir.Valid() || !dir.Cardinal() {
		return nil, &DirectionError{Name: dir.String()}
	}
	if !isFinite(gap) || gap < 0 {
		return nil, geometryErrorf("gap %g", gap)
	}

	n := &Node{
		kind:       KindGroup,
		arranged:   true,
		arrangeDir: dir,
		gap:        gap,
		align:      align,
	}
	if len(children) == 0 {
		return n, nil
	}

	// Maximum extent on the perpendicular axis, for alignment.
	var maxPerp float64
	for _, c := range children {
		size := c.Bounds().Size()
		perp := size.Y
		if dir.Vertical() {
			perp = size.X
		}
		if perp > maxPerp {
			maxPerp = perp
		}
	}

	placed := make([]*Node, len(children))
	var cursor float64
	for i, c := range children {
		size := c.Bounds().Size()
		primary, perp := size.X, size.Y
		if dir.Vertical() {
			primary, perp = size.Y, size.X
		}

		var cross float64
		switch align {
		case AlignCenter:
			cross = (maxPerp - perp) / 2
		case AlignEnd:
			cross = maxPerp - perp
		}

		// Walk backwards for Left/Up so the i-th child always lies further
		// along the arrangement direction than the (i-1)-th.
		pos := cursor
		if dir == Left || dir == Up {
			pos = -cursor - primary
		}

		topLeft := Pt(pos, cross)
		if dir.Vertical() {
			topLeft = Pt(cross, pos)
		}
		placed[i] = placeTopLeft(c, topLeft)
		cursor += primary + gap
	}

	n.children = placed
	n.bounds = unionBounds(placed)
	return n, nil
}

// AnchorAt returns a copy of n moved so the named position of its bounds
// sits at the origin.
func (n *Node) AnchorAt(c Corner) (*Node, error) {
	p, err := n.Bounds().Corner(c)
	if err != nil {
		return nil, err
	}
	return n.shift(p.Neg()), nil
}

// Background composes n over a blank of the same bounds filled with the
// given color.
func (n *Node) Background(c Color) *Node {
	bg := &Node{kind: KindBlank, bounds: n.Bounds(), background: c}
	return group(n.Bounds(), bg, n)
}

// Crop returns a composite clipped to the given bounds: the composite
// reports exactly b as its bounds while n keeps its position. Content
// outside b is left to the renderer to clip.
func (n *Node) Crop(b Bounds) (*Node, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	blank := &Node{kind: KindBlank, bounds: b, background: Transparent}
	return Anchor(0, blank, n), nil
}

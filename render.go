package floe

// Op identifies a draw command's operation.
type Op uint8

const (
	// OpFill fills a rectangular region (blank nodes).
	OpFill Op = iota
	// OpRect draws a rectangle with optional fill, border, and rounding.
	OpRect
	// OpEllipse draws an ellipse inscribed in Rect.
	OpEllipse
	// OpPath strokes (and optionally fills, when closed) a polyline.
	OpPath
	// OpText draws a text run inside Bounds.
	OpText
)

// DrawCommand is one absolute-coordinate drawing instruction. Which fields
// are meaningful depends on Op. All geometry is finite; the core validates
// at construction, so adapters never see NaN or negative sizes.
type DrawCommand struct {
	Op     Op
	Bounds Bounds // absolute node bounds, all ops

	Rect  Bounds     // OpRect, OpEllipse: geometric rectangle
	Shape ShapeStyle // OpRect, OpEllipse

	Points []Point   // OpPath: absolute points
	Path   PathStyle // OpPath
	Closed bool      // OpPath
	Fill   *Color    // OpPath: polygon fill, or nil

	Text string    // OpText
	Font FontStyle // OpText

	Background Color // OpFill
}

// DrawList is the render boundary: the ordered commands for one scene plus
// the canvas size. Adapters consume it back to front (slice order).
type DrawList struct {
	Size     Point
	Commands []DrawCommand
}

// Renderer consumes draw lists and produces pixels or a vector document.
// Implementations live outside the core; see the raster and ebitengine
// packages.
type Renderer interface {
	Draw(DrawList) error
}

// Render flattens a scene into an ordered draw-command list with absolute
// coordinates. Groups contribute ordering only; leaves contribute commands.
// The walk is pure: rendering the same scene twice yields equal lists.
func Render(scene Scene) (DrawList, error) {
	if scene.Root == nil {
		panic("floe: Render with nil root")
	}
	if !scene.Origin.IsFinite() || !scene.Size.IsFinite() {
		return DrawList{}, geometryErrorf("scene origin %v size %v", scene.Origin, scene.Size)
	}

	resolved := Resolve(scene.Root, scene.Origin)
	list := DrawList{Size: scene.Size}
	for _, p := range resolved.Nodes() {
		cmd, ok, err := command(p)
		if err != nil {
			return DrawList{}, err
		}
		if ok {
			list.Commands = append(list.Commands, cmd)
		}
	}
	return list, nil
}

func command(p Placed) (DrawCommand, bool, error) {
	n := p.Node
	if !p.Bounds.IsFinite() {
		return DrawCommand{}, false, geometryErrorf("non-finite bounds for %s node", n.kind)
	}
	switch n.kind {
	case KindGroup:
		return DrawCommand{}, false, nil
	case KindBlank:
		return DrawCommand{
			Op:         OpFill,
			Bounds:     p.Bounds,
			Background: n.background,
		}, true, nil
	case KindRect, KindEllipse:
		op := OpRect
		if n.kind == KindEllipse {
			op = OpEllipse
		}
		return DrawCommand{
			Op:     op,
			Bounds: p.Bounds,
			Rect:   n.rect.Translate(p.Frame),
			Shape:  n.shape,
		}, true, nil
	case KindLine:
		points := make([]Point, len(n.path))
		for i, pt := range n.path {
			points[i] = pt.Add(p.Frame)
		}
		return DrawCommand{
			Op:     OpPath,
			Bounds: p.Bounds,
			Points: points,
			Path:   n.pathStyle,
			Closed: n.closed,
			Fill:   n.pathFill,
		}, true, nil
	case KindText:
		return DrawCommand{
			Op:     OpText,
			Bounds: p.Bounds,
			Text:   n.text,
			Font:   n.font,
		}, true, nil
	default:
		return DrawCommand{}, false, geometryErrorf("unknown node kind %s", n.kind)
	}
}

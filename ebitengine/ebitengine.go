// Package ebitengine replays floe draw lists onto an Ebitengine image, for
// embedding diagrams and diagram animations in a game or interactive tool.
//
// All geometry is drawn as triangle meshes over a shared 1x1 white pixel;
// text uses the same fixed reference face the core measures with, scaled to
// the requested size, unless a Face is supplied.
package ebitengine

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/floekit/floe"
)

// referenceFaceHeight matches the core's text measurement face.
const referenceFaceHeight = 13

// ellipseSegments is the polygon resolution used for ellipses and round caps.
const ellipseSegments = 64

// Renderer draws onto Target. The zero value is not usable; set Target
// before calling Draw. Face, when non-nil, replaces the scaled reference
// face for text commands.
type Renderer struct {
	Target *ebiten.Image
	Face   text.Face
}

// Draw replays the list onto the renderer's target image.
func (r *Renderer) Draw(list floe.DrawList) error {
	if r.Target == nil {
		panic("ebitengine: Renderer with nil Target")
	}
	for _, cmd := range list.Commands {
		r.command(cmd)
	}
	return nil
}

// Draw replays a draw list onto dst with default settings.
func Draw(dst *ebiten.Image, list floe.DrawList) {
	r := Renderer{Target: dst}
	r.Draw(list)
}

func (r *Renderer) command(cmd floe.DrawCommand) {
	dst := r.Target
	switch cmd.Op {
	case floe.OpFill:
		fillPolygon(dst, rectPoints(cmd.Bounds), cmd.Background)

	case floe.OpRect:
		if cmd.Shape.Fill != nil {
			fillPolygon(dst, roundedRectPoints(cmd.Rect, cmd.Shape.CornerRadius), *cmd.Shape.Fill)
		}
		if cmd.Shape.Border != nil && cmd.Shape.BorderThickness > 0 {
			outline := roundedRectPoints(floe.BorderRect(cmd.Rect, cmd.Shape), cmd.Shape.CornerRadius)
			strokePolyline(dst, outline, true, cmd.Shape.BorderThickness, floe.CapButt, *cmd.Shape.Border)
		}

	case floe.OpEllipse:
		if cmd.Shape.Fill != nil {
			fillPolygon(dst, ellipsePoints(cmd.Rect), *cmd.Shape.Fill)
		}
		if cmd.Shape.Border != nil && cmd.Shape.BorderThickness > 0 {
			outline := ellipsePoints(floe.BorderRect(cmd.Rect, cmd.Shape))
			strokePolyline(dst, outline, true, cmd.Shape.BorderThickness, floe.CapButt, *cmd.Shape.Border)
		}

	case floe.OpPath:
		if cmd.Fill != nil {
			fillPolygon(dst, cmd.Points, *cmd.Fill)
		}
		if cmd.Path.Thickness > 0 {
			strokePolyline(dst, cmd.Points, cmd.Closed, cmd.Path.Thickness, cmd.Path.Cap, cmd.Path.Color)
		}

	case floe.OpText:
		r.drawText(cmd)
	}
}

func (r *Renderer) drawText(cmd floe.DrawCommand) {
	op := &text.DrawOptions{}
	face := r.Face
	if face == nil {
		face = text.NewGoXFace(basicfont.Face7x13)
		s := cmd.Font.Size / referenceFaceHeight
		op.GeoM.Scale(s, s)
	}
	op.GeoM.Translate(cmd.Bounds.X, cmd.Bounds.Y)
	op.ColorScale.ScaleWithColor(cmd.Font.Color.NRGBA())
	text.Draw(r.Target, cmd.Text, face, op)
}

// --- Mesh construction ---

// whitePixelImage backs all untextured triangles (no sync.Once; draw lists
// are replayed from the game loop's single goroutine).
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// fillPolygon fan-triangulates the polygon from its first vertex and draws
// it in a single color. Concave polygons fill approximately, like any fan.
func fillPolygon(dst *ebiten.Image, points []floe.Point, c floe.Color) {
	n := len(points)
	if n < 3 {
		return
	}
	verts := make([]ebiten.Vertex, n)
	for i, p := range points {
		verts[i] = colorVertex(p, c)
	}
	inds := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// strokePolyline draws each segment as a quad of the given thickness, with
// round joints between segments and cap treatment at open endpoints.
func strokePolyline(dst *ebiten.Image, points []floe.Point, closed bool, thickness float64, lineCap floe.StrokeCap, c floe.Color) {
	n := len(points)
	if n < 2 || thickness <= 0 {
		return
	}

	segments := n - 1
	if closed {
		segments = n
	}
	half := thickness / 2

	for i := 0; i < segments; i++ {
		a := points[i]
		b := points[(i+1)%n]
		dir := b.Sub(a)
		if dir.Length() == 0 {
			continue
		}
		dir = dir.Normalize()

		if !closed && lineCap == floe.CapSquare {
			if i == 0 {
				a = a.Sub(dir.Mul(half))
			}
			if i == segments-1 {
				b = b.Add(dir.Mul(half))
			}
		}

		perp := floe.Pt(-dir.Y, dir.X).Mul(half)
		fillPolygon(dst, []floe.Point{
			a.Add(perp), b.Add(perp), b.Sub(perp), a.Sub(perp),
		}, c)
	}

	// Round discs hide the seams at interior joints; with round caps they
	// cover the endpoints too.
	for i, p := range points {
		interior := closed || (i > 0 && i < n-1)
		if interior || lineCap == floe.CapRound {
			fillPolygon(dst, discPoints(p, half), c)
		}
	}
}

func colorVertex(p floe.Point, c floe.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0,
		SrcY:   0,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}

// --- Outline geometry ---

func rectPoints(b floe.Bounds) []floe.Point {
	return []floe.Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
	}
}

// roundedRectPoints traces the rectangle outline clockwise, replacing each
// corner with a quarter arc when radius is positive.
func roundedRectPoints(b floe.Bounds, radius float64) []floe.Point {
	if radius <= 0 {
		return rectPoints(b)
	}
	if limit := math.Min(b.W, b.H) / 2; radius > limit {
		radius = limit
	}

	centers := []floe.Point{
		{X: b.X + radius, Y: b.Y + radius},
		{X: b.X + b.W - radius, Y: b.Y + radius},
		{X: b.X + b.W - radius, Y: b.Y + b.H - radius},
		{X: b.X + radius, Y: b.Y + b.H - radius},
	}
	starts := []float64{math.Pi, 1.5 * math.Pi, 0, 0.5 * math.Pi}

	const cornerSegments = 8
	points := make([]floe.Point, 0, 4*(cornerSegments+1))
	for corner := range centers {
		for s := 0; s <= cornerSegments; s++ {
			angle := starts[corner] + 0.5*math.Pi*float64(s)/cornerSegments
			points = append(points, floe.Pt(
				centers[corner].X+radius*math.Cos(angle),
				centers[corner].Y+radius*math.Sin(angle),
			))
		}
	}
	return points
}

func ellipsePoints(b floe.Bounds) []floe.Point {
	center := b.CenterPoint()
	points := make([]floe.Point, ellipseSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / ellipseSegments
		points[i] = floe.Pt(
			center.X+b.W/2*math.Cos(angle),
			center.Y+b.H/2*math.Sin(angle),
		)
	}
	return points
}

func discPoints(center floe.Point, radius float64) []floe.Point {
	return ellipsePoints(floe.Bounds{
		X: center.X - radius,
		Y: center.Y - radius,
		W: 2 * radius,
		H: 2 * radius,
	})
}

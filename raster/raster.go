// Package raster rasterizes floe scenes to images, PNG files, and animated
// GIFs using the gg drawing context.
package raster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"

	"github.com/floekit/floe"
	"github.com/fogleman/gg"
)

// Renderer rasterizes draw lists. The zero value renders at one pixel per
// scene unit with the built-in bitmap face; set Scale for higher resolution
// and FontPath to a TTF file for proper text.
type Renderer struct {
	Scale    float64
	FontPath string

	img image.Image
}

// Draw rasterizes the list. The result is available from Image until the
// next Draw.
func (r *Renderer) Draw(list floe.DrawList) error {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(list.Size.X * scale))
	h := int(math.Ceil(list.Size.Y * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	for _, cmd := range list.Commands {
		if err := r.command(dc, cmd); err != nil {
			return err
		}
	}
	r.img = dc.Image()
	return nil
}

// Image returns the most recently drawn image, or nil.
func (r *Renderer) Image() image.Image { return r.img }

func (r *Renderer) command(dc *gg.Context, cmd floe.DrawCommand) error {
	switch cmd.Op {
	case floe.OpFill:
		dc.SetColor(cmd.Background.NRGBA())
		rect(dc, cmd.Bounds, 0)
		dc.Fill()

	case floe.OpRect:
		if cmd.Shape.Fill != nil {
			dc.SetColor(cmd.Shape.Fill.NRGBA())
			rect(dc, cmd.Rect, cmd.Shape.CornerRadius)
			dc.Fill()
		}
		if cmd.Shape.Border != nil && cmd.Shape.BorderThickness > 0 {
			dc.SetColor(cmd.Shape.Border.NRGBA())
			dc.SetLineWidth(cmd.Shape.BorderThickness)
			rect(dc, floe.BorderRect(cmd.Rect, cmd.Shape), cmd.Shape.CornerRadius)
			dc.Stroke()
		}

	case floe.OpEllipse:
		center := cmd.Rect.CenterPoint()
		if cmd.Shape.Fill != nil {
			dc.SetColor(cmd.Shape.Fill.NRGBA())
			dc.DrawEllipse(center.X, center.Y, cmd.Rect.W/2, cmd.Rect.H/2)
			dc.Fill()
		}
		if cmd.Shape.Border != nil && cmd.Shape.BorderThickness > 0 {
			b := floe.BorderRect(cmd.Rect, cmd.Shape)
			dc.SetColor(cmd.Shape.Border.NRGBA())
			dc.SetLineWidth(cmd.Shape.BorderThickness)
			dc.DrawEllipse(center.X, center.Y, b.W/2, b.H/2)
			dc.Stroke()
		}

	case floe.OpPath:
		dc.NewSubPath()
		dc.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
		for _, p := range cmd.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if cmd.Closed {
			dc.ClosePath()
		}
		if cmd.Fill != nil {
			dc.SetColor(cmd.Fill.NRGBA())
			if cmd.Path.Thickness > 0 {
				dc.FillPreserve()
			} else {
				dc.Fill()
			}
		}
		if cmd.Path.Thickness > 0 {
			dc.SetColor(cmd.Path.Color.NRGBA())
			dc.SetLineWidth(cmd.Path.Thickness)
			dc.SetLineCap(lineCap(cmd.Path.Cap))
			dc.Stroke()
		}
		dc.ClearPath()

	case floe.OpText:
		if r.FontPath != "" {
			if err := dc.LoadFontFace(r.FontPath, cmd.Font.Size); err != nil {
				return fmt.Errorf("raster: load font %s: %w", r.FontPath, err)
			}
		}
		dc.SetColor(cmd.Font.Color.NRGBA())
		dc.DrawString(cmd.Text, cmd.Bounds.X, cmd.Bounds.Y+cmd.Bounds.H)

	default:
		return fmt.Errorf("raster: unsupported draw op %d", cmd.Op)
	}
	return nil
}

func rect(dc *gg.Context, b floe.Bounds, radius float64) {
	if radius > 0 {
		dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, radius)
		return
	}
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
}

func lineCap(c floe.StrokeCap) gg.LineCap {
	switch c {
	case floe.CapRound:
		return gg.LineCapRound
	case floe.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// Image renders a scene to an image with default settings.
func Image(scene floe.Scene) (image.Image, error) {
	list, err := floe.Render(scene)
	if err != nil {
		return nil, err
	}
	var r Renderer
	if err := r.Draw(list); err != nil {
		return nil, err
	}
	return r.Image(), nil
}

// SavePNG renders a scene and writes it to path as a PNG.
func SavePNG(scene floe.Scene, path string) error {
	img, err := Image(scene)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// SaveGIF samples an animation at the given frame rate and writes it to
// path as a looping GIF. Every frame is quantized to the Plan 9 palette.
func SaveGIF(anim floe.Animation, path string, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("raster: fps %d", fps)
	}
	frames := anim.Frames(fps)
	if len(frames) == 0 {
		return fmt.Errorf("raster: animation has no frames")
	}

	// All frames share one canvas covering every sampled frame, so moving
	// content does not change the GIF geometry mid-animation.
	canvas := frames[0].Bounds()
	for _, frame := range frames[1:] {
		canvas = canvas.Union(frame.Bounds())
	}
	origin := floe.Pt(-canvas.X, -canvas.Y)
	size := canvas.Size()

	out := &gif.GIF{}
	// GIF delays are whole hundredths of a second. Accumulate the exact
	// per-frame duration and emit the rounded difference each frame, so
	// the total stays on schedule at any fps (100/30 would truncate to 3,
	// and anything above 100 fps to 0).
	step := 100 / float64(fps)
	elapsed, emitted := 0.0, 0
	for _, frame := range frames {
		img, err := Image(floe.Scene{Root: frame, Origin: origin, Size: size})
		if err != nil {
			return err
		}
		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
		elapsed += step
		delay := int(elapsed+0.5) - emitted
		emitted += delay
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package floe

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// referenceFaceHeight is the pixel height of the reference measuring face.
const referenceFaceHeight = 13

// NewText creates a text node. The node's width comes from a deterministic
// measurement of the content against a reference bitmap face scaled to the
// style size; the height equals the font size. Adapters may substitute any
// face for output, the layout stays stable.
func NewText(content string, style FontStyle) (*Node, error) {
	if !isFinite(style.Size) || style.Size <= 0 {
		return nil, geometryErrorf("font size %g", style.Size)
	}
	return &Node{
		kind:   KindText,
		text:   content,
		font:   style,
		bounds: measureText(content, style.Size),
	}, nil
}

// measureText returns origin-anchored bounds for the content at the given
// size. Advances come from the fixed reference face and scale linearly.
func measureText(content string, size float64) Bounds {
	adv := font.MeasureString(basicfont.Face7x13, content)
	w := float64(adv) / 64 * size / referenceFaceHeight
	return Bounds{W: w, H: size}
}

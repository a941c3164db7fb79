package pict

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OpLabel draws a short text label in a palette color using the fixed-cell
// 7x13 bitmap face. X, Y position the baseline origin of the first glyph.
//
// The face is a binary bitmap: glyph pixels are fully opaque, everything
// else is left untouched, so labels follow the same overwrite-only drawing
// model as the geometric ops.
type OpLabel struct {
	X, Y int
	Text string
	Role Role
}

func (op OpLabel) apply(c *Canvas, p Palette) {
	d := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(p.Color(op.Role).NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(op.X, op.Y),
	}
	d.DrawString(op.Text)
}

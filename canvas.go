package pict

import (
	"errors"
	"image"
	"image/color"
)

// Canvas errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pict: invalid dimensions")
)

// Canvas is a rectangular RGBA pixel buffer that draw operations mutate in
// place. The buffer length is exactly Width*Height*4 bytes and starts out
// zeroed (transparent black).
//
// All drawing is order-dependent and non-blending: a later call fully
// overwrites the color and alpha of previously written pixels in the region
// it touches. Writes outside the canvas bounds are silently discarded.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a canvas with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is non-positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format, row-major).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel writes one pixel if (x, y) lies within the canvas; otherwise it
// is a no-op. No error is reported for out-of-range coordinates — this is
// the clipping policy, not a failure.
func (c *Canvas) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = r
	c.data[i+1] = g
	c.data[i+2] = b
	c.data[i+3] = a
}

// GetPixel returns the channels of a single pixel, or zeros outside the
// canvas.
func (c *Canvas) GetPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, 0, 0, 0
	}
	i := (y*c.width + x) * 4
	return c.data[i+0], c.data[i+1], c.data[i+2], c.data[i+3]
}

// Clear fills the entire canvas with an opaque color.
func (c *Canvas) Clear(col Color) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = 255
	}
}

// FillSpan fills the horizontal run [x1, x2) on row y with an opaque color,
// clipped to the canvas.
func (c *Canvas) FillSpan(x1, x2, y int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > c.width {
		x2 = c.width
	}
	for x := x1; x < x2; x++ {
		i := (y*c.width + x) * 4
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = 255
	}
}

// FillRect fills the axis-aligned box of size w×h anchored at (x, y) with an
// opaque color. Non-positive w or h writes nothing; pixels outside the
// canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		c.FillSpan(x, x+w, row, col)
	}
}

// FillCircle fills the disc of radius r centered at (cx, cy): every integer
// point in the bounding square whose squared distance to the center is at
// most r² (inclusive). r = 0 writes exactly the center pixel; negative r
// writes nothing. Edges are aliased.
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	if r < 0 {
		return
	}
	rr := r * r
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= rr {
				c.SetPixel(x, y, col.R, col.G, col.B, 255)
			}
		}
	}
}

// FillRoundRect fills a w×h rectangle anchored at (x, y) whose corners are
// rounded with radius r. The shape is composed from five band fills plus
// four corner discs; the far-edge disc centers sit at x+w-1-r and y+h-1-r so
// that opposite corner discs do not overlap when w or h equals 2r.
//
// Behavior for r greater than w/2 or h/2 is not guarded and is the caller's
// responsibility. r <= 0 degenerates to FillRect.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if r <= 0 {
		c.FillRect(x, y, w, h, col)
		return
	}

	c.FillRect(x+r, y, w-2*r, r, col)       // top band
	c.FillRect(x+r, y+h-r, w-2*r, r, col)   // bottom band
	c.FillRect(x, y+r, r, h-2*r, col)       // left band
	c.FillRect(x+w-r, y+r, r, h-2*r, col)   // right band
	c.FillRect(x+r, y+r, w-2*r, h-2*r, col) // center

	left, top := x+r, y+r
	right, bottom := x+w-1-r, y+h-1-r
	c.FillCircle(left, top, r, col)
	c.FillCircle(right, top, r, col)
	c.FillCircle(left, bottom, r, col)
	c.FillCircle(right, bottom, r, col)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	r, g, b, a := c.GetPixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface, converting col through the
// canvas color model. Out-of-range coordinates are discarded like SetPixel.
func (c *Canvas) Set(x, y int, col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.SetPixel(x, y, n.R, n.G, n.B, n.A)
}

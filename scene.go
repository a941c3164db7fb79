package pict

import "errors"

// Scene errors.
var (
	// ErrNilOp is returned when a scene contains a nil operation.
	ErrNilOp = errors.New("pict: nil scene op")
)

// Op is a single recorded draw operation. Ops are plain values; a scene is
// an ordered slice of them, played back onto a canvas in sequence. Each op
// fully overwrites the pixels it touches.
type Op interface {
	apply(c *Canvas, p Palette)
}

// OpRect fills an axis-aligned rectangle in a palette color.
type OpRect struct {
	X, Y, W, H int
	Role       Role
}

func (op OpRect) apply(c *Canvas, p Palette) {
	c.FillRect(op.X, op.Y, op.W, op.H, p.Color(op.Role))
}

// OpCircle fills a disc in a palette color.
type OpCircle struct {
	X, Y, R int
	Role    Role
}

func (op OpCircle) apply(c *Canvas, p Palette) {
	c.FillCircle(op.X, op.Y, op.R, p.Color(op.Role))
}

// OpRoundRect fills a rounded rectangle in a palette color.
type OpRoundRect struct {
	X, Y, W, H, R int
	Role          Role
}

func (op OpRoundRect) apply(c *Canvas, p Palette) {
	c.FillRoundRect(op.X, op.Y, op.W, op.H, op.R, p.Color(op.Role))
}

// OpPixel writes a single pixel with explicit channel values, bypassing the
// palette. Out-of-range coordinates are silently discarded.
type OpPixel struct {
	X, Y       int
	R, G, B, A uint8
}

func (op OpPixel) apply(c *Canvas, _ Palette) {
	c.SetPixel(op.X, op.Y, op.R, op.G, op.B, op.A)
}

// Config describes one rendering run: canvas size, palette, and the ordered
// scene. A Config is a plain value; rendering it never mutates it, and
// repeated renders of the same Config produce identical canvases.
type Config struct {
	Width   int
	Height  int
	Palette Palette
	Scene   []Op
}

// Validate checks the configuration without drawing anything.
// It reports ErrInvalidDimensions for a non-positive canvas size and
// ErrNilOp if the scene contains a nil operation.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrInvalidDimensions
	}
	for _, op := range cfg.Scene {
		if op == nil {
			return ErrNilOp
		}
	}
	return nil
}

// Render validates the configuration, allocates a fresh canvas, clears it to
// the background color, and plays the scene in order. Malformed
// configurations are rejected before any drawing occurs.
func (cfg Config) Render() (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	c.Clear(cfg.Palette.Background)

	for _, op := range cfg.Scene {
		op.apply(c, cfg.Palette)
	}

	Logger().Debug("scene rendered",
		"width", cfg.Width, "height", cfg.Height, "ops", len(cfg.Scene))
	return c, nil
}

// DefaultConfig returns the built-in 128×128 badge scene: a rounded card
// with a drop shadow, a concentric accent disc, an underline, and a label.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  128,
		Palette: DefaultPalette(),
		Scene: []Op{
			OpRoundRect{X: 14, Y: 16, W: 104, H: 104, R: 14, Role: RoleShadow},
			OpRoundRect{X: 10, Y: 10, W: 104, H: 104, R: 14, Role: RoleHighlight},
			OpCircle{X: 62, Y: 54, R: 30, Role: RoleAccent},
			OpCircle{X: 62, Y: 54, R: 20, Role: RoleHighlight},
			OpCircle{X: 62, Y: 54, R: 10, Role: RoleShadow},
			OpPixel{X: 50, Y: 42, R: 255, G: 255, B: 255, A: 255},
			OpRect{X: 26, Y: 92, W: 72, H: 4, Role: RoleAccent},
			OpLabel{X: 48, Y: 108, Text: "pict", Role: RoleShadow},
		},
	}
}

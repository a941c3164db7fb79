package pict

import "image/color"

// Color represents an opaque color with 8-bit red, green, and blue
// components. Alpha is implicitly 255 unless a draw operation specifies
// otherwise. Color values are immutable and safe to share.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NRGBA converts the color to the standard library representation with
// full alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
// Malformed input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Color{}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// Role selects a slot of a Palette. Scene operations reference roles rather
// than literal colors so that a whole scene can be recolored by swapping the
// palette.
type Role int

// Palette roles.
const (
	RoleBackground Role = iota
	RoleAccent
	RoleHighlight
	RoleShadow
)

// Palette holds the four colors a scene draws with.
type Palette struct {
	Background Color
	Accent     Color
	Highlight  Color
	Shadow     Color
}

// Color resolves a role to its palette color. Unknown roles resolve to the
// background color.
func (p Palette) Color(r Role) Color {
	switch r {
	case RoleAccent:
		return p.Accent
	case RoleHighlight:
		return p.Highlight
	case RoleShadow:
		return p.Shadow
	default:
		return p.Background
	}
}

// DefaultPalette returns the palette used by the built-in badge scene.
func DefaultPalette() Palette {
	return Palette{
		Background: Hex("1E2430"),
		Accent:     Hex("4FB3FF"),
		Highlight:  Hex("E8ECF4"),
		Shadow:     Hex("12161F"),
	}
}

// Package palette holds the gruvbox colors used by the arena.
package palette

import (
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex values of the gruvbox dark palette.
const (
	HexFG     = "#ebdbb2"
	HexBG     = "#282828"
	HexRed    = "#fb4934"
	HexGreen  = "#b8bb26"
	HexYellow = "#fabd2f"
	HexOrange = "#fe8019"
	HexBlue   = "#83a598"
	HexPurple = "#d3869b"
)

var (
	FG     = MustHex(HexFG)
	BG     = MustHex(HexBG)
	Red    = MustHex(HexRed)
	Green  = MustHex(HexGreen)
	Yellow = MustHex(HexYellow)
	Orange = MustHex(HexOrange)
	Blue   = MustHex(HexBlue)
	Purple = MustHex(HexPurple)

	// Shadow is black faded to 25%.
	Shadow = Fade(color.RGBA{0x00, 0x00, 0x00, 0xff}, 0.25)

	// Gray is the button fill base.
	Gray = color.RGBA{0x82, 0x82, 0x82, 0xff}
)

// Balls is the fixed set of fill colors a ball can spawn with.
var Balls = [6]color.RGBA{Red, Green, Yellow, Orange, Blue, Purple}

// Hex parses a "#rrggbb" string into an opaque color.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// MustHex is Hex for package-level constants.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		log.Fatalf("Could not create color from hex value '%s': %v", s, err)
	}
	return c
}

// Fade returns c with its alpha scaled by a (0..1), premultiplied.
func Fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

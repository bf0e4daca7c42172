package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ballpit/internal/palette"
)

// cursorOffset centers the "+" glyph on the pointer.
const cursorOffset = 7

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// Cursor is the "+" marker drawn in place of the hidden OS cursor.
type Cursor struct {
	Face       text.Face
	ShadowFace text.Face
	Color      color.Color
}

func (c Cursor) Draw(screen *ebiten.Image, x, y float64) {
	DrawText(screen, "+", c.ShadowFace, x-cursorOffset, y-cursorOffset, palette.Shadow)
	DrawText(screen, "+", c.Face, x-cursorOffset, y-cursorOffset, c.Color)
}

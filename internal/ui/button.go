// Package ui draws the overlay widgets: the button, text and cursor marker.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"ballpit/internal/input"
	"ballpit/internal/palette"
)

const (
	buttonPad    = 2.5
	hoverAlpha   = 0.3
	idleAlpha    = 0.5
	hoverFade    = 0.12 // seconds
	outlineWidth = 2
	outlineRound = 0.2
	fillRound    = 0.1
)

// Button is a text button with a rounded outline. Call Update once per tick
// and Draw once per frame.
type Button struct {
	X, Y  float64
	Label string
	Face  *text.GoTextFace
	Color color.Color

	hovered bool
	alpha   float64
	target  float64
	fade    *gween.Tween
}

func NewButton(x, y float64, label string, face *text.GoTextFace, clr color.Color) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Label:  label,
		Face:   face,
		Color:  clr,
		alpha:  idleAlpha,
		target: idleAlpha,
	}
}

// Rect is the label's size padded on every side.
func (b *Button) Rect() Rect {
	w := text.Advance(b.Label, b.Face)
	return Rect{
		X: b.X,
		Y: b.Y,
		W: w + 2*buttonPad,
		H: b.Face.Size + 2*buttonPad,
	}
}

// Update records hover state and reports whether the button was pressed
// this tick.
func (b *Button) Update(dt float64, p input.Pointer) bool {
	b.hovered = b.Rect().Contains(p.X, p.Y)

	target := idleAlpha
	if b.hovered {
		target = hoverAlpha
	}
	if target != b.target {
		b.target = target
		b.fade = gween.New(float32(b.alpha), float32(target), hoverFade, ease.OutQuad)
	}
	if b.fade != nil {
		v, done := b.fade.Update(float32(dt))
		b.alpha = float64(v)
		if done {
			b.alpha = b.target
			b.fade = nil
		}
	}

	return b.hovered && p.JustPressed
}

func (b *Button) Hovered() bool { return b.hovered }

// FillAlpha is the current opacity of the gray fill.
func (b *Button) FillAlpha() float64 { return b.alpha }

func (b *Button) Draw(screen *ebiten.Image) {
	r := b.Rect()
	StrokeRoundedRect(screen, r, outlineRound, outlineWidth, b.Color)
	FillRoundedRect(screen, r, fillRound, palette.Fade(palette.Gray, b.alpha))
	DrawText(screen, b.Label, b.Face, b.X+buttonPad, b.Y+2*buttonPad, b.Color)
}

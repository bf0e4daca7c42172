// Package input snapshots the per-tick pointer and keyboard edges the arena
// reacts to, so the simulation never talks to ebiten directly.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the cursor position plus the primary button press-edge.
type Pointer struct {
	X, Y        float64
	JustPressed bool
}

// Frame is everything read from the host for one tick.
type Frame struct {
	Pointer Pointer
	Escape  bool
}

// Poll reads the current ebiten input state.
func Poll() Frame {
	x, y := ebiten.CursorPosition()
	return Frame{
		Pointer: Pointer{
			X:           float64(x),
			Y:           float64(y),
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		},
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

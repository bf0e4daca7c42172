package entity

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ballpit/internal/input"
	"ballpit/internal/palette"
)

// Ball tuning
const (
	GrowRate     = 5.0  // radius gained per axis bounce
	LaunchShrink = 10.0 // radius lost when clicked
	MaxSpeed     = 400  // units per second
	MinSpeed     = -400 // units per second
	MinRadius    = 10
	MaxRadius    = 40
	ShadowOffset = 2.0
)

// ErrBallTooBig is returned by Step once a ball outgrows the window height.
// The run must not continue after it.
var ErrBallTooBig = errors.New("ball is too big")

// Bounds is the playfield size. Balls are kept in [r, W-r] x [r, H-r].
type Bounds struct {
	W, H float64
}

type Ball struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
	Color    color.RGBA
	Bounces  int // wall hits over the ball's lifetime
}

// Step advances the ball by dt seconds.
//
// Wall tests use the unclamped prospective position, so a bounce can fire one
// frame before the ball would actually touch the edge. Click launches test the
// pre-step position and override any bounce velocity from the same call.
func (b Ball) Step(dt float64, bounds Bounds, p input.Pointer) (Ball, error) {
	next := b.Position.Add(b.Velocity.Scale(dt))

	if next.X-b.Radius < 0 || next.X+b.Radius > bounds.W {
		b.Velocity.X *= -1
		b.Radius += GrowRate
		b.Bounces++
	}
	if next.Y-b.Radius < 0 || next.Y+b.Radius > bounds.H {
		b.Velocity.Y *= -1
		b.Radius += GrowRate
		b.Bounces++
	}

	if b.Radius > bounds.H {
		return b, fmt.Errorf("radius %.1f exceeds height %.0f: %w", b.Radius, bounds.H, ErrBallTooBig)
	}

	if p.JustPressed {
		mouse := Vec2{p.X, p.Y}
		if b.Position.Dist(mouse) < b.Radius {
			b.Velocity = b.Position.Sub(mouse).Normalize().Scale(MaxSpeed)
			b.Radius -= LaunchShrink
		}
	}

	b.Position = Vec2{
		X: math.Min(math.Max(next.X, b.Radius), bounds.W-b.Radius),
		Y: math.Min(math.Max(next.Y, b.Radius), bounds.H-b.Radius),
	}
	return b, nil
}

// Overlaps reports whether the two circles intersect.
func (b Ball) Overlaps(o Ball) bool {
	return b.Position.Dist(o.Position) < b.Radius+o.Radius
}

// SyncVelocity copies the velocity of every overlapping neighbour in snapshot
// onto b. The last overlapping neighbour wins. Neighbours sharing b's exact
// position are skipped, which also skips b itself.
func SyncVelocity(b Ball, snapshot []Ball) Ball {
	for _, other := range snapshot {
		if other.Position == b.Position {
			continue
		}
		if b.Overlaps(other) {
			b.Velocity = other.Velocity
		}
	}
	return b
}

// Draw renders a drop shadow and then the ball itself.
func (b Ball) Draw(screen *ebiten.Image) {
	x, y, r := float32(b.Position.X), float32(b.Position.Y), float32(b.Radius)
	vector.DrawFilledCircle(screen, x+ShadowOffset, y+ShadowOffset, r, palette.Shadow, true)
	vector.DrawFilledCircle(screen, x, y, r, b.Color, true)
}

package gamemode

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ballpit/internal/entity"
	"ballpit/internal/input"
)

const (
	SpawnInterval = 10.0 // seconds between automatic spawns
	InitialBalls  = 2
)

// ArenaOptions configures an Arena.
type ArenaOptions struct {
	Collide bool // copy velocities between overlapping balls
	Cap     int  // population cap, 0 = unbounded
}

// Arena owns the live ball collection and the run clock.
type Arena struct {
	Balls       []entity.Ball
	TimeElapsed float64
	SpawnTimer  float64
	Bounds      entity.Bounds

	opts    ArenaOptions
	rng     entity.Rand
	drawn   []entity.Ball // pre-step state of the last tick
	bounced int
}

// NewArena seeds a w x h arena with InitialBalls random balls.
func NewArena(rng entity.Rand, w, h float64, opts ArenaOptions) *Arena {
	a := &Arena{
		Bounds: entity.Bounds{W: w, H: h},
		opts:   opts,
		rng:    rng,
	}
	a.Balls = entity.SpawnRandomBalls(rng, InitialBalls, w, h)
	a.drawn = a.Balls
	return a
}

// Update runs one tick of dt seconds. A non-nil error is terminal.
func (a *Arena) Update(dt float64, p input.Pointer) error {
	a.TimeElapsed += dt
	a.SpawnTimer += dt

	if a.SpawnTimer > SpawnInterval {
		a.SpawnTimer = 0
		if a.opts.Cap <= 0 || len(a.Balls) < a.opts.Cap {
			a.Balls = append(a.Balls, entity.SpawnRandomBall(a.rng, a.Bounds.W, a.Bounds.H))
		}
	}

	// Every ball reads this copy, never the slice being built.
	snapshot := make([]entity.Ball, len(a.Balls))
	copy(snapshot, a.Balls)
	a.drawn = snapshot

	next := make([]entity.Ball, 0, len(snapshot))
	a.bounced = 0
	for _, b := range snapshot {
		if a.opts.Collide {
			b = entity.SyncVelocity(b, snapshot)
		}
		before := b.Bounces
		nb, err := b.Step(dt, a.Bounds, p)
		if err != nil {
			return err
		}
		a.bounced += nb.Bounces - before
		next = append(next, nb)
	}
	a.Balls = next
	return nil
}

// Bounced is the number of wall hits during the last Update.
func (a *Arena) Bounced() int {
	return a.bounced
}

// Draw renders the balls as they were before the last Update moved them.
func (a *Arena) Draw(screen *ebiten.Image) {
	for _, b := range a.drawn {
		b.Draw(screen)
	}
}

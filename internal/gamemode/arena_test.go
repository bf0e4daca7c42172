package gamemode

import (
	"errors"
	"math/rand/v2"
	"testing"

	"ballpit/internal/config"
	"ballpit/internal/entity"
	"ballpit/internal/input"
)

const tick = 1.0 / 60.0

func emptyArena(opts ArenaOptions) *Arena {
	return &Arena{
		Bounds: entity.Bounds{W: 800, H: 450},
		opts:   opts,
		rng:    rand.New(rand.NewPCG(5, 6)),
	}
}

func TestNewArenaSeedsInitialBalls(t *testing.T) {
	a := NewArena(rand.New(rand.NewPCG(1, 1)), 800, 450, ArenaOptions{})
	if len(a.Balls) != InitialBalls {
		t.Fatalf("len(Balls) = %d, want %d", len(a.Balls), InitialBalls)
	}
	if a.TimeElapsed != 0 || a.SpawnTimer != 0 {
		t.Error("clock should start at zero")
	}
}

func TestSpawnCadence(t *testing.T) {
	a := emptyArena(ArenaOptions{})

	for i := 0; i < 20; i++ {
		if err := a.Update(0.5, input.Pointer{}); err != nil {
			t.Fatal(err)
		}
	}
	if a.SpawnTimer != 10 {
		t.Fatalf("SpawnTimer = %v, want 10", a.SpawnTimer)
	}
	if len(a.Balls) != 0 {
		t.Fatalf("spawned at exactly the interval: len = %d", len(a.Balls))
	}

	if err := a.Update(0.5, input.Pointer{}); err != nil {
		t.Fatal(err)
	}
	if len(a.Balls) != 1 {
		t.Fatalf("len(Balls) = %d, want 1", len(a.Balls))
	}
	if a.SpawnTimer != 0 {
		t.Errorf("SpawnTimer = %v, want reset to 0", a.SpawnTimer)
	}
	if a.TimeElapsed != 10.5 {
		t.Errorf("TimeElapsed = %v, want 10.5", a.TimeElapsed)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	a := emptyArena(ArenaOptions{Cap: 1})
	a.Balls = []entity.Ball{{Position: entity.Vec2{X: 400, Y: 225}, Radius: 10}}

	a.SpawnTimer = SpawnInterval
	if err := a.Update(tick, input.Pointer{}); err != nil {
		t.Fatal(err)
	}
	if len(a.Balls) != 1 {
		t.Errorf("len(Balls) = %d, want cap of 1", len(a.Balls))
	}
	if a.SpawnTimer != 0 {
		t.Errorf("SpawnTimer = %v, want 0", a.SpawnTimer)
	}
}

func overlappingPair() []entity.Ball {
	return []entity.Ball{
		{Position: entity.Vec2{X: 100, Y: 100}, Velocity: entity.Vec2{X: 100}, Radius: 10},
		{Position: entity.Vec2{X: 110, Y: 100}, Velocity: entity.Vec2{Y: 100}, Radius: 10},
	}
}

func TestCollisionSyncToggle(t *testing.T) {
	tests := []struct {
		env  string
		want [2]entity.Vec2
	}{
		{"", [2]entity.Vec2{{X: 100}, {Y: 100}}},
		{"false", [2]entity.Vec2{{X: 100}, {Y: 100}}},
		{"true", [2]entity.Vec2{{Y: 100}, {X: 100}}},
	}
	for _, tt := range tests {
		t.Run("CIRCLE_COLLISION="+tt.env, func(t *testing.T) {
			t.Setenv(config.EnvCollision, tt.env)
			cfg := config.Load()

			a := emptyArena(ArenaOptions{Collide: cfg.Collision})
			a.Balls = overlappingPair()
			if err := a.Update(tick, input.Pointer{}); err != nil {
				t.Fatal(err)
			}
			for i, b := range a.Balls {
				if b.Velocity != tt.want[i] {
					t.Errorf("ball %d Velocity = %+v, want %+v", i, b.Velocity, tt.want[i])
				}
			}
		})
	}
}

func TestUpdateTooBigIsTerminal(t *testing.T) {
	a := emptyArena(ArenaOptions{})
	big := entity.Ball{Position: entity.Vec2{X: 400, Y: 225}, Radius: 451}
	a.Balls = []entity.Ball{big}

	err := a.Update(tick, input.Pointer{})
	if !errors.Is(err, entity.ErrBallTooBig) {
		t.Fatalf("err = %v, want ErrBallTooBig", err)
	}
	if a.Balls[0] != big {
		t.Error("failed tick must not commit ball state")
	}
}

func TestDrawLagsOneStep(t *testing.T) {
	a := emptyArena(ArenaOptions{})
	a.Balls = []entity.Ball{{Position: entity.Vec2{X: 400, Y: 225}, Velocity: entity.Vec2{X: 60}, Radius: 10}}

	if err := a.Update(0.5, input.Pointer{}); err != nil {
		t.Fatal(err)
	}
	if got := a.drawn[0].Position.X; got != 400 {
		t.Errorf("drawn X = %v, want pre-step 400", got)
	}
	if got := a.Balls[0].Position.X; got != 430 {
		t.Errorf("live X = %v, want 430", got)
	}
}

func TestBouncedCountsWallHits(t *testing.T) {
	a := emptyArena(ArenaOptions{})
	a.Balls = []entity.Ball{
		{Position: entity.Vec2{X: 15, Y: 15}, Velocity: entity.Vec2{X: -400, Y: -400}, Radius: 10},
		{Position: entity.Vec2{X: 400, Y: 225}, Velocity: entity.Vec2{X: 10}, Radius: 10},
	}
	if err := a.Update(tick, input.Pointer{}); err != nil {
		t.Fatal(err)
	}
	if a.Bounced() != 2 {
		t.Errorf("Bounced = %d, want 2", a.Bounced())
	}
	if err := a.Update(tick, input.Pointer{}); err != nil {
		t.Fatal(err)
	}
	if a.Bounced() != 0 {
		t.Errorf("Bounced = %d after a quiet tick, want 0", a.Bounced())
	}
}

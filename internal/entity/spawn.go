package entity

import "ballpit/internal/palette"

// Rand is the integer source used for spawning. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// SpawnRandomBall places a ball anywhere in the w x h field with a random
// velocity, radius and palette color.
func SpawnRandomBall(rng Rand, w, h float64) Ball {
	x := between(rng, 0, int(w))
	y := between(rng, 0, int(h))
	vx := between(rng, MinSpeed, MaxSpeed)
	vy := between(rng, MinSpeed, MaxSpeed)
	r := between(rng, MinRadius, MaxRadius)
	c := palette.Balls[between(rng, 0, len(palette.Balls)-1)]

	return Ball{
		Position: Vec2{float64(x), float64(y)},
		Velocity: Vec2{float64(vx), float64(vy)},
		Radius:   float64(r),
		Color:    c,
	}
}

// SpawnRandomBalls returns n independently spawned balls.
func SpawnRandomBalls(rng Rand, n int, w, h float64) []Ball {
	balls := make([]Ball, 0, n)
	for i := 0; i < n; i++ {
		balls = append(balls, SpawnRandomBall(rng, w, h))
	}
	return balls
}

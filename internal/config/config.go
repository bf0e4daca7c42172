// Package config reads the runtime toggles from the process environment.
// Missing or malformed values fall back to the defaults.
package config

import (
	"log"
	"os"
	"strconv"
)

const (
	EnvCollision = "CIRCLE_COLLISION"
	EnvCap       = "BALL_CAP"
	EnvSound     = "BALL_SOUND"
)

type Config struct {
	Collision bool // overlapping balls copy each other's velocity
	Cap       int  // 0 = unbounded population
	Sound     bool // bounce blip
}

// Load reads the environment once. Only the exact value "true" enables a
// toggle.
func Load() Config {
	return Config{
		Collision: os.Getenv(EnvCollision) == "true",
		Cap:       loadCap(),
		Sound:     os.Getenv(EnvSound) == "true",
	}
}

func loadCap() int {
	v, ok := os.LookupEnv(EnvCap)
	if !ok || v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("ignoring %s=%q: want a non-negative integer", EnvCap, v)
		return 0
	}
	return n
}

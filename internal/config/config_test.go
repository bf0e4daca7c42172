package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvCollision, "")
	t.Setenv(EnvCap, "")
	t.Setenv(EnvSound, "")

	got := Load()
	if got != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", got)
	}
}

func TestLoadCollision(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"1", false},
		{" true", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvCollision, tt.val)
		if got := Load().Collision; got != tt.want {
			t.Errorf("%s=%q: Collision = %v, want %v", EnvCollision, tt.val, got, tt.want)
		}
	}
}

func TestLoadCap(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"25", 25},
		{"0", 0},
		{"-3", 0},
		{"lots", 0},
	}
	for _, tt := range tests {
		t.Setenv(EnvCap, tt.val)
		if got := Load().Cap; got != tt.want {
			t.Errorf("%s=%q: Cap = %d, want %d", EnvCap, tt.val, got, tt.want)
		}
	}
}

func TestLoadSound(t *testing.T) {
	t.Setenv(EnvSound, "true")
	if !Load().Sound {
		t.Error("Sound should be enabled")
	}
}

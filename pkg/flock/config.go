package flock

import (
	"errors"
	"fmt"
)

// Config holds the steering constants shared by every Agent of a Flock.
// A Flock copies it at construction, so later changes to the caller's value
// never reach a running simulation.
type Config struct {
	MaxSpeed float64 `json:"maxSpeed" toml:"max_speed"` // velocity cap applied at each integration
	MaxForce float64 `json:"maxForce" toml:"max_force"` // steering force cap

	// Interaction Radii
	SeparationRadius float64 `json:"separationRadius" toml:"separation_radius"`
	AlignRadius      float64 `json:"alignRadius" toml:"align_radius"`
	CohesionRadius   float64 `json:"cohesionRadius" toml:"cohesion_radius"`

	// BoundsMargin is the distance from an edge where Bounds starts pushing back.
	BoundsMargin float64 `json:"boundsMargin" toml:"bounds_margin"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:         3.0,
		MaxForce:         0.07,
		SeparationRadius: 30.0,
		AlignRadius:      50.0,
		CohesionRadius:   50.0,
		BoundsMargin:     180.0,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid flock config")

// Validate checks that every constant is strictly positive.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"maxSpeed", c.MaxSpeed},
		{"maxForce", c.MaxForce},
		{"separationRadius", c.SeparationRadius},
		{"alignRadius", c.AlignRadius},
		{"cohesionRadius", c.CohesionRadius},
		{"boundsMargin", c.BoundsMargin},
	}
	for _, f := range fields {
		if !(f.value > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

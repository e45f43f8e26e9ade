package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning document fails validation.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// Tuning is the subset of configuration that can be overridden at runtime from a
// YAML document or from saved settings.
type Tuning struct {
	Projectile ProjectileConfig `yaml:"projectile"`
	Impact     ImpactConfig     `yaml:"impact"`
	Trail      EmitterConfig    `yaml:"trail"`
	Debris     EmitterConfig    `yaml:"debris"`
	Player     PlayerConfig     `yaml:"player"`
	Collision  CollisionConfig  `yaml:"collision"`
}

// CurrentTuning snapshots the global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Projectile: Projectile,
		Impact:     Impact,
		Trail:      Trail,
		Debris:     Debris,
		Player:     Player,
		Collision:  Collision,
	}
}

// LoadTuning parses a YAML document on top of the current configuration. Keys
// missing from the document keep their current values.
func LoadTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// MarshalTuning encodes t as YAML.
func MarshalTuning(t Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("config: marshal tuning: %w", err)
	}
	return data, nil
}

// Validate checks the values the simulation relies on.
func (t Tuning) Validate() error {
	switch {
	case t.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile speed must be positive, got %v", ErrInvalidTuning, t.Projectile.Speed)
	case t.Projectile.Lifetime <= 0:
		return fmt.Errorf("%w: projectile lifetime must be positive, got %v", ErrInvalidTuning, t.Projectile.Lifetime)
	case t.Impact.Lifetime <= 0:
		return fmt.Errorf("%w: impact lifetime must be positive, got %v", ErrInvalidTuning, t.Impact.Lifetime)
	case t.Collision.Backend != BackendResolv && t.Collision.Backend != BackendChipmunk:
		return fmt.Errorf("%w: unknown collision backend %q", ErrInvalidTuning, t.Collision.Backend)
	case t.Collision.CellWidth <= 0 || t.Collision.CellHeight <= 0:
		return fmt.Errorf("%w: collision cells must be positive", ErrInvalidTuning)
	}
	return nil
}

// ApplyTuning validates t and installs it as the global configuration.
func ApplyTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	Projectile = t.Projectile
	Impact = t.Impact
	Trail = t.Trail
	Debris = t.Debris
	Player = t.Player
	Collision = t.Collision
	return nil
}

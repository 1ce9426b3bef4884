package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c SpacewarConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena must have positive size, got %gx%g", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	switch c.Arena.Boundary {
	case BoundaryWrap, BoundaryEdge:
	default:
		return fmt.Errorf("%w: unknown boundary mode %q", ErrInvalid, c.Arena.Boundary)
	}
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Physics.TickRate)
	}
	if c.Physics.MaxControl < 0 || c.Physics.DeadZone < 0 {
		return fmt.Errorf("%w: control limits must not be negative", ErrInvalid)
	}
	if c.Ships.Mass <= 0 || c.Ships.Radius <= 0 {
		return fmt.Errorf("%w: ships need positive mass and radius", ErrInvalid)
	}
	if c.Projectiles.Mass <= 0 || c.Projectiles.Radius <= 0 {
		return fmt.Errorf("%w: projectiles need positive mass and radius", ErrInvalid)
	}
	if c.Projectiles.Lifetime <= 0 {
		return fmt.Errorf("%w: projectile lifetime must be positive", ErrInvalid)
	}
	if c.Gravity.Enabled && c.Gravity.MinDistance <= 0 {
		return fmt.Errorf("%w: gravity min_distance must be positive", ErrInvalid)
	}
	if c.Hazard.Enabled && c.Hazard.Radius <= 0 {
		return fmt.Errorf("%w: hazard radius must be positive", ErrInvalid)
	}
	switch c.Hazard.Contact {
	case "", HazardContactAuto, HazardContactNone, HazardContactRelocate, HazardContactLethal:
	default:
		return fmt.Errorf("%w: unknown hazard contact %q", ErrInvalid, c.Hazard.Contact)
	}
	for name, p := range map[string]float64{
		"turn_chance":   c.AI.TurnChance,
		"thrust_chance": c.AI.ThrustChance,
		"fire_chance":   c.AI.FireChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: ai %s must be within [0,1], got %g", ErrInvalid, name, p)
		}
	}
	for name, s := range map[string]SpawnConfig{"player": c.Ships.Player, "enemy": c.Ships.Enemy} {
		if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
			return fmt.Errorf("%w: %s spawn must be a fraction of the arena", ErrInvalid, name)
		}
	}
	if c.Round.ResetDelay < 0 || c.Round.MaxRounds < 0 {
		return fmt.Errorf("%w: round settings must not be negative", ErrInvalid)
	}
	return nil
}

package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/spacewar.yaml
var defaultSpacewarYAML []byte

// DefaultConfig returns the hardcoded base configuration.
// It mirrors defaults/spacewar.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() SpacewarConfig {
	return SpacewarConfig{
		Variant: "classic",
		Arena: ArenaConfig{
			Width:    1024,
			Height:   768,
			Boundary: BoundaryEdge,
		},
		Physics: PhysicsConfig{
			TickRate:    60,
			ThrustForce: 10,
			TurnRate:    2 * math.Pi,
			MaxControl:  0.5,
			DeadZone:    0,
		},
		Gravity: GravityConfig{
			Enabled:     false,
			Strength:    2.5e6,
			MinDistance: 40,
		},
		Hazard: HazardConfig{
			Enabled: true,
			Radius:  24,
			Contact: HazardContactAuto,
		},
		Ships: ShipsConfig{
			Mass:   0.02,
			Radius: 14,
			Player: SpawnConfig{X: 0.5, Y: 0.2, HeadingDeg: 0},
			Enemy:  SpawnConfig{X: 0.5, Y: 0.8, HeadingDeg: 180},
		},
		Projectiles: ProjectileConfig{
			Mass:          0.01,
			Radius:        3,
			LaunchImpulse: 5.4,  // 540 units/s on a 0.01 mass
			Lifetime:      1.05, // one second of flight plus three frames
			PlayerFires:   true,
			EnemyFires:    true,
		},
		AI: AIConfig{
			Enabled:      true,
			TurnChance:   0.05,
			ThrustChance: 0.03,
			FireChance:   0.02,
			MaxTurn:      0.6,
		},
		Round: RoundConfig{
			ResetDelay: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				AggressionMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded base configuration file.
func DefaultYAML() []byte {
	return defaultSpacewarYAML
}

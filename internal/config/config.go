// Package config provides YAML/TOML configuration loading, arena variants and
// difficulty management for the spacewar simulation.
package config

// BoundaryMode selects what happens when a body reaches the arena border.
type BoundaryMode string

const (
	BoundaryWrap BoundaryMode = "wrap" // leave one side, re-enter on the opposite side
	BoundaryEdge BoundaryMode = "edge" // solid walls, ships stop against them
)

// HazardContact selects what touching the central star does to a ship.
type HazardContact string

const (
	// HazardContactAuto resolves to none with gravity enabled, relocate otherwise.
	HazardContactAuto     HazardContact = "auto"
	HazardContactNone     HazardContact = "none"
	HazardContactRelocate HazardContact = "relocate"
	HazardContactLethal   HazardContact = "lethal"
)

// SpacewarConfig contains all tunable parameters of one arena variant.
type SpacewarConfig struct {
	Variant     string           `yaml:"variant" toml:"variant"`
	Arena       ArenaConfig      `yaml:"arena" toml:"arena"`
	Physics     PhysicsConfig    `yaml:"physics" toml:"physics"`
	Gravity     GravityConfig    `yaml:"gravity" toml:"gravity"`
	Hazard      HazardConfig     `yaml:"hazard" toml:"hazard"`
	Ships       ShipsConfig      `yaml:"ships" toml:"ships"`
	Projectiles ProjectileConfig `yaml:"projectiles" toml:"projectiles"`
	AI          AIConfig         `yaml:"ai" toml:"ai"`
	Round       RoundConfig      `yaml:"round" toml:"round"`
	Difficulty  DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ArenaConfig defines the playfield. Coordinates have their origin in the
// bottom-left corner with y pointing up.
type ArenaConfig struct {
	Width    float64      `yaml:"width" toml:"width"`
	Height   float64      `yaml:"height" toml:"height"`
	Boundary BoundaryMode `yaml:"boundary" toml:"boundary"`
}

// PhysicsConfig defines the fixed-step integrator and ship handling.
type PhysicsConfig struct {
	TickRate    int     `yaml:"tick_rate" toml:"tick_rate"`       // Simulation steps per second
	ThrustForce float64 `yaml:"thrust_force" toml:"thrust_force"` // Force applied per thrusting tick
	TurnRate    float64 `yaml:"turn_rate" toml:"turn_rate"`       // Radians per second at full control
	MaxControl  float64 `yaml:"max_control" toml:"max_control"`   // Turn control is clamped to [-max, max]
	DeadZone    float64 `yaml:"dead_zone" toml:"dead_zone"`       // Control magnitudes below this are ignored
}

// GravityConfig defines the pull of the central hazard.
type GravityConfig struct {
	Enabled            bool    `yaml:"enabled" toml:"enabled"`
	Strength           float64 `yaml:"strength" toml:"strength"`
	MinDistance        float64 `yaml:"min_distance" toml:"min_distance"` // Softening radius near the centre
	AffectsProjectiles bool    `yaml:"affects_projectiles" toml:"affects_projectiles"`
}

// HazardConfig defines the star in the middle of the arena.
type HazardConfig struct {
	Enabled bool          `yaml:"enabled" toml:"enabled"`
	Radius  float64       `yaml:"radius" toml:"radius"`
	Contact HazardContact `yaml:"contact" toml:"contact"`
}

// SpawnConfig is a canonical start pose. X and Y are fractions of the arena size.
type SpawnConfig struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	HeadingDeg float64 `yaml:"heading_deg" toml:"heading_deg"` // 0 = up, counter-clockwise positive
}

// ShipsConfig defines both ships.
type ShipsConfig struct {
	Mass   float64     `yaml:"mass" toml:"mass"`
	Radius float64     `yaml:"radius" toml:"radius"`
	Player SpawnConfig `yaml:"player" toml:"player"`
	Enemy  SpawnConfig `yaml:"enemy" toml:"enemy"`
}

// ProjectileConfig defines bullets.
type ProjectileConfig struct {
	Mass          float64 `yaml:"mass" toml:"mass"`
	Radius        float64 `yaml:"radius" toml:"radius"`
	LaunchImpulse float64 `yaml:"launch_impulse" toml:"launch_impulse"` // Added along the heading, divided by Mass
	Lifetime      float64 `yaml:"lifetime" toml:"lifetime"`             // Seconds before a bullet expires
	Recoil        float64 `yaml:"recoil" toml:"recoil"`                 // Fraction of the launch impulse pushed back on the ship
	PlayerFires   bool    `yaml:"player_fires" toml:"player_fires"`
	EnemyFires    bool    `yaml:"enemy_fires" toml:"enemy_fires"`
}

// AIConfig defines the enemy pilot.
type AIConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	TurnChance   float64 `yaml:"turn_chance" toml:"turn_chance"`     // Per-tick probability of a rotation impulse
	ThrustChance float64 `yaml:"thrust_chance" toml:"thrust_chance"` // Per-tick probability of thrusting
	FireChance   float64 `yaml:"fire_chance" toml:"fire_chance"`     // Per-tick probability of firing
	MaxTurn      float64 `yaml:"max_turn" toml:"max_turn"`           // Largest rotation impulse in radians
	Script       string  `yaml:"script" toml:"script"`               // Optional Lua pilot script
}

// RoundConfig defines the round lifecycle.
type RoundConfig struct {
	ResetDelay float64 `yaml:"reset_delay" toml:"reset_delay"` // Seconds between a death and the next round
	MaxRounds  int     `yaml:"max_rounds" toml:"max_rounds"`   // 0 = endless
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a match.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "rounds", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/rounds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	AggressionMultiplier float64 `yaml:"aggression_multiplier" toml:"aggression_multiplier"` // Added to AI chances at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *SpacewarConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Round.ResetDelay = 4
	case DifficultyHard:
		cfg.AI.MaxTurn *= 1.5
	}
}

// ResolvedHazardContact returns the effective contact mode for the hazard.
func (c SpacewarConfig) ResolvedHazardContact() HazardContact {
	if !c.Hazard.Enabled {
		return HazardContactNone
	}
	if c.Hazard.Contact == "" || c.Hazard.Contact == HazardContactAuto {
		if c.Gravity.Enabled {
			return HazardContactNone
		}
		return HazardContactRelocate
	}
	return c.Hazard.Contact
}

// ResetDelayTicks converts the reset delay into whole simulation ticks.
func (c SpacewarConfig) ResetDelayTicks() uint64 {
	ticks := c.Round.ResetDelay*float64(c.Physics.TickRate) + 0.5
	if ticks < 1 {
		return 1
	}
	return uint64(ticks)
}

// Timestep returns the fixed simulation step in seconds.
func (c SpacewarConfig) Timestep() float64 {
	if c.Physics.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Physics.TickRate)
}

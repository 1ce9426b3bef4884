// Package spacewar adapts the round simulation engine to the arcade platform.
// Each arena variant registers itself as a separate entry in the registry.
package spacewar

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	platformcore "github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/detect"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/script"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
)

// holdTicks is how long a turn or thrust key stays active after a press.
// Terminals report key repeats, not releases.
const holdTicks = 8

// Package-level variables for configuration
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	scriptPath       string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path for all variants.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for all variants.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetScriptPath overrides ai.script with a Lua pilot file.
func SetScriptPath(path string) {
	scriptPath = path
}

// SetLogger sets the logger handed to every new match.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for one arena variant.
type Game struct {
	variant    config.VariantInfo
	cfg        config.SpacewarConfig
	world      *core.World
	difficulty *config.DifficultyManager
	pilot      *script.Pilot
	runtime    platformcore.RuntimeConfig

	paused bool
	rounds int

	// Key hold state, counted down each tick
	holdLeft   int
	holdRight  int
	holdThrust int

	// Last finished round, shown as a banner
	lastRound   *platformcore.RoundSummary
	bannerTicks int

	loadErr error
}

// New creates a game for the given variant ID.
func New(id string) *Game {
	v, ok := config.LookupVariant(id)
	if !ok {
		v = config.VariantInfo{ID: id, Title: id}
	}
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the variant config and starts a new match.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.runtime = rc

	cfg, err := config.Load(configPath, g.variant.ID)
	if err != nil {
		logger.Warn("config load failed, using defaults", "variant", g.variant.ID, "err", err)
		cfg = config.DefaultConfig()
		//nolint:errcheck // variant IDs come from the registry
		config.ApplyVariant(&cfg, g.variant.ID)
	}
	g.loadErr = err
	config.ApplyPreset(&cfg, difficultyPreset)
	if scriptPath != "" {
		cfg.AI.Script = scriptPath
	}
	g.cfg = cfg

	g.start()
}

// start builds a fresh World from the current config.
func (g *Game) start() {
	if g.pilot != nil {
		g.pilot.Close()
		g.pilot = nil
	}

	g.world, g.pilot = NewWorld(g.cfg, g.runtime.Seed, logger.WithPrefix(g.variant.ID))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world.SetAggression(g.difficulty.Aggression(0, 0))

	g.paused = false
	g.rounds = 0
	g.holdLeft, g.holdRight, g.holdThrust = 0, 0, 0
	g.lastRound = nil
	g.bannerTicks = 0
}

// Step maps one input frame onto the World and advances it by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.world.Over() {
		g.runtime.Seed++
		g.start()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.world.Over() {
		g.paused = !g.paused
	}
	if g.paused || g.world.Over() {
		return platformcore.StepResult{State: g.State()}
	}

	g.world.SetControl(core.RolePlayer, g.turnInput(in), g.thrustInput(in))
	for i := 0; i < in.Count(platformcore.ActionFire); i++ {
		g.world.Fire(core.RolePlayer)
	}

	res := g.world.Step()

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	var rounds []platformcore.RoundSummary
	for _, r := range res.Rounds {
		summary := platformcore.RoundSummary{
			Round:      r.Round,
			PlayerDead: r.PlayerDead,
			EnemyDead:  r.EnemyDead,
			Delta:      r.Delta,
			Score:      r.Score,
			Ticks:      r.Ticks,
		}
		rounds = append(rounds, summary)
		g.rounds++
		g.lastRound = &summary
		g.bannerTicks = g.cfg.Physics.TickRate * 2
	}
	if len(rounds) > 0 {
		g.world.SetAggression(g.difficulty.Aggression(g.world.Round().Score, g.rounds))
	}

	return platformcore.StepResult{State: g.State(), Rounds: rounds}
}

// turnInput converts held turn keys into a control signal.
// Left is counter-clockwise (positive); the World clamps the magnitude.
func (g *Game) turnInput(in platformcore.InputFrame) float64 {
	if in.Has(platformcore.ActionTurnLeft) {
		g.holdLeft, g.holdRight = holdTicks, 0
	}
	if in.Has(platformcore.ActionTurnRight) {
		g.holdRight, g.holdLeft = holdTicks, 0
	}

	turn := 0.0
	if g.holdLeft > 0 {
		turn += 1
		g.holdLeft--
	}
	if g.holdRight > 0 {
		turn -= 1
		g.holdRight--
	}
	return turn
}

func (g *Game) thrustInput(in platformcore.InputFrame) bool {
	if in.Has(platformcore.ActionThrust) {
		g.holdThrust = holdTicks
	}
	if g.holdThrust > 0 {
		g.holdThrust--
		return true
	}
	return false
}

// State returns the current match state.
func (g *Game) State() platformcore.GameState {
	if g.world == nil {
		return platformcore.GameState{}
	}
	r := g.world.Round()
	return platformcore.GameState{
		Score:    r.Score,
		Round:    r.Number,
		Phase:    phaseLabel(r.Phase),
		GameOver: g.world.Over(),
		Paused:   g.paused,
	}
}

// Snapshot returns the engine view of the current match.
func (g *Game) Snapshot() core.Snapshot {
	return g.world.Snapshot()
}

// Config returns the effective configuration of the current match.
func (g *Game) Config() config.SpacewarConfig {
	return g.cfg
}

// NewWorld builds a World the way a match does: circle overlap detection,
// a source seeded with seed and, when ai.script is set, a Lua pilot.
// The returned pilot is nil unless a script was loaded; the caller closes it.
func NewWorld(cfg config.SpacewarConfig, seed int64, l *log.Logger) (*core.World, *script.Pilot) {
	opts := []core.Option{
		core.WithDetector(detect.Circles{}),
		core.WithLogger(l),
	}

	var pilot *script.Pilot
	if cfg.AI.Enabled && cfg.AI.Script != "" {
		p, err := script.Load(cfg.AI.Script, l)
		if err != nil {
			l.Error("lua pilot unavailable, using random pilot", "err", err)
		} else {
			pilot = p
			opts = append(opts, core.WithPilot(p))
		}
	}

	rng := rand.New(rand.NewSource(seed))
	return core.New(cfg, rng, opts...), pilot
}

// Close releases the Lua pilot of the current match, if any.
func (g *Game) Close() error {
	if g.pilot != nil {
		g.pilot.Close()
		g.pilot = nil
	}
	return nil
}

func phaseLabel(p core.Phase) string {
	switch p {
	case core.PhaseEnding:
		return "Ending"
	case core.PhaseResetting:
		return "Resetting"
	default:
		return "Active"
	}
}

// Register every arena variant with the registry
func init() {
	for _, v := range config.Variants() {
		info := registry.GameInfo{ID: v.ID, Title: v.Title, Description: v.Description}
		registry.Register(info, func() registry.Game {
			return New(v.ID)
		})
	}
}

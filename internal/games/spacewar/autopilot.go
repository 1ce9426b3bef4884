package spacewar

import (
	"math"

	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
)

// Autopilot flies the player ship for headless runs. It feeds the World
// through SetControl and Fire, the same path keyboard input takes.
type Autopilot struct {
	FireCone    float64 // radians off target within which it fires
	FireEvery   int     // minimum ticks between shots
	ThrustRange float64 // thrusts toward targets further than this

	cooldown int
}

// NewAutopilot returns an autopilot with playable defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		FireCone:    0.08,
		FireEvery:   20,
		ThrustRange: 350,
	}
}

// Drive sets the player's controls for the next Step.
func (a *Autopilot) Drive(w *core.World) {
	if a.cooldown > 0 {
		a.cooldown--
	}

	player, ok := w.Ship(core.RolePlayer)
	if !ok || !player.Alive {
		w.SetControl(core.RolePlayer, 0, false)
		return
	}
	enemy, ok := w.Ship(core.RoleEnemy)
	if !ok || !enemy.Alive {
		w.SetControl(core.RolePlayer, 0, false)
		return
	}

	d := enemy.Pos.Sub(player.Pos)
	diff := AngleDiff(math.Atan2(-d.X, d.Y), player.Heading)

	cfg := w.Config()
	perTick := cfg.Physics.TurnRate * cfg.Timestep()
	turn := 0.0
	if perTick > 0 {
		turn = diff / perTick
	}
	thrust := d.Len() > a.ThrustRange && math.Abs(diff) < 0.5
	w.SetControl(core.RolePlayer, turn, thrust)

	if math.Abs(diff) < a.FireCone && a.cooldown == 0 {
		w.Fire(core.RolePlayer)
		a.cooldown = a.FireEvery
	}
}

// AngleDiff returns target-current mapped into (-π, π].
func AngleDiff(target, current float64) float64 {
	d := math.Mod(target-current, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

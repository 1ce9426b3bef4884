package core

import "math"

// Source is a uniform random source in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ShipView is the read-only part of a ship a pilot may look at.
type ShipView struct {
	Pos     Vec2
	Vel     Vec2
	Heading float64
	Alive   bool
}

// PilotView is everything a pilot sees when deciding one tick.
type PilotView struct {
	Tick       uint64
	Width      float64
	Height     float64
	Self       ShipView
	Target     ShipView
	Aggression float64 // multiplier for per-tick chances, 1 = baseline
}

// Pilot decides the enemy ship's intent for one tick.
type Pilot interface {
	Decide(view PilotView, src Source) Intent
}

// RandomPilot makes independent random draws each tick.
type RandomPilot struct {
	TurnChance   float64
	ThrustChance float64
	FireChance   float64
	MaxTurn      float64
}

// Decide draws turn, thrust and fire in that order. A turn draws a second
// value for the impulse, uniform in [-MaxTurn, MaxTurn].
func (p RandomPilot) Decide(view PilotView, src Source) Intent {
	agg := view.Aggression
	if agg <= 0 {
		agg = 1
	}
	var in Intent
	if src.Float64() < chance(p.TurnChance, agg) {
		in.Turn = (src.Float64()*2 - 1) * p.MaxTurn
	}
	in.Thrust = src.Float64() < chance(p.ThrustChance, agg)
	in.Fire = src.Float64() < chance(p.FireChance, agg)
	return in
}

func chance(p, agg float64) float64 {
	return math.Min(1, math.Max(0, p*agg))
}

// AIController drives the enemy ship.
type AIController struct {
	Pilot      Pilot
	EnemyFires bool
	Aggression float64
	MaxTurn    float64 // bound on the rotation impulse of any pilot, 0 = unbounded
}

// Update asks the pilot for the enemy's intent and applies it in the same
// tick. Nothing happens while the enemy is dead. The enemy fires only while
// the player is alive and enemy firing is enabled; spawned projectiles are
// recorded in res.
func (c *AIController) Update(w *World, res *StepResult) {
	if c == nil || c.Pilot == nil {
		return
	}
	enemy, ok := w.Ship(RoleEnemy)
	if !ok || !enemy.Alive {
		return
	}
	player, playerOK := w.Ship(RolePlayer)

	view := PilotView{
		Tick:       w.tick,
		Width:      w.integ.Width,
		Height:     w.integ.Height,
		Self:       viewOf(enemy),
		Aggression: c.Aggression,
	}
	if playerOK {
		view.Target = viewOf(player)
	}

	in := c.Pilot.Decide(view, w.src)
	if in.Turn != 0 && !math.IsNaN(in.Turn) {
		enemy.Ship.Turn += c.boundTurn(in.Turn)
	}
	if in.Thrust {
		w.thrust(enemy)
	}
	if in.Fire && c.EnemyFires && playerOK && player.Alive {
		if id, ok := w.fire(RoleEnemy); ok {
			res.Spawned = append(res.Spawned, id)
		}
	}
}

func (c *AIController) boundTurn(turn float64) float64 {
	if c.MaxTurn <= 0 {
		return turn
	}
	return math.Max(-c.MaxTurn, math.Min(c.MaxTurn, turn))
}

func viewOf(e *Entity) ShipView {
	return ShipView{Pos: e.Pos, Vel: e.Vel, Heading: e.Heading, Alive: e.Alive}
}

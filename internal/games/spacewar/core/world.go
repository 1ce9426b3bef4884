package core

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spacewar/internal/config"
)

// Detector reports overlapping entity pairs after integration.
type Detector interface {
	Detect(s *Store) []Contact
}

// StepResult lists what happened during one World step.
type StepResult struct {
	Tick      uint64
	Phases    []PhaseChange
	Rounds    []RoundResult
	Spawned   []ID // projectiles fired
	Expired   []ID // projectiles removed by lifetime
	Deaths    []ID // alive to dead transitions
	Relocated []ID // ships moved by the hazard
}

// Option configures a World.
type Option func(*World)

// WithDetector sets the contact detector. Without one only edge contacts occur.
func WithDetector(d Detector) Option {
	return func(w *World) { w.detector = d }
}

// WithPilot replaces the enemy pilot built from the AI config.
func WithPilot(p Pilot) Option {
	return func(w *World) {
		if w.ai != nil {
			w.ai.Pilot = p
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// World is one spacewar match. It is owned by a single goroutine.
type World struct {
	cfg      config.SpacewarConfig
	src      Source
	store    *Store
	integ    *Integrator
	rules    Rules
	queue    *IntentQueue
	ai       *AIController
	detector Detector
	log      *log.Logger

	round    Round
	tick     uint64
	dt       float64
	delay    uint64
	ships    [3]ID
	hazard   ID
	finished int
	over     bool
}

// New builds a World from a validated config and a random source, and spawns
// the first round.
func New(cfg config.SpacewarConfig, src Source, opts ...Option) *World {
	w := &World{
		cfg:   cfg,
		src:   src,
		store: NewStore(),
		queue: NewIntentQueue(),
		log:   log.New(io.Discard),
		dt:    cfg.Timestep(),
		delay: cfg.ResetDelayTicks(),
		round: Round{Phase: PhaseActive, Number: 1},
	}

	center := V(cfg.Arena.Width/2, cfg.Arena.Height/2)
	w.integ = &Integrator{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
		Gravity: Gravity{
			Enabled:            cfg.Gravity.Enabled,
			Center:             center,
			Strength:           cfg.Gravity.Strength,
			MinDistance:        cfg.Gravity.MinDistance,
			AffectsProjectiles: cfg.Gravity.AffectsProjectiles,
		},
	}

	switch cfg.ResolvedHazardContact() {
	case config.HazardContactRelocate:
		w.rules.Hazard = HazardRelocate
	case config.HazardContactLethal:
		w.rules.Hazard = HazardLethal
	default:
		w.rules.Hazard = HazardNone
	}

	if cfg.Hazard.Enabled {
		w.hazard = w.store.Create(KindHazard, Spawn{Pos: center, Radius: cfg.Hazard.Radius})
	}
	if cfg.Arena.Boundary == config.BoundaryEdge {
		w.integ.Boundary = BoundaryEdge
		w.createEdges()
	}

	if cfg.AI.Enabled {
		w.ai = &AIController{
			Pilot: RandomPilot{
				TurnChance:   cfg.AI.TurnChance,
				ThrustChance: cfg.AI.ThrustChance,
				FireChance:   cfg.AI.FireChance,
				MaxTurn:      cfg.AI.MaxTurn,
			},
			EnemyFires: cfg.Projectiles.EnemyFires,
			Aggression: 1,
			MaxTurn:    cfg.AI.MaxTurn,
		}
	}

	for _, opt := range opts {
		opt(w)
	}

	w.spawnShips()
	return w
}

func (w *World) createEdges() {
	width, height := w.cfg.Arena.Width, w.cfg.Arena.Height
	pos := [4]Vec2{
		SideLeft:   V(0, height/2),
		SideRight:  V(width, height/2),
		SideBottom: V(width/2, 0),
		SideTop:    V(width/2, height),
	}
	for side := SideLeft; side <= SideTop; side++ {
		w.integ.Edges[side] = w.store.Create(KindBoundaryEdge, Spawn{
			Pos:    pos[side],
			Normal: EdgeNormal(side),
		})
	}
}

func (w *World) spawnShips() {
	for _, role := range []Role{RolePlayer, RoleEnemy} {
		sp := w.cfg.Ships.Player
		if role == RoleEnemy {
			sp = w.cfg.Ships.Enemy
		}
		w.ships[role] = w.store.Create(KindShip, Spawn{
			Pos:     V(sp.X*w.cfg.Arena.Width, sp.Y*w.cfg.Arena.Height),
			Heading: sp.HeadingDeg * math.Pi / 180,
			Mass:    w.cfg.Ships.Mass,
			Radius:  w.cfg.Ships.Radius,
			Role:    role,
		})
	}
}

// Step advances the match by one tick.
//
// Order: pending reset, fire intents, continuous control, AI, integration,
// detection, classification and resolution.
func (w *World) Step() StepResult {
	w.tick++
	res := StepResult{Tick: w.tick}
	if w.over {
		return res
	}

	if w.round.due(w.tick) {
		w.reset(&res)
		if w.over {
			return res
		}
	}

	for _, role := range w.queue.Drain() {
		if id, ok := w.fire(role); ok {
			res.Spawned = append(res.Spawned, id)
		}
	}

	w.applyControls()
	w.ai.Update(w, &res)

	rep := w.integ.Step(w.store, w.dt)
	for _, id := range rep.Expired {
		w.store.Remove(id)
		res.Expired = append(res.Expired, id)
	}

	var contacts []Contact
	if w.detector != nil {
		contacts = w.detector.Detect(w.store)
	}
	contacts = append(contacts, rep.EdgeContacts...)

	for _, c := range contacts {
		a, okA := w.store.Get(c.A)
		b, okB := w.store.Get(c.B)
		if !okA || !okB {
			continue
		}
		w.apply(Classify(a, b, w.rules), &res)
	}

	return res
}

func (w *World) applyControls() {
	turnScale := w.cfg.Physics.TurnRate * w.dt
	for _, role := range []Role{RolePlayer, RoleEnemy} {
		ship, ok := w.Ship(role)
		if !ok || !ship.Alive {
			continue
		}
		c := w.queue.Control(role)
		ship.Ship.Turn += c.Turn * turnScale
		ship.Ship.Thrust = false
		if c.Thrust {
			w.thrust(ship)
		}
	}
}

func (w *World) thrust(ship *Entity) {
	ship.Ship.Thrust = true
	ship.ApplyForce(Heading(ship.Heading).Scale(w.cfg.Physics.ThrustForce))
}

// fire spawns a projectile for role if its ship is alive and allowed to fire.
func (w *World) fire(role Role) (ID, bool) {
	if role == RolePlayer && !w.cfg.Projectiles.PlayerFires {
		return NoID, false
	}
	if role == RoleEnemy && !w.cfg.Projectiles.EnemyFires {
		return NoID, false
	}
	owner, ok := w.Ship(role)
	if !ok || !owner.Alive {
		return NoID, false
	}

	pc := w.cfg.Projectiles
	dir := Heading(owner.Heading)
	id := w.store.Create(KindProjectile, Spawn{
		Pos:     owner.Pos.Add(dir.Scale(owner.Radius + pc.Radius + 1)),
		Vel:     owner.Vel.Add(dir.Scale(pc.LaunchImpulse / pc.Mass)),
		Heading: owner.Heading,
		Mass:    pc.Mass,
		Radius:  pc.Radius,
		Owner:   owner.ID,
		TTL:     pc.Lifetime,
	})
	if pc.Recoil > 0 {
		owner.ApplyImpulse(dir.Scale(-pc.LaunchImpulse * pc.Recoil))
	}
	return id, true
}

func (w *World) apply(out Outcome, res *StepResult) {
	switch out.Kind {
	case OutcomeRelocate:
		if ship, ok := w.store.Get(out.Ship); ok {
			ship.Pos = V(w.src.Float64()*w.cfg.Arena.Width, w.src.Float64()*w.cfg.Arena.Height)
			res.Relocated = append(res.Relocated, out.Ship)
		}
	case OutcomeKillBoth:
		w.kill(out.A, res)
		w.kill(out.B, res)
	case OutcomeKillOne:
		w.kill(out.Victim, res)
		if !out.Projectile.IsZero() {
			w.store.Remove(out.Projectile)
		}
	case OutcomeStopAtEdge:
		if ship, ok := w.store.Get(out.Ship); ok {
			ship.Vel = StopAtEdge(ship.Vel, out.Normal)
		}
	}
}

func (w *World) kill(id ID, res *StepResult) {
	if !w.store.MarkDead(id) {
		return
	}
	res.Deaths = append(res.Deaths, id)

	e, _ := w.store.Get(id)
	if e.Ship == nil {
		return
	}
	w.log.Debug("ship destroyed", "role", e.Ship.Role, "round", w.round.Number, "tick", w.tick)
	if w.round.scheduleEnd(w.tick, w.delay) {
		res.Phases = append(res.Phases, PhaseChange{Tick: w.tick, Round: w.round.Number, From: PhaseActive, To: PhaseEnding})
		w.log.Debug("round ending", "round", w.round.Number, "deadline", w.round.Deadline)
	}
}

// reset runs Ending -> Resetting -> Active within the current tick.
func (w *World) reset(res *StepResult) {
	w.round.Phase = PhaseResetting
	res.Phases = append(res.Phases, PhaseChange{Tick: w.tick, Round: w.round.Number, From: PhaseEnding, To: PhaseResetting})

	playerDead := w.shipDead(RolePlayer)
	enemyDead := w.shipDead(RoleEnemy)
	delta := ScoreDelta(playerDead, enemyDead)
	w.round.Score += delta

	result := RoundResult{
		Round:      w.round.Number,
		PlayerDead: playerDead,
		EnemyDead:  enemyDead,
		Delta:      delta,
		Score:      w.round.Score,
		Ticks:      w.tick - w.round.StartedAt,
	}
	res.Rounds = append(res.Rounds, result)
	w.log.Info("round over", "round", result.Round, "delta", result.Delta, "score", result.Score)

	var doomed []ID
	w.store.Each(func(e *Entity) {
		if e.kind == KindShip || e.kind == KindProjectile {
			doomed = append(doomed, e.ID)
		}
	})
	for _, id := range doomed {
		w.store.Remove(id)
	}
	w.queue.Clear()
	w.spawnShips()

	w.finished++
	w.round.Number++
	w.round.StartedAt = w.tick
	w.round.Deadline = 0
	w.round.Phase = PhaseActive
	res.Phases = append(res.Phases, PhaseChange{Tick: w.tick, Round: w.round.Number, From: PhaseResetting, To: PhaseActive})

	if limit := w.cfg.Round.MaxRounds; limit > 0 && w.finished >= limit {
		w.over = true
		w.log.Info("match over", "rounds", w.finished, "score", w.round.Score)
	}
}

func (w *World) shipDead(role Role) bool {
	ship, ok := w.Ship(role)
	return ok && ship.Ship.Dead
}

// SetControl sets the continuous control for role. Turn is clamped to
// [-max_control, max_control] with the configured dead zone.
func (w *World) SetControl(role Role, turn float64, thrust bool) {
	turn = ClampControl(turn, w.cfg.Physics.MaxControl, w.cfg.Physics.DeadZone)
	w.queue.SetControl(role, Control{Turn: turn, Thrust: thrust})
}

// Fire queues a fire intent for role. It is drained on the next Step.
func (w *World) Fire(role Role) {
	w.queue.PushFire(role)
}

// SetAggression scales the AI's per-tick chances.
func (w *World) SetAggression(a float64) {
	if w.ai != nil {
		w.ai.Aggression = a
	}
}

// Ship returns the current ship for role, alive or dead.
func (w *World) Ship(role Role) (*Entity, bool) {
	if int(role) >= len(w.ships) {
		return nil, false
	}
	return w.store.Get(w.ships[role])
}

// Store exposes the entity store.
func (w *World) Store() *Store { return w.store }

// Round returns a copy of the round state.
func (w *World) Round() Round { return w.round }

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 { return w.tick }

// Over reports whether the configured number of rounds has been played.
func (w *World) Over() bool { return w.over }

// QueuedFires returns the number of pending fire intents.
func (w *World) QueuedFires() int { return w.queue.Len() }

// Config returns the config the World was built from.
func (w *World) Config() config.SpacewarConfig { return w.cfg }

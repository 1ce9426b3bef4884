package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
)

const eps = 1e-6

func TestWrapAroundRightEdge(t *testing.T) {
	cfg := testConfig(t, "wrap")
	cfg.Hazard.Enabled = false
	width := cfg.Arena.Width

	for _, y := range []float64{20, 200, 500, 700} {
		w := newWorld(cfg, nil)
		ship := mustShip(t, w, core.RolePlayer)
		ship.Pos = core.V(width-1, y)
		ship.Vel = core.V(float64(cfg.Physics.TickRate), 0) // one unit per tick

		w.Step()

		// Within eps of x=0 measured around the seam.
		dx := math.Min(ship.Pos.X, width-ship.Pos.X)
		if dx > eps {
			t.Errorf("y=%g: expected x≈0 after wrap, got %g", y, ship.Pos.X)
		}
		if math.Abs(ship.Pos.Y-y) > eps {
			t.Errorf("y=%g: y changed to %g", y, ship.Pos.Y)
		}
	}
}

func TestWrapNegative(t *testing.T) {
	in := core.Integrator{Width: 100, Height: 50, Boundary: core.BoundaryWrap}
	s := core.NewStore()
	id := s.Create(core.KindProjectile, core.Spawn{Pos: core.V(0.5, 0.5), Vel: core.V(-60, -60), Mass: 1, TTL: 10})

	in.Step(s, 1.0/60)

	e, _ := s.Get(id)
	if math.Abs(e.Pos.X-99.5) > eps || math.Abs(e.Pos.Y-49.5) > eps {
		t.Errorf("expected (99.5, 49.5), got %+v", e.Pos)
	}
}

func TestWrapSeamStaysInRange(t *testing.T) {
	in := core.Integrator{Width: 100, Height: 50, Boundary: core.BoundaryWrap}
	s := core.NewStore()
	// A step just below zero rounds to exactly Width after the modulo.
	id := s.Create(core.KindProjectile, core.Spawn{Pos: core.V(0, 0), Vel: core.V(-6e-17, -6e-17), Mass: 1, TTL: 10})

	in.Step(s, 1.0/60)

	e, _ := s.Get(id)
	if e.Pos.X < 0 || e.Pos.X >= in.Width || e.Pos.Y < 0 || e.Pos.Y >= in.Height {
		t.Errorf("position %+v left [0, size)", e.Pos)
	}
}

func TestHardEdgeStopsInbound(t *testing.T) {
	cfg := testConfig(t, "classic")
	cfg.Hazard.Enabled = false
	w := newWorld(cfg, nil)

	ship := mustShip(t, w, core.RolePlayer)
	r := ship.Radius
	ship.Pos = core.V(r+0.5, 300)
	ship.Vel = core.V(-120, 45)

	w.Step()

	if ship.Pos.X != r {
		t.Errorf("expected ship clamped to x=%g, got %g", r, ship.Pos.X)
	}
	if ship.Vel.X != 0 {
		t.Errorf("inbound velocity should be zero, got %g", ship.Vel.X)
	}
	if ship.Vel.Y != 45 {
		t.Errorf("tangential velocity should be preserved, got %g", ship.Vel.Y)
	}
	if !ship.Alive {
		t.Error("edge contact must not kill")
	}

	// Moving away from the wall is untouched.
	ship.Vel = core.V(60, -10)
	w.Step()
	if ship.Vel != core.V(60, -10) {
		t.Errorf("outbound velocity changed to %+v", ship.Vel)
	}
}

func TestHardEdgeExemptsProjectiles(t *testing.T) {
	in := core.Integrator{Width: 100, Height: 100, Boundary: core.BoundaryEdge}
	s := core.NewStore()
	id := s.Create(core.KindProjectile, core.Spawn{Pos: core.V(99, 50), Vel: core.V(600, 0), Mass: 1, Radius: 1, TTL: 1})

	rep := in.Step(s, 1.0/60)

	e, _ := s.Get(id)
	if e.Pos.X <= 100 {
		t.Errorf("projectile should leave the arena, x=%g", e.Pos.X)
	}
	if len(rep.EdgeContacts) != 0 {
		t.Errorf("projectiles never touch edges, got %v", rep.EdgeContacts)
	}
}

func TestProjectileLifetime(t *testing.T) {
	in := core.Integrator{Width: 100, Height: 100}
	s := core.NewStore()
	id := s.Create(core.KindProjectile, core.Spawn{Pos: core.V(50, 50), Mass: 1, TTL: 0.04})

	dt := 1.0 / 60
	for tick := 1; tick <= 3; tick++ {
		rep := in.Step(s, dt)
		expired := len(rep.Expired) == 1 && rep.Expired[0] == id
		if tick < 3 && expired {
			t.Fatalf("expired early at tick %d", tick)
		}
		if tick == 3 && !expired {
			t.Fatalf("expected expiry at tick 3, got %v", rep.Expired)
		}
	}
}

func TestGravityPullsShipsOnly(t *testing.T) {
	in := core.Integrator{
		Width: 200, Height: 200,
		Gravity: core.Gravity{Enabled: true, Center: core.V(100, 100), Strength: 1e5, MinDistance: 10},
	}
	s := core.NewStore()
	ship := s.Create(core.KindShip, core.Spawn{Pos: core.V(100, 50), Mass: 1, Role: core.RolePlayer})
	shot := s.Create(core.KindProjectile, core.Spawn{Pos: core.V(100, 50), Mass: 1, TTL: 5})

	in.Step(s, 1.0/60)

	e, _ := s.Get(ship)
	want := 1e5 / (50 * 50) / 60
	if math.Abs(e.Vel.Y-want) > eps || e.Vel.X != 0 {
		t.Errorf("expected ship velocity (0, %g), got %+v", want, e.Vel)
	}
	p, _ := s.Get(shot)
	if p.Vel != (core.Vec2{}) {
		t.Errorf("projectiles ignore gravity by default, got %+v", p.Vel)
	}
}

func TestThrustAndTurn(t *testing.T) {
	in := core.Integrator{Width: 1000, Height: 1000, Boundary: core.BoundaryWrap}
	s := core.NewStore()
	id := s.Create(core.KindShip, core.Spawn{Pos: core.V(500, 500), Mass: 0.5, Role: core.RolePlayer})
	e, _ := s.Get(id)

	e.ApplyForce(core.Heading(e.Heading).Scale(3))
	e.Ship.Turn = math.Pi / 2
	in.Step(s, 0.5)

	// Heading 0 thrusts straight up: dv = F/m*dt = 3.
	if math.Abs(e.Vel.X) > eps || math.Abs(e.Vel.Y-3) > eps {
		t.Errorf("expected velocity (0, 3), got %+v", e.Vel)
	}
	if math.Abs(e.Heading-math.Pi/2) > eps || e.Ship.Turn != 0 {
		t.Errorf("expected heading π/2 and pending turn cleared, got %g / %g", e.Heading, e.Ship.Turn)
	}

	// Force is consumed by the step.
	in.Step(s, 0.5)
	if math.Abs(e.Vel.Y-3) > eps {
		t.Errorf("force applied twice, velocity %+v", e.Vel)
	}

	// Quarter turn counter-clockwise points the nose left.
	if d := core.Heading(e.Heading); math.Abs(d.X+1) > eps || math.Abs(d.Y) > eps {
		t.Errorf("expected heading direction (-1, 0), got %+v", d)
	}
}

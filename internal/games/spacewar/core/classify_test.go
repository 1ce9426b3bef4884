package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
)

type arena struct {
	store  *core.Store
	player *core.Entity
	enemy  *core.Entity
	hazard *core.Entity
	edge   *core.Entity
	shotP  *core.Entity // fired by the player
	shotE  *core.Entity // fired by the enemy
}

func newArena() arena {
	s := core.NewStore()
	get := func(id core.ID) *core.Entity {
		e, _ := s.Get(id)
		return e
	}
	a := arena{store: s}
	a.player = get(s.Create(core.KindShip, core.Spawn{Mass: 1, Radius: 5, Role: core.RolePlayer}))
	a.enemy = get(s.Create(core.KindShip, core.Spawn{Mass: 1, Radius: 5, Role: core.RoleEnemy}))
	a.hazard = get(s.Create(core.KindHazard, core.Spawn{Radius: 10}))
	a.edge = get(s.Create(core.KindBoundaryEdge, core.Spawn{Normal: core.V(0, -1)}))
	a.shotP = get(s.Create(core.KindProjectile, core.Spawn{Mass: 1, Radius: 1, TTL: 1, Owner: a.player.ID}))
	a.shotE = get(s.Create(core.KindProjectile, core.Spawn{Mass: 1, Radius: 1, TTL: 1, Owner: a.enemy.ID}))
	return a
}

func TestClassifyTable(t *testing.T) {
	a := newArena()
	relocate := core.Rules{Hazard: core.HazardRelocate}

	tests := []struct {
		name  string
		x, y  *core.Entity
		rules core.Rules
		want  core.Outcome
	}{
		{"ship/ship", a.player, a.enemy, relocate,
			core.Outcome{Kind: core.OutcomeKillBoth, A: a.player.ID, B: a.enemy.ID}},
		{"ship/enemy shot", a.player, a.shotE, relocate,
			core.Outcome{Kind: core.OutcomeKillOne, Victim: a.player.ID, Projectile: a.shotE.ID}},
		{"enemy/player shot", a.enemy, a.shotP, relocate,
			core.Outcome{Kind: core.OutcomeKillOne, Victim: a.enemy.ID, Projectile: a.shotP.ID}},
		{"own shot", a.player, a.shotP, relocate, core.Outcome{}},
		{"hazard relocate", a.player, a.hazard, relocate,
			core.Outcome{Kind: core.OutcomeRelocate, Ship: a.player.ID}},
		{"hazard none", a.player, a.hazard, core.Rules{Hazard: core.HazardNone}, core.Outcome{}},
		{"hazard lethal", a.enemy, a.hazard, core.Rules{Hazard: core.HazardLethal},
			core.Outcome{Kind: core.OutcomeKillOne, Victim: a.enemy.ID}},
		{"edge", a.player, a.edge, relocate,
			core.Outcome{Kind: core.OutcomeStopAtEdge, Ship: a.player.ID, Normal: core.V(0, -1)}},
		{"shot/shot", a.shotP, a.shotE, relocate, core.Outcome{}},
		{"shot/hazard", a.shotP, a.hazard, relocate, core.Outcome{}},
		{"shot/edge", a.shotE, a.edge, relocate, core.Outcome{}},
		{"hazard/edge", a.hazard, a.edge, relocate, core.Outcome{}},
		{"self", a.player, a.player, relocate, core.Outcome{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.Classify(tt.x, tt.y, tt.rules); got != tt.want {
				t.Errorf("Classify(x, y) = %+v, want %+v", got, tt.want)
			}
			if got := core.Classify(tt.y, tt.x, tt.rules); got != tt.want {
				t.Errorf("Classify(y, x) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyNeverSelfHit(t *testing.T) {
	a := newArena()
	rules := []core.Rules{{Hazard: core.HazardNone}, {Hazard: core.HazardRelocate}, {Hazard: core.HazardLethal}}

	for _, owner := range []*core.Entity{a.player, a.enemy} {
		for i := 0; i < 5; i++ {
			id := a.store.Create(core.KindProjectile, core.Spawn{Mass: 1, TTL: 1, Owner: owner.ID})
			shot, _ := a.store.Get(id)
			for _, r := range rules {
				if got := core.Classify(owner, shot, r); got.Kind != core.OutcomeIgnore {
					t.Errorf("%s hit by its own projectile: %s", owner.Ship.Role, got.Kind)
				}
				if got := core.Classify(shot, owner, r); got.Kind != core.OutcomeIgnore {
					t.Errorf("%s hit by its own projectile (swapped): %s", owner.Ship.Role, got.Kind)
				}
			}
		}
	}
}

func TestClassifyIgnoresDead(t *testing.T) {
	a := newArena()
	a.store.MarkDead(a.enemy.ID)

	if got := core.Classify(a.player, a.enemy, core.Rules{}); got.Kind != core.OutcomeIgnore {
		t.Errorf("contact with dead ship should be ignored, got %s", got.Kind)
	}
	if got := core.Classify(a.enemy, a.shotP, core.Rules{}); got.Kind != core.OutcomeIgnore {
		t.Errorf("projectile should pass through a dead ship, got %s", got.Kind)
	}
}

func TestStopAtEdge(t *testing.T) {
	tests := []struct {
		name   string
		v      core.Vec2
		normal core.Vec2
		want   core.Vec2
	}{
		{"inbound left wall", core.V(-30, 12), core.V(1, 0), core.V(0, 12)},
		{"outbound left wall", core.V(30, 12), core.V(1, 0), core.V(30, 12)},
		{"inbound top wall", core.V(7, 40), core.V(0, -1), core.V(7, 0)},
		{"tangential", core.V(0, 25), core.V(-1, 0), core.V(0, 25)},
	}
	for _, tt := range tests {
		if got := core.StopAtEdge(tt.v, tt.normal); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

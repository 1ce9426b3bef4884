package core

// EntityView is a read-only copy of one entity for presentation.
type EntityView struct {
	ID       ID
	Kind     Kind
	Category Category
	Pos      Vec2
	Vel      Vec2
	Heading  float64
	Radius   float64
	Owner    ID // projectiles only
	Alive    bool
	Dead     bool // ships only
	Role     Role // ships only
	Thrust   bool // ships only
	TTL      float64
}

// Snapshot is the presentation view of a World after a step.
type Snapshot struct {
	Tick     uint64
	Round    int
	Phase    Phase
	Score    int
	Deadline uint64
	Over     bool
	Width    float64
	Height   float64
	Boundary Boundary
	Entities []EntityView // slot order, dead ships included
}

// Snapshot copies the current state for rendering.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.tick,
		Round:    w.round.Number,
		Phase:    w.round.Phase,
		Score:    w.round.Score,
		Deadline: w.round.Deadline,
		Over:     w.over,
		Width:    w.integ.Width,
		Height:   w.integ.Height,
		Boundary: w.integ.Boundary,
		Entities: make([]EntityView, 0, w.store.Len()),
	}
	w.store.Each(func(e *Entity) {
		v := EntityView{
			ID:       e.ID,
			Kind:     e.kind,
			Category: e.category,
			Pos:      e.Pos,
			Vel:      e.Vel,
			Heading:  e.Heading,
			Radius:   e.Radius,
			Owner:    e.Owner,
			Alive:    e.Alive,
			TTL:      e.TTL,
		}
		if e.Ship != nil {
			v.Dead = e.Ship.Dead
			v.Role = e.Ship.Role
			v.Thrust = e.Ship.Thrust
		}
		snap.Entities = append(snap.Entities, v)
	})
	return snap
}

// Ship returns the view of the ship with role, if present.
func (s Snapshot) Ship(role Role) (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Kind == KindShip && e.Role == role {
			return e, true
		}
	}
	return EntityView{}, false
}

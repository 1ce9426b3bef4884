// Package detect finds overlapping bodies for the spacewar engine.
package detect

import "github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"

// Circles reports every pair of alive bodies whose circles touch and whose
// category masks accept each other. Boundary edges are left to the integrator.
type Circles struct{}

// Detect returns contacts in store slot order.
func (Circles) Detect(s *core.Store) []core.Contact {
	bodies := make([]*core.Entity, 0, s.Len())
	s.ForEachAlive(func(e *core.Entity) {
		if e.Kind() != core.KindBoundaryEdge {
			bodies = append(bodies, e)
		}
	})

	var contacts []core.Contact
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if !a.Mask.Has(b.Category()) || !b.Mask.Has(a.Category()) {
				continue
			}
			if Overlap(a.Pos, a.Radius, b.Pos, b.Radius) {
				contacts = append(contacts, core.Contact{A: a.ID, B: b.ID})
			}
		}
	}
	return contacts
}

// Overlap reports whether two circles touch.
func Overlap(p1 core.Vec2, r1 float64, p2 core.Vec2, r2 float64) bool {
	r := r1 + r2
	return p1.DistSq(p2) <= r*r
}

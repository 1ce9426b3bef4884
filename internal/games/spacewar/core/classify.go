package core

// HazardMode selects what touching the hazard does to a ship.
type HazardMode uint8

const (
	HazardNone     HazardMode = iota // gravity variants: contact is not an event
	HazardRelocate                   // ship is moved to a random arena point
	HazardLethal                     // ship dies
)

// Rules are the variant flags consulted by Classify.
type Rules struct {
	Hazard HazardMode
}

// OutcomeKind enumerates contact resolutions.
type OutcomeKind uint8

const (
	OutcomeIgnore OutcomeKind = iota
	OutcomeRelocate
	OutcomeKillBoth
	OutcomeKillOne
	OutcomeStopAtEdge
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRelocate:
		return "relocate"
	case OutcomeKillBoth:
		return "kill-both"
	case OutcomeKillOne:
		return "kill-one"
	case OutcomeStopAtEdge:
		return "stop-at-edge"
	default:
		return "ignore"
	}
}

// Outcome is the resolution of one contact.
//
//   - Relocate: Ship moves to a random point. The point is drawn by the World
//     when the outcome is applied so classification stays pure.
//   - KillBoth: A and B die.
//   - KillOne: Victim dies; Projectile, when set, is consumed.
//   - StopAtEdge: Ship loses the velocity component along -Normal.
type Outcome struct {
	Kind       OutcomeKind
	Ship       ID
	A, B       ID
	Victim     ID
	Projectile ID
	Normal     Vec2
}

// Classify decides the outcome of a contact between a and b.
// The pair is ordered by category rank so each rule is written once.
func Classify(a, b *Entity, rules Rules) Outcome {
	if a == nil || b == nil || a.ID == b.ID || !a.Alive || !b.Alive {
		return Outcome{}
	}
	if a.category.Rank() > b.category.Rank() || (a.category == b.category && a.ID > b.ID) {
		a, b = b, a
	}
	if a.category != CategoryShip {
		// projectile/projectile, projectile/hazard, projectile/edge and the rest
		return Outcome{}
	}

	switch b.category {
	case CategoryShip:
		return Outcome{Kind: OutcomeKillBoth, A: a.ID, B: b.ID}

	case CategoryProjectile:
		if b.Owner == a.ID {
			return Outcome{}
		}
		return Outcome{Kind: OutcomeKillOne, Victim: a.ID, Projectile: b.ID}

	case CategoryHazard:
		switch rules.Hazard {
		case HazardRelocate:
			return Outcome{Kind: OutcomeRelocate, Ship: a.ID}
		case HazardLethal:
			return Outcome{Kind: OutcomeKillOne, Victim: a.ID}
		default:
			return Outcome{}
		}

	case CategoryBoundaryEdge:
		return Outcome{Kind: OutcomeStopAtEdge, Ship: a.ID, Normal: b.Normal}
	}
	return Outcome{}
}

// StopAtEdge cancels the component of v moving against the inward normal n.
// Outbound and tangential components are preserved.
func StopAtEdge(v, n Vec2) Vec2 {
	vn := v.Dot(n)
	if vn >= 0 {
		return v
	}
	return v.Sub(n.Scale(vn))
}

package core

import "math"

// Boundary selects the arena border policy.
type Boundary uint8

const (
	BoundaryWrap Boundary = iota
	BoundaryEdge
)

// Side names one of the four arena borders.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideBottom
	SideTop
)

// Gravity is the pull of the central hazard.
type Gravity struct {
	Enabled            bool
	Center             Vec2
	Strength           float64
	MinDistance        float64
	AffectsProjectiles bool
}

// Contact is an overlap between two entities reported for one tick.
type Contact struct {
	A, B ID
}

// StepReport lists what the integrator observed during one step.
type StepReport struct {
	Expired      []ID      // projectiles whose lifetime ran out
	EdgeContacts []Contact // (body, edge) pairs in edge mode
}

// Integrator advances every alive, non-static body by one fixed step.
type Integrator struct {
	Width, Height float64
	Boundary      Boundary
	Gravity       Gravity
	Edges         [4]ID // edge entities by Side, edge mode only
}

// Step integrates forces, positions, pending rotations and lifetimes, then
// applies the boundary policy.
func (in *Integrator) Step(s *Store, dt float64) StepReport {
	var rep StepReport

	s.ForEachAlive(func(e *Entity) {
		if e.Static {
			return
		}

		if in.Gravity.Enabled && (e.kind == KindShip || (e.kind == KindProjectile && in.Gravity.AffectsProjectiles)) {
			e.Vel = e.Vel.Add(in.gravityAt(e.Pos).Scale(dt))
		}

		if e.force != (Vec2{}) {
			e.Vel = e.Vel.Add(e.force.Scale(dt / e.Mass))
			e.force = Vec2{}
		}

		e.Pos = e.Pos.Add(e.Vel.Scale(dt))

		if e.Ship != nil && e.Ship.Turn != 0 {
			e.Heading = NormalizeAngle(e.Heading + e.Ship.Turn)
			e.Ship.Turn = 0
		}

		if e.kind == KindProjectile {
			e.TTL -= dt
			if e.TTL <= 0 {
				rep.Expired = append(rep.Expired, e.ID)
			}
		}

		switch in.Boundary {
		case BoundaryWrap:
			e.Pos.X = wrap(e.Pos.X, in.Width)
			e.Pos.Y = wrap(e.Pos.Y, in.Height)
		case BoundaryEdge:
			if e.kind == KindProjectile {
				return
			}
			for _, side := range in.clamp(e) {
				rep.EdgeContacts = append(rep.EdgeContacts, Contact{A: e.ID, B: in.Edges[side]})
			}
		}
	})

	return rep
}

// gravityAt returns the acceleration toward the hazard centre at p.
func (in *Integrator) gravityAt(p Vec2) Vec2 {
	d := in.Gravity.Center.Sub(p)
	distSq := math.Max(d.LenSq(), in.Gravity.MinDistance*in.Gravity.MinDistance)
	if distSq == 0 {
		return Vec2{}
	}
	return d.Normalized().Scale(in.Gravity.Strength / distSq)
}

// clamp keeps e inside [r, W-r]x[r, H-r] and returns the sides it touched.
func (in *Integrator) clamp(e *Entity) []Side {
	var sides []Side
	r := e.Radius
	if e.Pos.X < r {
		e.Pos.X = r
		sides = append(sides, SideLeft)
	} else if e.Pos.X > in.Width-r {
		e.Pos.X = in.Width - r
		sides = append(sides, SideRight)
	}
	if e.Pos.Y < r {
		e.Pos.Y = r
		sides = append(sides, SideBottom)
	} else if e.Pos.Y > in.Height-r {
		e.Pos.Y = in.Height - r
		sides = append(sides, SideTop)
	}
	return sides
}

// EdgeNormal returns the inward normal of a side.
func EdgeNormal(side Side) Vec2 {
	switch side {
	case SideLeft:
		return V(1, 0)
	case SideRight:
		return V(-1, 0)
	case SideBottom:
		return V(0, 1)
	default:
		return V(0, -1)
	}
}

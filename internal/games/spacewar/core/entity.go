package core

// Kind is the closed set of entity kinds.
type Kind uint8

const (
	KindShip Kind = iota
	KindProjectile
	KindHazard
	KindBoundaryEdge
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindHazard:
		return "hazard"
	case KindBoundaryEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Category tags an entity for contact masking. Its numeric value is its
// rank when a contact pair is ordered.
type Category uint8

const (
	CategoryShip Category = iota
	CategoryProjectile
	CategoryHazard
	CategoryBoundaryEdge
)

// Rank orders categories Ship < Projectile < Hazard < BoundaryEdge.
func (c Category) Rank() int { return int(c) }

func (c Category) String() string {
	return Kind(c).String()
}

// CategoryFor returns the category fixed for a kind.
func CategoryFor(k Kind) Category {
	switch k {
	case KindProjectile:
		return CategoryProjectile
	case KindHazard:
		return CategoryHazard
	case KindBoundaryEdge:
		return CategoryBoundaryEdge
	default:
		return CategoryShip
	}
}

// CategorySet is a bitmask of categories.
type CategorySet uint8

// Categories builds a set from the given categories.
func Categories(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool { return s&(1<<c) != 0 }

// DefaultMask returns the categories an entity of kind k can touch.
func DefaultMask(k Kind) CategorySet {
	switch k {
	case KindShip:
		return Categories(CategoryShip, CategoryProjectile, CategoryHazard, CategoryBoundaryEdge)
	case KindProjectile:
		return Categories(CategoryShip)
	default:
		return Categories(CategoryShip)
	}
}

// Role identifies which side a ship flies for.
type Role uint8

const (
	RoleNone Role = iota
	RolePlayer
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// ShipState is the ship-only part of an entity.
type ShipState struct {
	Role   Role
	Dead   bool    // set exactly once, when the ship dies
	Thrust bool    // thrusting this tick
	Turn   float64 // pending rotation in radians, consumed by the integrator
}

// Entity is a body in the arena.
type Entity struct {
	ID      ID
	Pos     Vec2
	Vel     Vec2
	Heading float64 // radians, 0 = up
	Mass    float64
	Radius  float64
	Owner   ID // firing ship, projectiles only
	Alive   bool
	TTL     float64 // seconds left, projectiles only
	Normal  Vec2    // inward normal, boundary edges only
	Static  bool    // never integrated
	Mask    CategorySet
	Ship    *ShipState

	kind     Kind
	category Category
	force    Vec2
}

// Kind returns the entity kind.
func (e *Entity) Kind() Kind { return e.kind }

// Category returns the contact category fixed at creation.
func (e *Entity) Category() Category { return e.category }

// ApplyForce accumulates a force consumed by the next integration step.
func (e *Entity) ApplyForce(f Vec2) { e.force = e.force.Add(f) }

// ApplyImpulse changes velocity immediately by j/m.
func (e *Entity) ApplyImpulse(j Vec2) { e.Vel = e.Vel.Add(j.Scale(1 / e.Mass)) }

// IsShip reports whether the entity is a ship with the given role.
func (e *Entity) IsShip(role Role) bool {
	return e.kind == KindShip && e.Ship != nil && e.Ship.Role == role
}

// Spawn carries the initial state for Store.Create.
type Spawn struct {
	Pos     Vec2
	Vel     Vec2
	Heading float64
	Mass    float64
	Radius  float64
	Owner   ID
	TTL     float64
	Normal  Vec2
	Role    Role // ships only
}

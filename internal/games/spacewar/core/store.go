package core

import "fmt"

// ID encodes a 32-bit slot index in the lower bits and a 32-bit generation
// in the upper bits. Generations start at 1 so the zero ID never names an entity.
type ID uint64

// NoID is the zero ID.
const NoID ID = 0

func newID(index, generation uint32) ID {
	return ID(uint64(generation)<<32 | uint64(index))
}

func (id ID) Index() uint32      { return uint32(id) }
func (id ID) Generation() uint32 { return uint32(id >> 32) }
func (id ID) IsZero() bool       { return id == NoID }

func (id ID) String() string {
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}

// Store owns every entity. Removal invalidates the ID immediately; slots are
// reused through a free list with a bumped generation.
type Store struct {
	slots       []*Entity
	generations []uint32
	freeList    []uint32
	count       int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots:       make([]*Entity, 0, 64),
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 32),
	}
}

// Create adds an entity and returns its ID.
// It panics on a NaN position or velocity, a non-positive mass on a moving
// body, or a negative radius.
func (s *Store) Create(kind Kind, sp Spawn) ID {
	static := kind == KindHazard || kind == KindBoundaryEdge
	if sp.Pos.IsNaN() || sp.Vel.IsNaN() {
		panic(fmt.Sprintf("core: %s created at NaN position", kind))
	}
	if !static && !(sp.Mass > 0) {
		panic(fmt.Sprintf("core: %s created with mass %g", kind, sp.Mass))
	}
	if sp.Radius < 0 {
		panic(fmt.Sprintf("core: %s created with radius %g", kind, sp.Radius))
	}

	var idx uint32
	if n := len(s.freeList); n > 0 {
		idx = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, nil)
		s.generations = append(s.generations, 1)
	}

	id := newID(idx, s.generations[idx])
	e := &Entity{
		ID:       id,
		Pos:      sp.Pos,
		Vel:      sp.Vel,
		Heading:  NormalizeAngle(sp.Heading),
		Mass:     sp.Mass,
		Radius:   sp.Radius,
		Owner:    sp.Owner,
		Alive:    true,
		TTL:      sp.TTL,
		Normal:   sp.Normal,
		Static:   static,
		Mask:     DefaultMask(kind),
		kind:     kind,
		category: CategoryFor(kind),
	}
	if kind == KindShip {
		e.Ship = &ShipState{Role: sp.Role}
	}
	s.slots[idx] = e
	s.count++
	return id
}

// Get returns the entity for id, or false if it was removed.
func (s *Store) Get(id ID) (*Entity, bool) {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(s.slots) {
		return nil, false
	}
	if s.generations[idx] != id.Generation() || s.slots[idx] == nil {
		return nil, false
	}
	return s.slots[idx], true
}

// Remove deletes an entity. Stale IDs are ignored.
func (s *Store) Remove(id ID) {
	if _, ok := s.Get(id); !ok {
		return
	}
	idx := id.Index()
	s.slots[idx] = nil
	s.generations[idx]++
	s.freeList = append(s.freeList, idx)
	s.count--
}

// MarkDead clears the alive flag. It returns true only on the alive to dead
// transition. Dead entities stay enumerable until removed.
func (s *Store) MarkDead(id ID) bool {
	e, ok := s.Get(id)
	if !ok || !e.Alive {
		return false
	}
	e.Alive = false
	if e.Ship != nil {
		e.Ship.Dead = true
		e.Ship.Thrust = false
		e.Ship.Turn = 0
	}
	return true
}

// ForEachAlive calls fn for every alive entity in slot order.
// fn may remove entities.
func (s *Store) ForEachAlive(fn func(e *Entity)) {
	for i := 0; i < len(s.slots); i++ {
		if e := s.slots[i]; e != nil && e.Alive {
			fn(e)
		}
	}
}

// Each calls fn for every entity, alive or dead, in slot order.
func (s *Store) Each(fn func(e *Entity)) {
	for i := 0; i < len(s.slots); i++ {
		if e := s.slots[i]; e != nil {
			fn(e)
		}
	}
}

// Len returns the number of entities in the store.
func (s *Store) Len() int { return s.count }

// Count returns the number of alive entities of kind k.
func (s *Store) Count(k Kind) int {
	n := 0
	s.ForEachAlive(func(e *Entity) {
		if e.kind == k {
			n++
		}
	})
	return n
}

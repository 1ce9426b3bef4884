package core

// Intent is one tick of decisions from a pilot.
type Intent struct {
	Turn   float64 // rotation impulse in radians
	Thrust bool
	Fire   bool
}

// Control is the continuous input state of one ship.
type Control struct {
	Turn   float64 // normalized turn rate after clamping
	Thrust bool
}

// IntentQueue holds discrete fire intents in FIFO order and the latest
// continuous control per role.
type IntentQueue struct {
	fires    []Role
	controls [3]Control
}

// NewIntentQueue creates an empty queue.
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{fires: make([]Role, 0, 8)}
}

// PushFire appends a fire intent for role.
func (q *IntentQueue) PushFire(role Role) {
	q.fires = append(q.fires, role)
}

// Drain returns all queued fire intents and empties the queue.
func (q *IntentQueue) Drain() []Role {
	if len(q.fires) == 0 {
		return nil
	}
	out := q.fires
	q.fires = make([]Role, 0, cap(out))
	return out
}

// Len returns the number of queued fire intents.
func (q *IntentQueue) Len() int { return len(q.fires) }

// SetControl replaces the continuous control for role.
func (q *IntentQueue) SetControl(role Role, c Control) {
	if int(role) < len(q.controls) {
		q.controls[role] = c
	}
}

// Control returns the continuous control for role.
func (q *IntentQueue) Control(role Role) Control {
	if int(role) < len(q.controls) {
		return q.controls[role]
	}
	return Control{}
}

// Clear drops queued fires and resets controls.
func (q *IntentQueue) Clear() {
	q.fires = q.fires[:0]
	q.controls = [3]Control{}
}

// ClampControl limits a turn signal to [-limit, limit] and zeroes values
// whose magnitude is below deadZone.
func ClampControl(turn, limit, deadZone float64) float64 {
	if turn != turn {
		return 0
	}
	if turn > -deadZone && turn < deadZone {
		return 0
	}
	if turn > limit {
		return limit
	}
	if turn < -limit {
		return -limit
	}
	return turn
}

package core

// Phase is the round lifecycle state.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseEnding
	PhaseResetting
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	case PhaseResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// Round is the round controller state.
type Round struct {
	Phase     Phase
	Score     int
	Number    int    // 1-based
	Deadline  uint64 // tick at which Ending becomes Resetting
	StartedAt uint64 // tick the round began
}

// PhaseChange records one lifecycle transition.
type PhaseChange struct {
	Tick  uint64
	Round int
	From  Phase
	To    Phase
}

// RoundResult records one finished round.
type RoundResult struct {
	Round      int
	PlayerDead bool
	EnemyDead  bool
	Delta      int
	Score      int    // score after Delta
	Ticks      uint64 // round length in ticks
}

// scheduleEnd moves Active to Ending and sets the deadline.
// It returns false when the round is already ending; the deadline never moves.
func (r *Round) scheduleEnd(now, delay uint64) bool {
	if r.Phase != PhaseActive {
		return false
	}
	r.Phase = PhaseEnding
	r.Deadline = now + delay
	return true
}

// due reports whether the Ending deadline has been reached.
func (r *Round) due(now uint64) bool {
	return r.Phase == PhaseEnding && now >= r.Deadline
}

package clock

// Simulation time is a pure function of the action count: one player
// action advances the clock by one simulated minute, 60 minutes make an
// hour, 24 hours make a day. Nothing here touches wall-clock time.
const (
	ActionsPerHour = 60
	HoursPerDay    = 24
)

// TickContext is a snapshot of the simulation clock. It is plain value
// state: every mutation produces a new copy, so prior snapshots stay
// valid for logging and inspection.
type TickContext struct {
	Tick  int64 // total actions processed since epoch 0
	Hours int64 // Tick / 60
	Days  int64 // Hours / 24
}

// Initial returns the epoch-0 context.
func Initial() TickContext {
	return TickContext{}
}

// Derive computes the full context for a given action count.
// tick must be non-negative; callers own that precondition.
func Derive(tick int64) TickContext {
	hours := tick / ActionsPerHour
	return TickContext{
		Tick:  tick,
		Hours: hours,
		Days:  hours / HoursPerDay,
	}
}

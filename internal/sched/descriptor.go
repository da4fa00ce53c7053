package sched

import "fmt"

// Cadence declares how often a registered system wants to run.
type Cadence string

const (
	CadencePerAction Cadence = "per_action" // every player action
	CadenceHourly    Cadence = "hourly"     // whenever a simulated hour completes
	CadenceDaily     Cadence = "daily"      // whenever a simulated day completes
)

// ParseCadence maps a config/script string onto the closed cadence set.
func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case CadencePerAction, CadenceHourly, CadenceDaily:
		return Cadence(s), nil
	default:
		return "", fmt.Errorf("unknown cadence %q", s)
	}
}

// Descriptor identifies a registered system and its declared cadence.
// The dispatch engine only reads descriptors; it never executes systems.
type Descriptor struct {
	ID      string
	Cadence Cadence
}

// Registry supplies the current set of registered systems. The engine
// re-enumerates on every Advance call and caches nothing, so registry
// mutations between actions take effect on the next action.
type Registry interface {
	Enumerate() []Descriptor
}

package sched

import "github.com/driftvale/server/internal/clock"

// Engine owns the simulation clock for one world and decides, per player
// action, which registered systems are due. One logical action loop drives
// one engine; concurrent Advance calls on the same instance are a caller
// bug, so the engine takes no locks.
type Engine struct {
	registry Registry
	ctx      clock.TickContext
}

// NewEngine creates an engine at epoch 0 backed by the given registry.
func NewEngine(registry Registry) *Engine {
	return &Engine{registry: registry, ctx: clock.Initial()}
}

// Advance processes exactly one player action: it steps the clock one
// simulated minute, then marks a system due when its cadence is
// per_action, or hourly and an hour boundary was just crossed, or daily
// and a day boundary was just crossed.
//
// Crossings use strict increase against the previously held context, not
// inequality. A context that was overwritten backward in time therefore
// reports no crossing even though its hour count differs.
//
// The due list preserves registry enumeration order and is not
// deduplicated; an empty registry yields an empty list. Advance cannot
// fail.
func (e *Engine) Advance() (clock.TickContext, []Descriptor) {
	next := clock.Derive(e.ctx.Tick + 1)
	crossedHour := next.Hours > e.ctx.Hours
	crossedDay := next.Days > e.ctx.Days
	e.ctx = next

	var due []Descriptor
	for _, d := range e.registry.Enumerate() {
		switch d.Cadence {
		case CadencePerAction:
			due = append(due, d)
		case CadenceHourly:
			if crossedHour {
				due = append(due, d)
			}
		case CadenceDaily:
			if crossedDay {
				due = append(due, d)
			}
		}
	}
	return next, due
}

// SetContext unconditionally installs ctx as the held context. The value
// is trusted as-is: no re-derivation, no consistency check. Used to
// restore a persisted snapshot and for deterministic test setup.
func (e *Engine) SetContext(ctx clock.TickContext) {
	e.ctx = ctx
}

// GetContext returns a copy of the held context; mutating the returned
// value never affects the engine.
func (e *Engine) GetContext() clock.TickContext {
	return e.ctx
}

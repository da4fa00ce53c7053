// Package event carries the per-action advance feed between the action
// loop and its observers (dispatch log recorder, debug listeners).
package event

import (
	"github.com/driftvale/server/internal/clock"
	"github.com/driftvale/server/internal/sched"
)

// Advance describes one processed player action: the clock snapshot after
// the action and the systems that were due on it.
type Advance struct {
	Context clock.TickContext
	Due     []sched.Descriptor
}

// Feed is a double-buffered advance feed. Events emitted while processing
// action N are delivered at the start of action N+1, after SwapBuffers.
// Owned by the action loop goroutine; no locking.
type Feed struct {
	front    []Advance
	back     []Advance
	handlers []func(Advance)
}

func NewFeed() *Feed {
	return &Feed{
		front: make([]Advance, 0, 8),
		back:  make([]Advance, 0, 8),
	}
}

// Emit queues an event into the back buffer (readable next action).
func (f *Feed) Emit(ev Advance) {
	f.back = append(f.back, ev)
}

// Subscribe registers a handler for delivered events.
func (f *Feed) Subscribe(fn func(Advance)) {
	f.handlers = append(f.handlers, fn)
}

// SwapBuffers rotates back→front and clears the new back buffer.
// Called once at the start of each action.
func (f *Feed) SwapBuffers() {
	f.front, f.back = f.back, f.front
	f.back = f.back[:0]
}

// DispatchAll delivers all front-buffer events to the subscribed handlers.
func (f *Feed) DispatchAll() {
	for _, ev := range f.front {
		for _, h := range f.handlers {
			h(ev)
		}
	}
}

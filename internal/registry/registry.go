// Package registry holds the mutable set of system descriptors a world
// dispatches against. Descriptors come from the YAML manifest and from
// Lua script declarations; GM tooling may add or remove entries while
// the world is running.
package registry

import (
	"github.com/driftvale/server/internal/sched"
)

// Registry is an insertion-ordered descriptor set. Like the rest of the
// world state it is owned by the action loop goroutine; it takes no locks.
type Registry struct {
	descriptors []sched.Descriptor
}

func New() *Registry {
	return &Registry{descriptors: make([]sched.Descriptor, 0, 16)}
}

// Add appends a descriptor. Duplicate IDs are allowed and dispatch as
// many times as they appear; deduplication is the registrar's problem.
func (r *Registry) Add(id string, cadence sched.Cadence) {
	r.descriptors = append(r.descriptors, sched.Descriptor{ID: id, Cadence: cadence})
}

// Remove deletes every descriptor with the given id. Returns how many
// entries were removed.
func (r *Registry) Remove(id string) int {
	kept := r.descriptors[:0]
	removed := 0
	for _, d := range r.descriptors {
		if d.ID == id {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	r.descriptors = kept
	return removed
}

// Enumerate returns the descriptors in insertion order. The slice is a
// fresh copy on every call so the dispatch engine never retains a stale
// reference across registry mutations.
func (r *Registry) Enumerate() []sched.Descriptor {
	out := make([]sched.Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Count returns the number of registered descriptors.
func (r *Registry) Count() int {
	return len(r.descriptors)
}

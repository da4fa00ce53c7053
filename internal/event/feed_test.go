package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftvale/server/internal/clock"
)

func TestFeed_DeliversOneActionLate(t *testing.T) {
	f := NewFeed()
	var seen []int64
	f.Subscribe(func(ev Advance) { seen = append(seen, ev.Context.Tick) })

	f.Emit(Advance{Context: clock.Derive(1)})

	// Not yet swapped: nothing delivered.
	f.DispatchAll()
	assert.Empty(t, seen)

	// Next action: swap, then deliver last action's events.
	f.SwapBuffers()
	f.DispatchAll()
	require.Equal(t, []int64{1}, seen)

	// Swapping again clears the delivered buffer.
	f.SwapBuffers()
	f.DispatchAll()
	assert.Equal(t, []int64{1}, seen)
}

func TestFeed_MultipleSubscribersAndEvents(t *testing.T) {
	f := NewFeed()
	var a, b int
	f.Subscribe(func(Advance) { a++ })
	f.Subscribe(func(Advance) { b++ })

	f.Emit(Advance{Context: clock.Derive(1)})
	f.Emit(Advance{Context: clock.Derive(2)})
	f.SwapBuffers()
	f.DispatchAll()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestFeed_EmitDuringDispatchLandsNextAction(t *testing.T) {
	f := NewFeed()
	delivered := 0
	f.Subscribe(func(ev Advance) {
		delivered++
		if ev.Context.Tick == 1 {
			f.Emit(Advance{Context: clock.Derive(2)})
		}
	})

	f.Emit(Advance{Context: clock.Derive(1)})
	f.SwapBuffers()
	f.DispatchAll()
	assert.Equal(t, 1, delivered)

	f.SwapBuffers()
	f.DispatchAll()
	assert.Equal(t, 2, delivered)
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake(t *testing.T) {
	start := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	t.Run("Delivers one tick per elapsed period", func(t *testing.T) {
		// Given: a one second ticker
		clk := NewFake(start)
		ticker := clk.NewTicker(time.Second)

		// When: three seconds pass
		clk.Advance(3 * time.Second)

		// Then: three ticks are queued
		assert.Len(t, ticker.C(), 3)
	})

	t.Run("Runs timers once they are due", func(t *testing.T) {
		clk := NewFake(start)
		fired := 0
		clk.AfterFunc(2*time.Second, func() { fired++ })

		clk.Advance(time.Second)
		require.Equal(t, 0, fired)

		clk.Advance(time.Second)
		assert.Equal(t, 1, fired)
		assert.Zero(t, clk.PendingTimers())
	})

	t.Run("Stopped timers never fire", func(t *testing.T) {
		clk := NewFake(start)
		fired := false
		timer := clk.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		clk.Advance(time.Minute)

		assert.False(t, fired)
		assert.False(t, timer.Stop())
	})
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerLifecycle(t *testing.T) {
	start := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	timer := Timer{ID: "teeth", Duration: 2 * time.Minute, Type: TimerShort, State: TimerNotStarted{}}

	_, ok := timer.Remaining(start)
	assert.False(t, ok, "not started timers have no remaining time")

	running := timer.Start(start)
	left, ok := running.Remaining(start.Add(30 * time.Second))
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, left)

	// Overdue timers clamp at zero rather than going negative.
	left, ok = running.Remaining(start.Add(5 * time.Minute))
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), left)

	done := running.Complete()
	_, ok = done.Remaining(start)
	assert.False(t, ok)

	// Original values untouched along the way.
	assert.Equal(t, TimerNotStarted{}, timer.State.(TimerNotStarted))
}

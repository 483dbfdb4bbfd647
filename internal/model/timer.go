package model

import "time"

// TimerID uniquely identifies a timer.
type TimerID string

// TimerType distinguishes short (seconds-scale) and long (minutes-scale)
// timers; the presentation layer renders them differently.
type TimerType string

const (
	TimerShort TimerType = "Short"
	TimerLong  TimerType = "Long"
)

// TimerState is the closed lifecycle of a timer.
type TimerState interface {
	isTimerState()
}

// TimerNotStarted is the initial state.
type TimerNotStarted struct{}

// TimerRunning records when the countdown began.
type TimerRunning struct {
	StartedAt time.Time
}

// TimerCompleted is the terminal state.
type TimerCompleted struct{}

func (TimerNotStarted) isTimerState() {}
func (TimerRunning) isTimerState()    {}
func (TimerCompleted) isTimerState()  {}

// Timer is a simple countdown attached to a routine, e.g. "brush teeth for
// two minutes". Like the other entities it is an immutable value.
type Timer struct {
	ID       TimerID
	Duration time.Duration
	Type     TimerType
	State    TimerState
}

// Start returns the timer running from the given instant.
func (t Timer) Start(at time.Time) Timer {
	t.State = TimerRunning{StartedAt: at}
	return t
}

// Complete returns the timer in its terminal state.
func (t Timer) Complete() Timer {
	t.State = TimerCompleted{}
	return t
}

// Remaining returns the time left at now, clamped at zero. It returns
// ok == false unless the timer is running.
func (t Timer) Remaining(now time.Time) (time.Duration, bool) {
	running, ok := t.State.(TimerRunning)
	if !ok {
		return 0, false
	}
	left := t.Duration - now.Sub(running.StartedAt)
	if left < 0 {
		left = 0
	}
	return left, true
}

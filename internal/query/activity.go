// Package query holds pure, side-effect-free read models over the checklist
// domain.
package query

import (
	"time"

	"github.com/pyanpyan/routinely/internal/model"
)

// ActivityState classifies a checklist against a moment in time, used to
// split the library into active and inactive sections.
type ActivityState string

const (
	Active   ActivityState = "active"
	Inactive ActivityState = "inactive"
)

// GetActivityState evaluates the checklist's schedule at the given local
// time. The day filter short-circuits; the time range check is inclusive at
// both bounds.
func GetActivityState(c model.Checklist, at time.Time) ActivityState {
	if !c.Schedule.AppliesOn(model.WeekdayOf(at)) {
		return Inactive
	}
	if c.Schedule.TimeRange == nil || c.Schedule.TimeRange.Contains(model.TimeOfDayFrom(at)) {
		return Active
	}
	return Inactive
}

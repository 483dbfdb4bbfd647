package model

import (
	"encoding/json"
	"fmt"
)

// ChecklistSchedule gates when a checklist is active: a set of weekdays plus
// a time-of-day range. An empty DaysOfWeek means every day, not no days.
type ChecklistSchedule struct {
	DaysOfWeek []Weekday `json:"daysOfWeek"`
	TimeRange  TimeRange `json:"timeRange"`
}

// AlwaysOnSchedule is the schedule with no day or time restriction.
func AlwaysOnSchedule() ChecklistSchedule {
	return ChecklistSchedule{DaysOfWeek: nil, TimeRange: AllDay{}}
}

// IsAlwaysOn reports whether the schedule has no restriction at all.
func (s ChecklistSchedule) IsAlwaysOn() bool {
	return len(s.DaysOfWeek) == 0 && s.TimeRange != nil && s.TimeRange.IsAllDay()
}

// AppliesOn reports whether day passes the schedule's day filter.
func (s ChecklistSchedule) AppliesOn(day Weekday) bool {
	if len(s.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the schedule. A nil day set is written as [] so the
// document always carries an array and survives its own import validation.
func (s ChecklistSchedule) MarshalJSON() ([]byte, error) {
	days := s.DaysOfWeek
	if days == nil {
		days = []Weekday{}
	}
	return json.Marshal(struct {
		DaysOfWeek []Weekday `json:"daysOfWeek"`
		TimeRange  TimeRange `json:"timeRange"`
	}{DaysOfWeek: days, TimeRange: s.TimeRange})
}

// UnmarshalJSON decodes the schedule, resolving the TimeRange discriminator.
func (s *ChecklistSchedule) UnmarshalJSON(data []byte) error {
	var w struct {
		DaysOfWeek []Weekday       `json:"daysOfWeek"`
		TimeRange  json.RawMessage `json:"timeRange"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding schedule: %w", err)
	}
	if len(w.TimeRange) == 0 {
		return fmt.Errorf("schedule missing timeRange")
	}
	tr, err := unmarshalTimeRange(w.TimeRange)
	if err != nil {
		return err
	}
	days := w.DaysOfWeek
	if len(days) == 0 {
		// Empty and absent both mean every day; keep one in-memory form.
		days = nil
	}
	s.DaysOfWeek = days
	s.TimeRange = tr
	return nil
}

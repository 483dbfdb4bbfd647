package model

import (
	"encoding/json"
	"fmt"
)

// TimeRange is the closed set of time-of-day windows a schedule can use:
// either AllDay or a Specific start/end span. On the wire both forms carry a
// "type" discriminator.
type TimeRange interface {
	// Contains reports whether t falls inside the range. Bounds are
	// inclusive at both ends for Specific ranges.
	Contains(t TimeOfDay) bool

	// IsAllDay reports whether the range covers the entire day.
	IsAllDay() bool

	isTimeRange()
}

// AllDay is the unbounded time range; it contains every time of day.
type AllDay struct{}

func (AllDay) Contains(TimeOfDay) bool { return true }
func (AllDay) IsAllDay() bool          { return true }
func (AllDay) isTimeRange()            {}

// Specific is a bounded time range. Commands enforce StartTime < EndTime;
// the raw value does not self-validate.
type Specific struct {
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
}

func (r Specific) Contains(t TimeOfDay) bool {
	return !t.Before(r.StartTime) && !t.After(r.EndTime)
}

func (Specific) IsAllDay() bool { return false }
func (Specific) isTimeRange()   {}

const (
	timeRangeTypeAllDay   = "AllDay"
	timeRangeTypeSpecific = "Specific"
)

func (AllDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{Type: timeRangeTypeAllDay})
}

func (r Specific) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string    `json:"type"`
		StartTime TimeOfDay `json:"startTime"`
		EndTime   TimeOfDay `json:"endTime"`
	}{Type: timeRangeTypeSpecific, StartTime: r.StartTime, EndTime: r.EndTime})
}

// unmarshalTimeRange decodes the tagged wire form into the matching concrete
// range. Unknown sibling fields are ignored.
func unmarshalTimeRange(data []byte) (TimeRange, error) {
	var w struct {
		Type      string     `json:"type"`
		StartTime *TimeOfDay `json:"startTime"`
		EndTime   *TimeOfDay `json:"endTime"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding time range: %w", err)
	}
	switch w.Type {
	case timeRangeTypeAllDay:
		return AllDay{}, nil
	case timeRangeTypeSpecific:
		if w.StartTime == nil || w.EndTime == nil {
			return nil, fmt.Errorf("specific time range missing startTime or endTime")
		}
		return Specific{StartTime: *w.StartTime, EndTime: *w.EndTime}, nil
	default:
		return nil, fmt.Errorf("unknown time range type %q", w.Type)
	}
}

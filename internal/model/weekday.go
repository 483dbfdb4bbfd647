package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday is a day of the week, Monday-first. The wire form is the symbolic
// uppercase name ("MONDAY" .. "SUNDAY").
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
	Saturday:  "SATURDAY",
	Sunday:    "SUNDAY",
}

// Weekdays lists all days Monday through Sunday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekdayOf maps the calendar day of t to a Weekday.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(int(t.Weekday()))
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	name, ok := weekdayNames[d]
	if !ok {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return json.Marshal(name)
}

func (d *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding weekday: %w", err)
	}
	for day, name := range weekdayNames {
		if name == s {
			*d = day
			return nil
		}
	}
	return fmt.Errorf("unknown weekday %q", s)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestAllDayContainsEverything(t *testing.T) {
	r := AllDay{}
	assert.True(t, r.IsAllDay())
	for _, s := range []string{"00:00", "12:30", "23:59"} {
		assert.True(t, r.Contains(mustTime(t, s)), s)
	}
}

func TestSpecificContainsInclusiveBounds(t *testing.T) {
	r := Specific{StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "09:00")}

	tests := []struct {
		time string
		want bool
	}{
		{"05:59", false},
		{"06:00", true}, // inclusive start
		{"07:00", true},
		{"09:00", true}, // inclusive end
		{"09:01", false},
		{"15:00", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(mustTime(t, tt.time)), tt.time)
	}
	assert.False(t, r.IsAllDay())
}

func TestParseTimeOfDayRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{"24:00", "12:60", "-1:00", "garbage"} {
		_, err := ParseTimeOfDay(s)
		assert.Error(t, err, s)
	}
}

func TestScheduleIsAlwaysOn(t *testing.T) {
	assert.True(t, AlwaysOnSchedule().IsAlwaysOn())

	withDays := ChecklistSchedule{DaysOfWeek: []Weekday{Monday}, TimeRange: AllDay{}}
	assert.False(t, withDays.IsAlwaysOn())

	withRange := ChecklistSchedule{
		TimeRange: Specific{StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "09:00")},
	}
	assert.False(t, withRange.IsAlwaysOn())
}

func TestScheduleAppliesOn(t *testing.T) {
	everyDay := AlwaysOnSchedule()
	for _, d := range Weekdays() {
		assert.True(t, everyDay.AppliesOn(d))
	}

	weekdaysOnly := ChecklistSchedule{
		DaysOfWeek: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		TimeRange:  AllDay{},
	}
	assert.True(t, weekdaysOnly.AppliesOn(Wednesday))
	assert.False(t, weekdaysOnly.AppliesOn(Saturday))
}

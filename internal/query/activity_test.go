package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyanpyan/routinely/internal/model"
)

func withSchedule(s model.ChecklistSchedule) model.Checklist {
	return model.Checklist{ID: "x", Name: "X", Schedule: s}
}

func timeOfDay(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	tod, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestDayFilterShortCircuits(t *testing.T) {
	c := withSchedule(model.ChecklistSchedule{
		DaysOfWeek: []model.Weekday{model.Monday},
		TimeRange:  model.AllDay{},
	})

	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Inactive, GetActivityState(c, saturday))
	assert.Equal(t, Active, GetActivityState(c, monday))
}

func TestTimeRangeEvaluatedOnAnyDayWhenSetEmpty(t *testing.T) {
	c := withSchedule(model.ChecklistSchedule{
		TimeRange: model.Specific{
			StartTime: timeOfDay(t, "06:00"),
			EndTime:   timeOfDay(t, "09:00"),
		},
	})

	day := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC) // a Saturday

	tests := []struct {
		clock string
		want  ActivityState
	}{
		{"07:00", Active},
		{"15:00", Inactive},
		{"06:00", Active}, // inclusive start
		{"09:00", Active}, // inclusive end
		{"05:59", Inactive},
		{"09:01", Inactive},
	}
	for _, tt := range tests {
		tod := timeOfDay(t, tt.clock)
		at := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, time.UTC)
		assert.Equal(t, tt.want, GetActivityState(c, at), tt.clock)
	}
}

func TestAlwaysOnIsAlwaysActive(t *testing.T) {
	c := withSchedule(model.AlwaysOnSchedule())
	for day := 1; day <= 7; day++ {
		at := time.Date(2026, 3, day, 3, 33, 0, 0, time.UTC)
		assert.Equal(t, Active, GetActivityState(c, at))
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(42)
	require.Len(t, week, 7)

	byDay := make(map[Weekday]*WeeklySchedule)
	for _, d := range week {
		assert.EqualValues(t, 42, d.ProfessionalID)
		byDay[d.DayOfWeek] = d
	}

	assert.True(t, byDay[WeekdayMonday].IsAvailable)
	assert.True(t, byDay[WeekdayFriday].IsAvailable)
	assert.False(t, byDay[WeekdaySaturday].IsAvailable)
	assert.False(t, byDay[WeekdaySunday].IsAvailable)

	assert.EqualValues(t, DefaultWorkStartTime, *byDay[WeekdayMonday].StartTime)
	assert.EqualValues(t, DefaultWorkEndTime, *byDay[WeekdayMonday].EndTime)
	assert.Nil(t, byDay[WeekdaySunday].StartTime)
}

func TestWeekdayFromTime(t *testing.T) {
	// 2 марта 2026 — понедельник
	assert.Equal(t, WeekdayMonday, WeekdayFromTime(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, WeekdaySunday, WeekdayFromTime(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))
}

func TestWeeklySchedule_CoversTick(t *testing.T) {
	week := DefaultWeek(1)
	var monday *WeeklySchedule
	for _, d := range week {
		if d.DayOfWeek == WeekdayMonday {
			monday = d
		}
	}
	require.NotNil(t, monday)

	assert.True(t, monday.CoversTick("09:00"))
	assert.True(t, monday.CoversTick("16:45"))
	// Конец рабочего дня — полуинтервал
	assert.False(t, monday.CoversTick("17:00"))
	assert.False(t, monday.CoversTick("08:45"))
}

package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

func mondayToFridaySchedule(start, end string) map[domain.Weekday]*domain.WeeklySchedule {
	schedule := make(map[domain.Weekday]*domain.WeeklySchedule)
	for _, day := range domain.AllWeekdays {
		open := day != domain.WeekdaySaturday && day != domain.WeekdaySunday
		s := &domain.WeeklySchedule{DayOfWeek: day, IsAvailable: open}
		if open {
			s.StartTime = ptr.Ptr(types.TimeString(start))
			s.EndTime = ptr.Ptr(types.TimeString(end))
		}
		schedule[day] = s
	}
	return schedule
}

func TestGridTicks(t *testing.T) {
	ticks := gridTicks()

	// 06:00 .. 22:00 включительно, шаг 15 минут
	require.Len(t, ticks, 65)
	assert.Equal(t, types.TimeString("06:00"), ticks[0])
	assert.Equal(t, types.TimeString("22:00"), ticks[64])
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 4 марта 2026 — среда, неделя начинается в понедельник 2 марта
	start := weekStart(time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, monday, start)

	// Понедельник остается на месте
	start = weekStart(monday)
	assert.Equal(t, monday, start)

	// Воскресенье — последний день недели, не первый
	start = weekStart(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, monday, start)
}

func TestBuildWeekView_WorkingAndBlockedTicks(t *testing.T) {
	p := professionalData{
		ID:       1,
		Name:     "Анна",
		Schedule: mondayToFridaySchedule("09:00", "17:00"),
		Blockers: map[string][]*domain.TimeBlocker{
			// Понедельник 2 марта, перерыв 12:00-13:00
			"2026-03-02": {
				{StartTime: ptr.Ptr(types.TimeString("12:00")), EndTime: ptr.Ptr(types.TimeString("13:00"))},
			},
		},
	}

	view := buildWeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []professionalData{p})
	require.Len(t, view.Professionals, 1)
	require.Len(t, view.Professionals[0].Days, 7)
	assert.Equal(t, "2026-03-02", view.StartDate)
	assert.Equal(t, "2026-03-08", view.EndDate)

	monday := view.Professionals[0].Days[0]
	assert.Equal(t, "2026-03-02", monday.Date)

	byTime := make(map[string]Tick)
	for _, tick := range monday.Ticks {
		byTime[tick.Time] = tick
	}

	// Рабочие часы
	assert.False(t, byTime["08:45"].Working)
	assert.True(t, byTime["09:00"].Working)
	assert.True(t, byTime["16:45"].Working)
	assert.False(t, byTime["17:00"].Working)

	// Перерыв: рабочий тик одновременно заблокирован
	assert.True(t, byTime["12:00"].Blocked)
	assert.True(t, byTime["12:00"].Working)
	assert.True(t, byTime["12:45"].Blocked)
	assert.False(t, byTime["13:00"].Blocked)

	// Воскресенье — последний день недели, полностью нерабочее
	sunday := view.Professionals[0].Days[6]
	assert.Equal(t, "2026-03-08", sunday.Date)
	for _, tick := range sunday.Ticks {
		assert.False(t, tick.Working)
	}
}

func TestBuildWeekView_BookingSpanAndCovered(t *testing.T) {
	p := professionalData{
		ID:       1,
		Schedule: mondayToFridaySchedule("09:00", "17:00"),
		Bookings: map[string][]*domain.Booking{
			"2026-03-02": {
				{
					ID:           7,
					Status:       domain.BookingStatusConfirmed,
					StartTime:    "10:00",
					EndTime:      "11:10",
					ServiceName:  "Стрижка",
					CustomerName: "Ольга",
				},
			},
		},
	}

	view := buildWeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []professionalData{p})
	monday := view.Professionals[0].Days[0]

	byTime := make(map[string]Tick)
	for _, tick := range monday.Ticks {
		byTime[tick.Time] = tick
	}

	// Запись на первом тике, 70 минут => 5 тиков
	first := byTime["10:00"]
	require.NotNil(t, first.Booking)
	assert.EqualValues(t, 7, first.Booking.BookingID)
	assert.Equal(t, 5, first.Booking.SpanTicks)
	assert.Equal(t, "10:00", first.Booking.StartTime)
	assert.Equal(t, "11:10", first.Booking.EndTime)
	assert.False(t, first.Covered)

	// Последующие тики покрыты, но без дубликата записи
	for _, tm := range []string{"10:15", "10:30", "10:45", "11:00"} {
		tick := byTime[tm]
		assert.True(t, tick.Covered, "tick %s must be covered", tm)
		assert.Nil(t, tick.Booking)
	}
	assert.False(t, byTime["11:15"].Covered)
}

func TestBuildWeekView_CancelledBookingInvisible(t *testing.T) {
	p := professionalData{
		ID:       1,
		Schedule: mondayToFridaySchedule("09:00", "17:00"),
		Bookings: map[string][]*domain.Booking{
			"2026-03-02": {
				{ID: 7, Status: domain.BookingStatusCancelled, StartTime: "10:00", EndTime: "11:00"},
			},
		},
	}

	view := buildWeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []professionalData{p})
	for _, tick := range view.Professionals[0].Days[0].Ticks {
		assert.Nil(t, tick.Booking)
		assert.False(t, tick.Covered)
	}
}

func TestBuildWeekView_MissingScheduleIsNeutral(t *testing.T) {
	p := professionalData{ID: 1}

	view := buildWeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []professionalData{p})
	require.Len(t, view.Professionals, 1)

	for _, day := range view.Professionals[0].Days {
		require.Len(t, day.Ticks, 65)
		for _, tick := range day.Ticks {
			assert.False(t, tick.Working)
			assert.False(t, tick.Blocked)
			assert.Nil(t, tick.Booking)
		}
	}
}

func TestBuildWeekView_AllDayBlockerBlocksEveryTick(t *testing.T) {
	p := professionalData{
		ID:       1,
		Schedule: mondayToFridaySchedule("09:00", "17:00"),
		Blockers: map[string][]*domain.TimeBlocker{
			"2026-03-02": {{}},
		},
	}

	view := buildWeekView(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []professionalData{p})
	for _, tick := range view.Professionals[0].Days[0].Ticks {
		assert.True(t, tick.Blocked)
	}
}

func TestSpanTicks_MalformedTimesFallBackToSingleTick(t *testing.T) {
	broken := &domain.Booking{StartTime: "10:00", EndTime: "xx:zz"}
	assert.Equal(t, 1, spanTicks(broken))

	inverted := &domain.Booking{StartTime: "11:00", EndTime: "10:00"}
	assert.Equal(t, 1, spanTicks(inverted))
}

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

func timePtr(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func bookingsOn(date string, count int, status domain.BookingStatus) map[string][]*domain.Booking {
	bookings := make([]*domain.Booking, 0, count)
	for i := 0; i < count; i++ {
		bookings = append(bookings, &domain.Booking{Status: status, StartTime: "10:00", EndTime: "11:00"})
	}
	return map[string][]*domain.Booking{date: bookings}
}

func TestBuildMonthView_PaddingAndLength(t *testing.T) {
	// Март 2026 начинается в воскресенье — выравнивания нет
	view := buildMonthView(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, 3, view.Month)
	require.Len(t, view.Days, 31)
	assert.NotNil(t, view.Days[0])

	// Апрель 2026 начинается в среду — три пустых ячейки
	view = buildMonthView(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	require.Len(t, view.Days, 3+30)
	assert.Nil(t, view.Days[0])
	assert.Nil(t, view.Days[1])
	assert.Nil(t, view.Days[2])
	require.NotNil(t, view.Days[3])
	assert.Equal(t, "2026-04-01", view.Days[3].Date)
}

func TestBuildMonthView_CountsAndTotal(t *testing.T) {
	professionals := []professionalData{
		{ID: 1, Name: "Анна", Schedule: mondayToFridaySchedule("09:00", "17:00"), Bookings: bookingsOn("2026-03-02", 2, domain.BookingStatusConfirmed)},
		{ID: 2, Name: "Мария", Schedule: mondayToFridaySchedule("09:00", "17:00"), Bookings: bookingsOn("2026-03-02", 1, domain.BookingStatusPending)},
		{ID: 3, Name: "Ирина", Schedule: mondayToFridaySchedule("09:00", "17:00"), Bookings: bookingsOn("2026-03-02", 4, domain.BookingStatusConfirmed)},
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)
	day := view.Days[1] // 2 марта, понедельник
	require.NotNil(t, day)
	assert.Equal(t, "2026-03-02", day.Date)

	// Все три мастера видимы, переполнения нет
	assert.Equal(t, 7, day.TotalBookings)
	require.Len(t, day.Professionals, 3)
	assert.Equal(t, 0, day.Overflow)

	// Порядок мастеров в сводке повторяет порядок запроса
	assert.EqualValues(t, 1, day.Professionals[0].ProfessionalID)
	assert.Equal(t, 2, day.Professionals[0].Count)
	assert.EqualValues(t, 2, day.Professionals[1].ProfessionalID)
	assert.EqualValues(t, 3, day.Professionals[2].ProfessionalID)
	assert.Equal(t, 4, day.Professionals[2].Count)
}

func TestBuildMonthView_OverflowBeyondThree(t *testing.T) {
	professionals := make([]professionalData, 0, 5)
	for id := int64(1); id <= 5; id++ {
		professionals = append(professionals, professionalData{
			ID:       id,
			Schedule: mondayToFridaySchedule("09:00", "17:00"),
			Bookings: bookingsOn("2026-03-02", int(id), domain.BookingStatusConfirmed),
		})
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)
	day := view.Days[1]
	require.NotNil(t, day)

	assert.Equal(t, 1+2+3+4+5, day.TotalBookings)
	require.Len(t, day.Professionals, 3)
	assert.Equal(t, 2, day.Overflow)

	// В сводку попадают первые три мастера из запроса
	assert.EqualValues(t, 1, day.Professionals[0].ProfessionalID)
	assert.EqualValues(t, 3, day.Professionals[2].ProfessionalID)
}

func TestBuildMonthView_ZeroCountProfessionalsHidden(t *testing.T) {
	professionals := []professionalData{
		{ID: 1, Schedule: mondayToFridaySchedule("09:00", "17:00"), Bookings: bookingsOn("2026-03-02", 1, domain.BookingStatusConfirmed)},
		{ID: 2, Schedule: mondayToFridaySchedule("09:00", "17:00")},
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)
	day := view.Days[1]
	require.NotNil(t, day)
	require.Len(t, day.Professionals, 1)
	assert.EqualValues(t, 1, day.Professionals[0].ProfessionalID)
}

func TestBuildMonthView_CancelledBookingsNotCounted(t *testing.T) {
	professionals := []professionalData{
		{ID: 1, Schedule: mondayToFridaySchedule("09:00", "17:00"), Bookings: bookingsOn("2026-03-02", 2, domain.BookingStatusCancelled)},
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)
	day := view.Days[1]
	require.NotNil(t, day)
	assert.Equal(t, 0, day.TotalBookings)
	assert.Empty(t, day.Professionals)
}

func TestBuildMonthView_Availability(t *testing.T) {
	professionals := []professionalData{
		{
			ID:       1,
			Schedule: mondayToFridaySchedule("09:00", "17:00"),
			Blockers: map[string][]*domain.TimeBlocker{
				"2026-03-02": {{}}, // блокировка на весь день
				"2026-03-03": {{StartTime: timePtr("12:00"), EndTime: timePtr("13:00")}},
			},
		},
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)

	// Воскресенье 1 марта — выходной
	assert.False(t, view.Days[0].Available)
	// Понедельник 2 марта — блокировка на весь день
	assert.False(t, view.Days[1].Available)
	// Вторник 3 марта — частичная блокировка день не закрывает
	assert.True(t, view.Days[2].Available)
}

func TestBuildMonthView_AvailableIfAnyProfessionalOpen(t *testing.T) {
	professionals := []professionalData{
		{ID: 1}, // без расписания
		{ID: 2, Schedule: mondayToFridaySchedule("09:00", "17:00")},
	}

	view := buildMonthView(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), professionals)
	assert.True(t, view.Days[1].Available)
	assert.False(t, view.Days[0].Available)
}

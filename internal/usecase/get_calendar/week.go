package get_calendar

import (
	"time"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/pkg/types"
)

// gridTicks тики сетки от 06:00 до 22:00 включительно с шагом 15 минут
func gridTicks() []types.TimeString {
	ticks := make([]types.TimeString, 0)
	tick := types.TimeString("06:00")
	last := types.TimeString("22:00")

	for {
		ticks = append(ticks, tick)
		if tick == last {
			break
		}
		next, err := tick.AddMinutes(domain.GridTickMinutes)
		if err != nil {
			break
		}
		tick = next
	}

	return ticks
}

// weekStart возвращает понедельник недели, содержащей дату
func weekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
}

// buildWeekView строит недельную сетку для набора мастеров.
// Проекция тотальна: отсутствующее расписание дает нерабочие тики,
// отсутствующие данные — нейтральные ячейки, ошибок здесь не бывает.
func buildWeekView(start time.Time, professionals []professionalData) *WeekView {
	ticks := gridTicks()

	view := &WeekView{
		StartDate:     start.Format(domain.DateFormat),
		EndDate:       start.AddDate(0, 0, 6).Format(domain.DateFormat),
		Professionals: make([]ProfessionalWeek, 0, len(professionals)),
	}

	for _, p := range professionals {
		week := ProfessionalWeek{
			ProfessionalID: p.ID,
			Name:           p.Name,
			Days:           make([]WeekDay, 0, 7),
		}

		for offset := 0; offset < 7; offset++ {
			date := start.AddDate(0, 0, offset)
			week.Days = append(week.Days, buildWeekDay(date, ticks, p))
		}

		view.Professionals = append(view.Professionals, week)
	}

	return view
}

// buildWeekDay строит тики одного дня для одного мастера
func buildWeekDay(date time.Time, ticks []types.TimeString, p professionalData) WeekDay {
	dateKey := date.Format(domain.DateFormat)
	daySchedule := p.Schedule[domain.WeekdayFromTime(date)]
	blockers := p.Blockers[dateKey]
	bookings := p.Bookings[dateKey]

	day := WeekDay{
		Date:  dateKey,
		Ticks: make([]Tick, 0, len(ticks)),
	}

	covered := 0
	for _, tickTime := range ticks {
		tick := Tick{
			Time:    tickTime.String(),
			Working: daySchedule != nil && daySchedule.IsAvailable && daySchedule.CoversTick(tickTime),
			Blocked: anyBlockerCovers(blockers, tickTime),
		}

		if covered > 0 {
			tick.Covered = true
			covered--
		} else if booking := bookingStartingAt(bookings, tickTime); booking != nil {
			span := spanTicks(booking)
			tick.Booking = &BookingCell{
				BookingID:    booking.ID,
				StartTime:    booking.StartTime.String(),
				EndTime:      booking.EndTime.String(),
				Status:       string(booking.Status),
				ServiceName:  booking.ServiceName,
				CustomerName: booking.CustomerName,
				SpanTicks:    span,
			}
			covered = span - 1
		}

		day.Ticks = append(day.Ticks, tick)
	}

	return day
}

// bookingStartingAt находит активную запись, начало которой попадает
// в тик [tick, tick+15)
func bookingStartingAt(bookings []*domain.Booking, tick types.TimeString) *domain.Booking {
	tickEnd, err := tick.AddMinutes(domain.GridTickMinutes)
	if err != nil {
		return nil
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if !booking.StartTime.IsBefore(tick) && booking.StartTime.IsBefore(tickEnd) {
			return booking
		}
	}
	return nil
}

// spanTicks число тиков, занимаемых записью, с округлением вверх.
// Некорректные времена дают минимальный спан в один тик
func spanTicks(booking *domain.Booking) int {
	minutes, err := booking.StartTime.MinutesBetween(booking.EndTime)
	if err != nil || minutes <= 0 {
		return 1
	}
	span := (minutes + domain.GridTickMinutes - 1) / domain.GridTickMinutes
	if span < 1 {
		span = 1
	}
	return span
}

func anyBlockerCovers(blockers []*domain.TimeBlocker, tick types.TimeString) bool {
	for _, blocker := range blockers {
		if blocker.CoversTick(tick) {
			return true
		}
	}
	return false
}

package get_calendar

import (
	"time"

	"github.com/salonique/booking-service/internal/domain"
)

// monthBounds возвращает первый и последний день месяца, содержащего дату
func monthBounds(date time.Time) (time.Time, time.Time) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// buildMonthView строит месячную сетку для набора мастеров.
// День доступен, если хотя бы один мастер открыт в этот день недели
// и не имеет блокировки на весь день. В сводку дня попадают только
// мастера с записями, не больше трех, остальные уходят в overflow.
func buildMonthView(date time.Time, professionals []professionalData) *MonthView {
	first, last := monthBounds(date)

	view := &MonthView{
		Year:  first.Year(),
		Month: int(first.Month()),
		Days:  make([]*MonthDay, 0, 31+6),
	}

	// Выравнивание первой недели на воскресенье
	for i := 0; i < int(first.Weekday()); i++ {
		view.Days = append(view.Days, nil)
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		view.Days = append(view.Days, buildMonthDay(d, professionals))
	}

	return view
}

// buildMonthDay строит ячейку одного дня месяца
func buildMonthDay(date time.Time, professionals []professionalData) *MonthDay {
	dateKey := date.Format(domain.DateFormat)
	weekday := domain.WeekdayFromTime(date)

	day := &MonthDay{
		Date:          dateKey,
		Professionals: make([]ProfessionalDayCount, 0),
	}

	counts := make([]ProfessionalDayCount, 0)
	for _, p := range professionals {
		if professionalAvailableOn(p, weekday, dateKey) {
			day.Available = true
		}

		count := 0
		for _, booking := range p.Bookings[dateKey] {
			if booking.IsActive() {
				count++
			}
		}
		if count > 0 {
			counts = append(counts, ProfessionalDayCount{
				ProfessionalID: p.ID,
				Name:           p.Name,
				Count:          count,
			})
			day.TotalBookings += count
		}
	}

	// Порядок следует порядку запрошенных мастеров
	if len(counts) > domain.MonthCellMaxProfessionals {
		day.Overflow = len(counts) - domain.MonthCellMaxProfessionals
		counts = counts[:domain.MonthCellMaxProfessionals]
	}
	day.Professionals = counts

	return day
}

// professionalAvailableOn проверяет, что мастер открыт в этот день недели
// и день не заблокирован целиком
func professionalAvailableOn(p professionalData, weekday domain.Weekday, dateKey string) bool {
	daySchedule := p.Schedule[weekday]
	if daySchedule == nil || !daySchedule.IsAvailable {
		return false
	}

	for _, blocker := range p.Blockers[dateKey] {
		if blocker.IsAllDay() {
			return false
		}
	}

	return true
}

package domain

import (
	"errors"
	"fmt"

	"github.com/salonique/booking-service/pkg/types"
)

var (
	ErrInvalidDuration  = errors.New("slot resolution: duration must be positive")
	ErrInvalidWorkHours = errors.New("slot resolution: working hours are inverted or missing")
)

// Slot represents a bookable time interval on a single day
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ResolveSlots вычисляет свободные слоты на день.
// Кандидаты шагают с шагом SlotStepMinutes от начала рабочего дня;
// кандидат [start, start+duration) отбрасывается, если выходит за конец
// рабочего дня или пересекается с блокировкой либо активной записью.
// Прошедшее время дня здесь не учитывается — это забота вызывающего кода.
func ResolveSlots(day *WeeklySchedule, blockers []*TimeBlocker, bookings []*Booking, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	// Выходной день — слотов нет, это не ошибка
	if day == nil || !day.IsAvailable || !day.HasWorkingHours() {
		return []Slot{}, nil
	}

	workStart := *day.StartTime
	workEnd := *day.EndTime
	if !workStart.IsBefore(workEnd) {
		return nil, fmt.Errorf("%w: %s - %s", ErrInvalidWorkHours, workStart, workEnd)
	}

	// Блокировка на весь день перекрывает любые кандидаты
	for _, blocker := range blockers {
		if blocker.IsAllDay() {
			return []Slot{}, nil
		}
	}

	slots := make([]Slot, 0)
	for start := workStart; ; {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if workEnd.IsBefore(end) {
			break
		}

		if slotIsFree(start, end, blockers, bookings) {
			slots = append(slots, Slot{StartTime: start, EndTime: end})
		}

		next, err := start.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		start = next
	}

	return slots, nil
}

// slotIsFree проверяет кандидата на пересечение с блокировками и активными записями.
// Интервалы полуоткрытые: касание границ пересечением не считается.
func slotIsFree(start, end types.TimeString, blockers []*TimeBlocker, bookings []*Booking) bool {
	for _, blocker := range blockers {
		if blocker.Blocks(start, end) {
			return false
		}
	}
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			return false
		}
	}
	return true
}

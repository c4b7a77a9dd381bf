package domain

import (
	"time"

	"github.com/salonique/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Booking represents a customer appointment with a professional
// Занимает полуинтервал [StartTime, EndTime) на дату BookingDate
type Booking struct {
	ID             int64
	CustomerID     int64
	ProfessionalID int64
	ServiceID      int64
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus

	// Денормализованные данные для истории и календаря
	Price        float64 // Цена на момент бронирования
	ServiceName  string
	CustomerName string

	CustomerNotes      *string
	CancellationReason *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// IsActive проверяет, занимает ли бронирование время в календаре
// Отменённые и no-show бронирования время не занимают
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}

// CanBeCancelled проверяет, можно ли отменить бронирование
// Отменить можно только незавершённое бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsTerminal проверяет, находится ли бронирование в финальном статусе
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled || b.Status == BookingStatusNoShow
}

// CanTransitionTo проверяет допустимость перехода статуса:
// pending → confirmed → completed, confirmed → no_show,
// pending|confirmed → cancelled; терминальные статусы не меняются
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingStatusConfirmed:
		return b.Status == BookingStatusPending
	case BookingStatusCompleted:
		return b.Status == BookingStatusConfirmed
	case BookingStatusNoShow:
		return b.Status == BookingStatusConfirmed
	case BookingStatusCancelled:
		return b.CanBeCancelled()
	default:
		return false
	}
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
// Граничащие интервалы пересечением не считаются
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// ProfessionalBookingsFilter фильтр для получения бронирований профессионала
type ProfessionalBookingsFilter struct {
	ProfessionalID  int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}

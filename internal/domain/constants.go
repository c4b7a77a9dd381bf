package domain

// Константы форматов времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Константы генерации слотов и календарной сетки
const (
	// SlotStepMinutes шаг генерации кандидатов слотов
	// Совпадает с шагом time-picker'а на фронте
	SlotStepMinutes = 5

	// GridTickMinutes шаг строки недельной сетки календаря
	GridTickMinutes = 15

	// GridStartHour начало видимой полосы недельной сетки
	GridStartHour = 6

	// GridEndHour последний тик недельной сетки (строка 22:00 включается)
	GridEndHour = 22

	// MonthCellMaxProfessionals максимум строк профессионалов в ячейке месяца,
	// остальные сворачиваются в "+N more"
	MonthCellMaxProfessionals = 3
)

// Дефолтное недельное расписание нового профессионала
const (
	DefaultWorkStartTime = "09:00"
	DefaultWorkEndTime   = "17:00"
)

// Ограничения валидации
const (
	MaxReasonLength             = 255
	MaxCustomerNotesLength      = 500
	MaxCancellationReasonLength = 500
)

// InactiveStatuses статусы бронирований, не занимающих время в календаре
// Единственная точка истины для фильтрации "активных" бронирований:
// репозитории и резолвер слотов опираются только на этот список и Booking.IsActive
var InactiveStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusNoShow,
}

// ActiveStatuses статусы бронирований, занимающих время в календаре
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

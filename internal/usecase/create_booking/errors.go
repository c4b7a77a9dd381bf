package create_booking

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceMismatch возвращается, когда услуга принадлежит другому салону
	ErrServiceMismatch = errors.New("create_booking: service does not belong to the professional's vendor")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrTooLateToBook возвращается при попытке записаться на прошедшее время сегодняшнего дня
	ErrTooLateToBook = errors.New("create_booking: booking time has already passed")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

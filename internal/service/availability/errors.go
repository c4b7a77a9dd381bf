package availability

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда день расписания не найден
	ErrScheduleNotFound = errors.New("schedule day not found")

	// ErrBlockerNotFound возвращается, когда блокировка не найдена
	ErrBlockerNotFound = errors.New("time blocker not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidWorkingHours возвращается, когда рабочие часы отсутствуют
	// или инвертированы для открытого дня
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

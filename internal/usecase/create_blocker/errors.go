package create_blocker

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_blocker: professional not found")

	// ErrAccessDenied возвращается, когда пользователь не является этим мастером
	ErrAccessDenied = errors.New("create_blocker: access denied")

	// ErrDateRangeOrder возвращается, когда конец диапазона дат раньше начала
	ErrDateRangeOrder = errors.New("create_blocker: end date is before start date")

	// ErrTimeOrder возвращается, когда конец времени не позже начала
	// для однодневной блокировки
	ErrTimeOrder = errors.New("create_blocker: end time must be after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_blocker: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_blocker: internal error")
)

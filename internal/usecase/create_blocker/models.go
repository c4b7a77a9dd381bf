package create_blocker

import (
	"time"

	"github.com/salonique/booking-service/pkg/types"
)

// Request модель запроса на создание блокировки
type Request struct {
	UserID         int64             // ID пользователя, выполняющего операцию
	ProfessionalID int64             // ID мастера
	StartDate      time.Time         // Первый день диапазона
	EndDate        time.Time         // Последний день диапазона (включительно)
	StartTime      *types.TimeString // Начало блокировки в каждом дне (опционально)
	EndTime        *types.TimeString // Конец блокировки в каждом дне (опционально)
	Reason         *string           // Причина (опционально)
}

// Response модель ответа с созданными блокировками
type Response struct {
	ProfessionalID int64     // ID мастера
	BlockerIDs     []int64   // ID созданных строк, по одной на день
	StartDate      time.Time // Первый день
	EndDate        time.Time // Последний день
}

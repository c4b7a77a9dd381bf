package create_booking

import (
	"time"

	"github.com/salonique/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID     int64            // ID клиента
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала, например "10:00"
	Notes          *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	CustomerID     int64            // ID клиента
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	BookingDate    time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время конца
	Status         string           // Статус записи

	// Денормализованные данные на момент создания
	ServiceName  string  // Название услуги
	Price        float64 // Цена услуги
	CustomerName string  // Имя клиента
	Notes        *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

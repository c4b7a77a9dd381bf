package update_schedule_day

import (
	"github.com/salonique/booking-service/internal/service/availability/models"
)

// UpdateScheduleDayRequest HTTP request model
type UpdateScheduleDayRequest struct {
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"` // "09:00"
	EndTime     *string `json:"endTime,omitempty"`   // "17:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleDayRequest) ToServiceRequest(userID int64) *models.UpdateScheduleDayRequest {
	return &models.UpdateScheduleDayRequest{
		UserID:      userID,
		IsAvailable: r.IsAvailable,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

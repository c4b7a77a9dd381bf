package create_blocker

import (
	"time"

	"github.com/salonique/booking-service/internal/domain"
	createBlocker "github.com/salonique/booking-service/internal/usecase/create_blocker"
	"github.com/salonique/booking-service/pkg/types"
)

// CreateBlockerRequest HTTP request model
type CreateBlockerRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	StartDate      string  `json:"startDate"`           // "2026-03-10"
	EndDate        string  `json:"endDate"`             // "2026-03-12"
	StartTime      *string `json:"startTime,omitempty"` // "13:00"
	EndTime        *string `json:"endTime,omitempty"`   // "14:00"
	Reason         *string `json:"reason,omitempty"`
}

// CreateBlockerResponse HTTP response model
type CreateBlockerResponse struct {
	ProfessionalID int64   `json:"professionalId"`
	BlockerIDs     []int64 `json:"blockerIds"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockerRequest) ToUseCaseRequest(userID int64) (*createBlocker.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	var startTime, endTime *types.TimeString
	if r.StartTime != nil {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = &t
	}
	if r.EndTime != nil {
		t, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &t
	}

	return &createBlocker.Request{
		UserID:         userID,
		ProfessionalID: r.ProfessionalID,
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Reason:         r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlocker.Response) *CreateBlockerResponse {
	return &CreateBlockerResponse{
		ProfessionalID: resp.ProfessionalID,
		BlockerIDs:     resp.BlockerIDs,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
	}
}

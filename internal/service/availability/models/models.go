package models

import (
	"time"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/pkg/types"
)

// Request модели

// UpdateScheduleDayRequest запрос на обновление дня расписания
type UpdateScheduleDayRequest struct {
	UserID      int64   `json:"userId"`
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"` // "09:00"
	EndTime     *string `json:"endTime,omitempty"`   // "17:00"
}

// GetBlockersRequest запрос на получение блокировок мастера за период
type GetBlockersRequest struct {
	ProfessionalID int64
	StartDate      time.Time
	EndDate        time.Time
}

// Response модели

// ScheduleDayResponse день недельного расписания
type ScheduleDayResponse struct {
	ID          int64   `json:"id"`
	DayOfWeek   string  `json:"dayOfWeek"`
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
}

// ScheduleResponse недельное расписание мастера
type ScheduleResponse struct {
	ProfessionalID int64                 `json:"professionalId"`
	Days           []ScheduleDayResponse `json:"days"`
}

// BlockerGroupResponse визуальная группа блокировок
type BlockerGroupResponse struct {
	StartDate  string  `json:"startDate"` // "2026-03-10"
	EndDate    string  `json:"endDate"`   // "2026-03-12"
	StartTime  *string `json:"startTime,omitempty"`
	EndTime    *string `json:"endTime,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	BlockerIDs []int64 `json:"blockerIds"`
}

// BlockerListResponse список групп блокировок мастера
type BlockerListResponse struct {
	ProfessionalID int64                  `json:"professionalId"`
	Groups         []BlockerGroupResponse `json:"groups"`
}

// Методы конвертации

// FromDomainSchedule конвертирует дни расписания в DTO в порядке недели
func FromDomainSchedule(professionalID int64, days []*domain.WeeklySchedule) *ScheduleResponse {
	byDay := make(map[domain.Weekday]*domain.WeeklySchedule, len(days))
	for _, d := range days {
		byDay[d.DayOfWeek] = d
	}

	resp := &ScheduleResponse{
		ProfessionalID: professionalID,
		Days:           make([]ScheduleDayResponse, 0, len(domain.AllWeekdays)),
	}

	for _, weekday := range domain.AllWeekdays {
		d, ok := byDay[weekday]
		if !ok {
			continue
		}
		resp.Days = append(resp.Days, ScheduleDayResponse{
			ID:          d.ID,
			DayOfWeek:   string(d.DayOfWeek),
			IsAvailable: d.IsAvailable,
			StartTime:   timeStringPtr(d.StartTime),
			EndTime:     timeStringPtr(d.EndTime),
		})
	}

	return resp
}

// FromDomainGroups конвертирует группы блокировок в DTO
func FromDomainGroups(professionalID int64, groups []domain.BlockerGroup) *BlockerListResponse {
	resp := &BlockerListResponse{
		ProfessionalID: professionalID,
		Groups:         make([]BlockerGroupResponse, 0, len(groups)),
	}

	for _, g := range groups {
		resp.Groups = append(resp.Groups, BlockerGroupResponse{
			StartDate:  g.StartDate.Format(domain.DateFormat),
			EndDate:    g.EndDate.Format(domain.DateFormat),
			StartTime:  timeStringPtr(g.StartTime),
			EndTime:    timeStringPtr(g.EndTime),
			Reason:     g.Reason,
			BlockerIDs: g.BlockerIDs,
		})
	}

	return resp
}

func timeStringPtr(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

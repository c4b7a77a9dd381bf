package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/internal/domain"
	blockerRepo "github.com/salonique/booking-service/internal/infra/storage/blocker"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
	"github.com/salonique/booking-service/internal/service/availability/models"
	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

type scheduleRepoStub struct {
	days []*domain.WeeklySchedule

	createdWeek []*domain.WeeklySchedule
	updatedDay  *domain.WeeklySchedule
}

func (s *scheduleRepoStub) GetByID(_ context.Context, id int64) (*domain.WeeklySchedule, error) {
	for _, d := range s.days {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (s *scheduleRepoStub) GetByProfessionalID(_ context.Context, professionalID int64) ([]*domain.WeeklySchedule, error) {
	var out []*domain.WeeklySchedule
	for _, d := range s.days {
		if d.ProfessionalID == professionalID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *scheduleRepoStub) CreateWeek(_ context.Context, week []*domain.WeeklySchedule) error {
	s.createdWeek = week
	for i, d := range week {
		d.ID = int64(i + 1)
	}
	s.days = append(s.days, week...)
	return nil
}

func (s *scheduleRepoStub) UpdateDay(_ context.Context, _ int64, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	s.updatedDay = schedule
	return schedule, nil
}

type blockerRepoStub struct {
	blockers []*domain.TimeBlocker

	deletedIDs []int64
}

func (s *blockerRepoStub) GetByID(_ context.Context, id int64) (*domain.TimeBlocker, error) {
	for _, b := range s.blockers {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, blockerRepo.ErrBlockerNotFound
}

func (s *blockerRepoStub) GetByProfessionalAndPeriod(_ context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error) {
	var out []*domain.TimeBlocker
	for _, b := range s.blockers {
		if b.ProfessionalID == professionalID && !b.Date.Before(startDate) && !b.Date.After(endDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *blockerRepoStub) DeleteByIDs(_ context.Context, _ int64, ids []int64) (int64, error) {
	s.deletedIDs = ids
	return int64(len(ids)), nil
}

type catalogStub struct {
	missing bool
}

func (s *catalogStub) GetProfessional(_ context.Context, id int64) (*catalogservice.Professional, error) {
	if s.missing {
		return nil, catalogservice.ErrProfessionalNotFound
	}
	return &catalogservice.Professional{ID: id, VendorID: 10, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetSchedule_InitializesDefaultWeek(t *testing.T) {
	schedules := &scheduleRepoStub{}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, schedules.createdWeek, 7)
	require.Len(t, resp.Days, 7)

	// Будни открыты 09:00-17:00, выходные закрыты
	assert.Equal(t, "monday", resp.Days[0].DayOfWeek)
	assert.True(t, resp.Days[0].IsAvailable)
	require.NotNil(t, resp.Days[0].StartTime)
	assert.Equal(t, "09:00", *resp.Days[0].StartTime)
	assert.False(t, resp.Days[5].IsAvailable)
	assert.False(t, resp.Days[6].IsAvailable)
}

func TestGetSchedule_ExistingWeekNotRecreated(t *testing.T) {
	schedules := &scheduleRepoStub{days: domain.DefaultWeek(1)}
	for i, d := range schedules.days {
		d.ID = int64(i + 100)
	}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, schedules.createdWeek)
	assert.EqualValues(t, 100, resp.Days[0].ID)
}

func TestGetSchedule_UnknownProfessional(t *testing.T) {
	svc := NewService(&scheduleRepoStub{}, &blockerRepoStub{}, &catalogStub{missing: true}, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUpdateScheduleDay_OwnerUpdatesHours(t *testing.T) {
	schedules := &scheduleRepoStub{days: []*domain.WeeklySchedule{{
		ID:             5,
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
		IsAvailable:    true,
		StartTime:      ptr.Ptr(types.TimeString("09:00")),
		EndTime:        ptr.Ptr(types.TimeString("17:00")),
	}}}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := svc.UpdateScheduleDay(context.Background(), 5, &models.UpdateScheduleDayRequest{
		UserID:      1,
		IsAvailable: true,
		StartTime:   ptr.Ptr("10:00"),
		EndTime:     ptr.Ptr("18:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, schedules.updatedDay)
	assert.Equal(t, types.TimeString("10:00"), *schedules.updatedDay.StartTime)
	assert.Equal(t, types.TimeString("18:00"), *schedules.updatedDay.EndTime)
}

func TestUpdateScheduleDay_ClosedDayDropsHours(t *testing.T) {
	schedules := &scheduleRepoStub{days: []*domain.WeeklySchedule{{
		ID:             5,
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
		IsAvailable:    true,
		StartTime:      ptr.Ptr(types.TimeString("09:00")),
		EndTime:        ptr.Ptr(types.TimeString("17:00")),
	}}}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := svc.UpdateScheduleDay(context.Background(), 5, &models.UpdateScheduleDayRequest{
		UserID:      1,
		IsAvailable: false,
	})
	require.NoError(t, err)
	assert.False(t, schedules.updatedDay.IsAvailable)
	assert.Nil(t, schedules.updatedDay.StartTime)
	assert.Nil(t, schedules.updatedDay.EndTime)
}

func TestUpdateScheduleDay_InvalidHoursRejected(t *testing.T) {
	schedules := &scheduleRepoStub{days: []*domain.WeeklySchedule{{
		ID:             5,
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
	}}}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	cases := []struct {
		name string
		req  *models.UpdateScheduleDayRequest
	}{
		{"без часов", &models.UpdateScheduleDayRequest{UserID: 1, IsAvailable: true}},
		{"инвертированные", &models.UpdateScheduleDayRequest{
			UserID: 1, IsAvailable: true,
			StartTime: ptr.Ptr("18:00"), EndTime: ptr.Ptr("09:00"),
		}},
		{"равные", &models.UpdateScheduleDayRequest{
			UserID: 1, IsAvailable: true,
			StartTime: ptr.Ptr("09:00"), EndTime: ptr.Ptr("09:00"),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateScheduleDay(context.Background(), 5, tc.req)
			assert.ErrorIs(t, err, ErrInvalidWorkingHours)
		})
	}
}

func TestUpdateScheduleDay_NotOwnerDenied(t *testing.T) {
	schedules := &scheduleRepoStub{days: []*domain.WeeklySchedule{{
		ID:             5,
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
	}}}
	svc := NewService(schedules, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := svc.UpdateScheduleDay(context.Background(), 5, &models.UpdateScheduleDayRequest{
		UserID:      2,
		IsAvailable: false,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBlockers_GroupsConsecutiveDays(t *testing.T) {
	reason := "отпуск"
	blockers := &blockerRepoStub{blockers: []*domain.TimeBlocker{
		{ID: 1, ProfessionalID: 1, Date: date(2026, 3, 10), Reason: &reason},
		{ID: 2, ProfessionalID: 1, Date: date(2026, 3, 11), Reason: &reason},
		{ID: 3, ProfessionalID: 1, Date: date(2026, 3, 12), Reason: &reason},
		{ID: 4, ProfessionalID: 1, Date: date(2026, 3, 20), Reason: &reason},
	}}
	svc := NewService(&scheduleRepoStub{}, blockers, &catalogStub{}, nopLogger{})

	resp, err := svc.GetBlockers(context.Background(), &models.GetBlockersRequest{
		ProfessionalID: 1,
		StartDate:      date(2026, 3, 1),
		EndDate:        date(2026, 3, 31),
	})
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)

	assert.Equal(t, "2026-03-10", resp.Groups[0].StartDate)
	assert.Equal(t, "2026-03-12", resp.Groups[0].EndDate)
	assert.Equal(t, []int64{1, 2, 3}, resp.Groups[0].BlockerIDs)
	assert.Equal(t, []int64{4}, resp.Groups[1].BlockerIDs)
}

func TestGetBlockers_InvertedPeriodRejected(t *testing.T) {
	svc := NewService(&scheduleRepoStub{}, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := svc.GetBlockers(context.Background(), &models.GetBlockersRequest{
		ProfessionalID: 1,
		StartDate:      date(2026, 3, 31),
		EndDate:        date(2026, 3, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlockerGroup_DeletesWholeGroup(t *testing.T) {
	blockers := &blockerRepoStub{blockers: []*domain.TimeBlocker{
		{ID: 1, ProfessionalID: 1, Date: date(2026, 3, 10)},
		{ID: 2, ProfessionalID: 1, Date: date(2026, 3, 11)},
		{ID: 3, ProfessionalID: 1, Date: date(2026, 3, 12)},
	}}
	svc := NewService(&scheduleRepoStub{}, blockers, &catalogStub{}, nopLogger{})

	// Удаление по средней строке сносит всю группу
	deleted, err := svc.DeleteBlockerGroup(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
	assert.ElementsMatch(t, []int64{1, 2, 3}, blockers.deletedIDs)
}

func TestDeleteBlockerGroup_NotOwnerDenied(t *testing.T) {
	blockers := &blockerRepoStub{blockers: []*domain.TimeBlocker{
		{ID: 1, ProfessionalID: 1, Date: date(2026, 3, 10)},
	}}
	svc := NewService(&scheduleRepoStub{}, blockers, &catalogStub{}, nopLogger{})

	_, err := svc.DeleteBlockerGroup(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteBlockerGroup_NotFound(t *testing.T) {
	svc := NewService(&scheduleRepoStub{}, &blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := svc.DeleteBlockerGroup(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrBlockerNotFound)
}

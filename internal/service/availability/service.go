package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonique/booking-service/internal/domain"
	blockerRepo "github.com/salonique/booking-service/internal/infra/storage/blocker"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
	"github.com/salonique/booking-service/internal/service/availability/models"
	"github.com/salonique/booking-service/pkg/types"
)

// Service сервис управления расписаниями и блокировками мастеров
type Service struct {
	scheduleRepo  ScheduleRepository
	blockerRepo   BlockerRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	scheduleRepo ScheduleRepository,
	blockerRepo BlockerRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		blockerRepo:   blockerRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetSchedule получает недельное расписание мастера.
// Если расписание ещё не создано, инициализирует его значениями по умолчанию:
// будни 09:00-17:00, выходные закрыты.
func (s *Service) GetSchedule(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for professional=%d", professionalID)

	if _, err := s.catalogClient.GetProfessional(ctx, professionalID); err != nil {
		if errors.Is(err, catalogservice.ErrProfessionalNotFound) {
			s.logger.Warn("GetSchedule: professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetSchedule: catalog error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - catalog error: %v", ErrInternal, err)
	}

	days, err := s.scheduleRepo.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	if len(days) == 0 {
		s.logger.Info("GetSchedule: initializing default week for professional=%d", professionalID)

		week := domain.DefaultWeek(professionalID)
		if err := s.scheduleRepo.CreateWeek(ctx, week); err != nil {
			s.logger.Error("GetSchedule: failed to initialize week for professional=%d: %v", professionalID, err)
			return nil, fmt.Errorf("%w: GetSchedule - initialize week: %v", ErrInternal, err)
		}

		// Перечитываем, чтобы получить присвоенные ID
		days, err = s.scheduleRepo.GetByProfessionalID(ctx, professionalID)
		if err != nil {
			s.logger.Error("GetSchedule: repository error after init for professional=%d: %v", professionalID, err)
			return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
		}
	}

	return models.FromDomainSchedule(professionalID, days), nil
}

// UpdateScheduleDay обновляет день расписания.
// Для открытого дня оба времени обязательны и начало должно быть раньше конца —
// инвариант расписания проверяется на записи, чтение ему доверяет.
func (s *Service) UpdateScheduleDay(ctx context.Context, scheduleID int64, req *models.UpdateScheduleDayRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateScheduleDay: updating schedule id=%d by user=%d", scheduleID, req.UserID)

	day, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("UpdateScheduleDay: schedule id=%d not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("UpdateScheduleDay: repository error for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: UpdateScheduleDay - repository error: %v", ErrInternal, err)
	}

	if day.ProfessionalID != req.UserID {
		s.logger.Warn("UpdateScheduleDay: access denied for user=%d to schedule id=%d", req.UserID, scheduleID)
		return nil, ErrAccessDenied
	}

	startTime, endTime, err := s.validateWorkingHours(req)
	if err != nil {
		s.logger.Warn("UpdateScheduleDay: invalid working hours for schedule id=%d: %v", scheduleID, err)
		return nil, err
	}

	day.IsAvailable = req.IsAvailable
	day.StartTime = startTime
	day.EndTime = endTime

	if _, err := s.scheduleRepo.UpdateDay(ctx, scheduleID, day); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("UpdateScheduleDay: update error for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: UpdateScheduleDay - update error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateScheduleDay: successfully updated schedule id=%d", scheduleID)

	days, err := s.scheduleRepo.GetByProfessionalID(ctx, day.ProfessionalID)
	if err != nil {
		s.logger.Error("UpdateScheduleDay: repository error for professional=%d: %v", day.ProfessionalID, err)
		return nil, fmt.Errorf("%w: UpdateScheduleDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(day.ProfessionalID, days), nil
}

// GetBlockers получает блокировки мастера за период, свернутые в визуальные группы
func (s *Service) GetBlockers(ctx context.Context, req *models.GetBlockersRequest) (*models.BlockerListResponse, error) {
	s.logger.Info("GetBlockers: fetching blockers for professional=%d, period=%s to %s",
		req.ProfessionalID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	blockers, err := s.blockerRepo.GetByProfessionalAndPeriod(ctx, req.ProfessionalID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("GetBlockers: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetBlockers - repository error: %v", ErrInternal, err)
	}

	groups := domain.GroupBlockers(blockers)

	s.logger.Info("GetBlockers: fetched %d blockers in %d groups for professional=%d",
		len(blockers), len(groups), req.ProfessionalID)
	return models.FromDomainGroups(req.ProfessionalID, groups), nil
}

// DeleteBlockerGroup удаляет визуальную группу блокировок целиком
// по ID любой её строки. Доступно только самому мастеру.
func (s *Service) DeleteBlockerGroup(ctx context.Context, blockerID int64, userID int64) (int64, error) {
	s.logger.Info("DeleteBlockerGroup: deleting group containing blocker id=%d by user=%d", blockerID, userID)

	blocker, err := s.blockerRepo.GetByID(ctx, blockerID)
	if err != nil {
		if errors.Is(err, blockerRepo.ErrBlockerNotFound) {
			s.logger.Warn("DeleteBlockerGroup: blocker id=%d not found", blockerID)
			return 0, ErrBlockerNotFound
		}
		s.logger.Error("DeleteBlockerGroup: repository error for blocker id=%d: %v", blockerID, err)
		return 0, fmt.Errorf("%w: DeleteBlockerGroup - repository error: %v", ErrInternal, err)
	}

	if blocker.ProfessionalID != userID {
		s.logger.Warn("DeleteBlockerGroup: access denied for user=%d to blocker id=%d", userID, blockerID)
		return 0, ErrAccessDenied
	}

	// Границы группы неизвестны заранее — берем годовое окно вокруг даты
	windowStart := blocker.Date.AddDate(-1, 0, 0)
	windowEnd := blocker.Date.AddDate(1, 0, 0)

	neighbours, err := s.blockerRepo.GetByProfessionalAndPeriod(ctx, blocker.ProfessionalID, windowStart, windowEnd)
	if err != nil {
		s.logger.Error("DeleteBlockerGroup: repository error for professional=%d: %v", blocker.ProfessionalID, err)
		return 0, fmt.Errorf("%w: DeleteBlockerGroup - repository error: %v", ErrInternal, err)
	}

	group := findGroupContaining(domain.GroupBlockers(neighbours), blockerID)
	if group == nil {
		// Строка существует, но в окно не попала — удаляем только её
		group = &domain.BlockerGroup{BlockerIDs: []int64{blockerID}}
	}

	deleted, err := s.blockerRepo.DeleteByIDs(ctx, blocker.ProfessionalID, group.BlockerIDs)
	if err != nil {
		if errors.Is(err, blockerRepo.ErrBlockerNotFound) {
			return 0, ErrBlockerNotFound
		}
		s.logger.Error("DeleteBlockerGroup: delete error for blocker id=%d: %v", blockerID, err)
		return 0, fmt.Errorf("%w: DeleteBlockerGroup - delete error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockerGroup: deleted %d blockers from group containing id=%d", deleted, blockerID)
	return deleted, nil
}

// validateWorkingHours проверяет рабочие часы дня расписания
func (s *Service) validateWorkingHours(req *models.UpdateScheduleDayRequest) (*types.TimeString, *types.TimeString, error) {
	if !req.IsAvailable {
		// Для закрытого дня часы не хранятся
		return nil, nil, nil
	}

	if req.StartTime == nil || req.EndTime == nil {
		return nil, nil, fmt.Errorf("%w: working hours are required for an available day", ErrInvalidWorkingHours)
	}

	startTime, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidWorkingHours, err)
	}
	endTime, err := types.NewTimeStringFromString(*req.EndTime)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidWorkingHours, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, nil, fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidWorkingHours, startTime, endTime)
	}

	return &startTime, &endTime, nil
}

func findGroupContaining(groups []domain.BlockerGroup, blockerID int64) *domain.BlockerGroup {
	for i := range groups {
		for _, id := range groups[i].BlockerIDs {
			if id == blockerID {
				return &groups[i]
			}
		}
	}
	return nil
}

package create_blocker

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonique/booking-service/internal/domain"
	catalogClient "github.com/salonique/booking-service/internal/integrations/catalogservice"
)

// UseCase use case для создания блокировки времени мастера
type UseCase struct {
	blockerRepo   BlockerRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockerRepo BlockerRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockerRepo:   blockerRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute создает блокировку времени.
// Диапазон дат материализуется в отдельные строки, по одной на каждый день
// включительно — существующие записи блокировка не отменяет, она влияет
// только на будущую выдачу слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlocker: professional=%d, period=%s to %s, user=%d",
		req.ProfessionalID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlocker: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокировки создает только сам мастер
	if req.UserID != req.ProfessionalID {
		uc.logger.Warn("CreateBlocker: access denied for user=%d to professional=%d", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// 3. Мастер должен существовать в каталоге
	if _, err := uc.catalogClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBlocker: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBlocker: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Материализуем диапазон в строки по дням
	dates := domain.DatesBetween(req.StartDate, req.EndDate)
	blockers := make([]*domain.TimeBlocker, 0, len(dates))
	for _, date := range dates {
		blockers = append(blockers, &domain.TimeBlocker{
			ProfessionalID: req.ProfessionalID,
			Date:           date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Reason:         req.Reason,
		})
	}

	created, err := uc.blockerRepo.CreateBatch(ctx, blockers)
	if err != nil {
		uc.logger.Error("CreateBlocker: failed to create blockers: %v", err)
		return nil, fmt.Errorf("%w: failed to create blockers: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(created))
	for _, b := range created {
		ids = append(ids, b.ID)
	}

	uc.logger.Info("CreateBlocker: created %d blockers for professional=%d", len(ids), req.ProfessionalID)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		BlockerIDs:     ids,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}, nil
}

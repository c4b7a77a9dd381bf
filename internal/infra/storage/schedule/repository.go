package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/pkg/dbmetrics"
	"github.com/salonique/booking-service/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"is_available",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельным расписанием мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalID получает все дни недельного расписания мастера
func (r *Repository) GetByProfessionalID(ctx context.Context, professionalID int64) ([]*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// GetByProfessionalIDs получает расписания нескольких мастеров.
// Используется проекцией календарной сетки.
func (r *Repository) GetByProfessionalIDs(ctx context.Context, professionalIDs []int64) ([]*domain.WeeklySchedule, error) {
	if len(professionalIDs) == 0 {
		return []*domain.WeeklySchedule{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		OrderBy("professional_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// GetByID получает день расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.WeeklySchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.ProfessionalID,
		&schedule.DayOfWeek,
		&schedule.IsAvailable,
		&schedule.StartTime,
		&schedule.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// GetByProfessionalAndDay получает день расписания мастера
func (r *Repository) GetByProfessionalAndDay(ctx context.Context, professionalID int64, day domain.Weekday) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"professional_id": professionalID, "day_of_week": day}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.WeeklySchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.ProfessionalID,
		&schedule.DayOfWeek,
		&schedule.IsAvailable,
		&schedule.StartTime,
		&schedule.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDay - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// CreateWeek создает недельное расписание мастера одним запросом.
// Конфликт по (professional_id, day_of_week) игнорируется — повторная
// инициализация не затирает существующее расписание.
func (r *Repository) CreateWeek(ctx context.Context, week []*domain.WeeklySchedule) error {
	if len(week) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("weekly_schedules").
		Columns("professional_id", "day_of_week", "is_available", "start_time", "end_time")

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			day.ProfessionalID,
			day.DayOfWeek,
			day.IsAvailable,
			day.StartTime,
			day.EndTime,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (professional_id, day_of_week) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateDay обновляет день расписания по ID
func (r *Repository) UpdateDay(ctx context.Context, id int64, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("weekly_schedules").
		Set("is_available", schedule.IsAvailable).
		Set("start_time", schedule.StartTime).
		Set("end_time", schedule.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, professional_id, day_of_week, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDay - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.ProfessionalID,
		&schedule.DayOfWeek,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDay - execute update: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// scanSchedules сканирует результаты запроса в слайс дней расписания
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.WeeklySchedule, error) {
	schedules := make([]*domain.WeeklySchedule, 0)

	for rows.Next() {
		var schedule domain.WeeklySchedule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&schedule.ID,
			&schedule.ProfessionalID,
			&schedule.DayOfWeek,
			&schedule.IsAvailable,
			&schedule.StartTime,
			&schedule.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		schedule.CreatedAt = createdAt.Time
		schedule.UpdatedAt = updatedAt.Time

		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

package blocker

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/pkg/dbmetrics"
	"github.com/salonique/booking-service/pkg/psqlbuilder"
)

var blockerColumns = []string{
	"id",
	"professional_id",
	"blocked_date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает блокировки пачкой — по одной строке на каждый день
// диапазона. Возвращает созданные строки с проставленными ID.
func (r *Repository) CreateBatch(ctx context.Context, blockers []*domain.TimeBlocker) ([]*domain.TimeBlocker, error) {
	if len(blockers) == 0 {
		return []*domain.TimeBlocker{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_blockers").
		Columns("professional_id", "blocked_date", "start_time", "end_time", "reason")

	for _, b := range blockers {
		insertBuilder = insertBuilder.Values(
			b.ProfessionalID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Reason,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING отдает строки в порядке вставки
	i := 0
	for rows.Next() {
		if i >= len(blockers) {
			break
		}
		if err := rows.Scan(&blockers[i].ID, &blockers[i].CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returned row: %v", ErrScanRow, err)
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return blockers, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeBlocker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockerColumns...).
		From("time_blockers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var blocker domain.TimeBlocker
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&blocker.ID,
		&blocker.ProfessionalID,
		&blocker.Date,
		&blocker.StartTime,
		&blocker.EndTime,
		&blocker.Reason,
		&blocker.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocker: %v", ErrScanRow, err)
	}

	return &blocker, nil
}

// GetByProfessionalAndPeriod получает блокировки мастера за период дат включительно
func (r *Repository) GetByProfessionalAndPeriod(ctx context.Context, professionalID int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockerColumns...).
		From("time_blockers").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.GtOrEq{"blocked_date": startDate}).
		Where(squirrel.LtOrEq{"blocked_date": endDate}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockers(rows)
}

// GetByProfessionalsAndPeriod получает блокировки нескольких мастеров за период.
// Используется проекцией календарной сетки.
func (r *Repository) GetByProfessionalsAndPeriod(ctx context.Context, professionalIDs []int64, startDate, endDate time.Time) ([]*domain.TimeBlocker, error) {
	if len(professionalIDs) == 0 {
		return []*domain.TimeBlocker{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockerColumns...).
		From("time_blockers").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		Where(squirrel.GtOrEq{"blocked_date": startDate}).
		Where(squirrel.LtOrEq{"blocked_date": endDate}).
		OrderBy("professional_id ASC, blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalsAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalsAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockers(rows)
}

// DeleteByIDs удаляет блокировки по списку ID.
// Используется при удалении визуальной группы целиком.
func (r *Repository) DeleteByIDs(ctx context.Context, professionalID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blockers").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrBlockerNotFound
	}

	return rowsAffected, nil
}

// scanBlockers сканирует результаты запроса в слайс блокировок
func (r *Repository) scanBlockers(rows *sql.Rows) ([]*domain.TimeBlocker, error) {
	blockers := make([]*domain.TimeBlocker, 0)

	for rows.Next() {
		var blocker domain.TimeBlocker

		err := rows.Scan(
			&blocker.ID,
			&blocker.ProfessionalID,
			&blocker.Date,
			&blocker.StartTime,
			&blocker.EndTime,
			&blocker.Reason,
			&blocker.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockers - scan row: %v", ErrScanRow, err)
		}

		blockers = append(blockers, &blocker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockers - rows error: %v", ErrScanRow, err)
	}

	return blockers, nil
}

package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий рабочих окон мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByMasterAndDate получает рабочее окно мастера на дату.
// Отсутствие окна означает, что мастер в этот день не работает.
func (r *Repository) GetByMasterAndDate(ctx context.Context, masterID int64, date time.Time) (*domain.WorkWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"master_id",
		"work_date",
		"start_time",
		"end_time",
	).
		From("schedule").
		Where(squirrel.Eq{
			"master_id": masterID,
			"work_date": date,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.WorkWindow
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.MasterID,
		&window.Date,
		&window.StartTime,
		&window.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndDate - scan window: %v", ErrScanRow, err)
	}

	return &window, nil
}

// Upsert создает или обновляет рабочее окно мастера на дату.
// На (master_id, work_date) есть уникальный индекс: окно на день одно.
func (r *Repository) Upsert(ctx context.Context, window *domain.WorkWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule").
		Columns(
			"master_id",
			"work_date",
			"start_time",
			"end_time",
		).
		Values(
			window.MasterID,
			window.Date,
			window.StartTime,
			window.EndTime,
		).
		Suffix("ON CONFLICT (master_id, work_date) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

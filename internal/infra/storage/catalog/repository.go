package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочных данных: услуги и мастера.
// Данные неизменяемые, заполняются сидером при старте сервиса.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочных данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает все услуги, отсортированные по ID
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
	).
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Name, &service.DurationMinutes, &service.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.DurationMinutes,
		&service.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

// ListMasters возвращает всех мастеров, отсортированных по ID.
// Фильтрации по услуге нет: каждый мастер выполняет любую услугу.
func (r *Repository) ListMasters(ctx context.Context) ([]*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialization",
	).
		From("masters").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMasters - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		var master domain.Master
		if err := rows.Scan(&master.ID, &master.Name, &master.Specialization); err != nil {
			return nil, fmt.Errorf("%w: ListMasters - scan row: %v", ErrScanRow, err)
		}
		masters = append(masters, &master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMasters - rows error: %v", ErrScanRow, err)
	}

	return masters, nil
}

// GetMasterByID получает мастера по ID
func (r *Repository) GetMasterByID(ctx context.Context, id int64) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialization",
	).
		From("masters").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMasterByID - build select query: %v", ErrBuildQuery, err)
	}

	var master domain.Master
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&master.ID,
		&master.Name,
		&master.Specialization,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMasterByID - scan master: %v", ErrScanRow, err)
	}

	return &master, nil
}

// SeedService добавляет услугу, если услуги с таким именем ещё нет
func (r *Repository) SeedService(ctx context.Context, service *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "duration_minutes", "price").
		Values(service.Name, service.DurationMinutes, service.Price).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SeedService - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedService - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// SeedMaster добавляет мастера, если мастера с таким именем ещё нет
func (r *Repository) SeedMaster(ctx context.Context, master *domain.Master) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("masters").
		Columns("name", "specialization").
		Values(master.Name, master.Specialization).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SeedMaster - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedMaster - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

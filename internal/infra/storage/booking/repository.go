package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// pqSerializationFailure код ошибки PostgreSQL "serialization_failure"
const pqSerializationFailure = "40001"

// isSerializationFailure возвращает true, если запрос прерван
// из-за конфликта сериализуемых транзакций
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure
}

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
// Создание всегда должно выполняться внутри сериализуемой транзакции
// вместе с повторной проверкой доступности слота — см. usecase create_booking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"service_id",
			"master_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			booking.ClientID,
			booking.ServiceID,
			booking.MasterID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSerializationFailure(err) {
			return nil, ErrSerializationConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"service_id",
		"master_id",
		"booking_date",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ServiceID,
		&booking.MasterID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetConfirmedByMasterAndDate получает подтверждённые бронирования мастера
// на указанную дату, отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE: строки блокируются до конца
// транзакции, что исключает гонку "проверили слот — вставили бронирование"
// между конкурентными запросами.
func (r *Repository) GetConfirmedByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"service_id",
		"master_id",
		"booking_date",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{
			"master_id":    masterID,
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByMasterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isSerializationFailure(err) {
			return nil, ErrSerializationConflict
		}
		return nil, fmt.Errorf("%w: GetConfirmedByMasterAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListForPeriod получает подтверждённые бронирования за период дат
// с присоединёнными именами клиента, услуги и мастера.
// Сортировка: по дате, затем по времени начала.
func (r *Repository) ListForPeriod(ctx context.Context, dateFrom, dateTo time.Time) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"c.name AS client_name",
		"c.phone AS client_phone",
		"s.name AS service_name",
		"m.name AS master_name",
	).
		From("bookings b").
		Join("clients c ON b.client_id = c.id").
		Join("services s ON b.service_id = s.id").
		Join("masters m ON b.master_id = m.id").
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"b.booking_date": dateFrom}).
		Where(squirrel.LtOrEq{"b.booking_date": dateTo}).
		OrderBy("b.booking_date ASC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithNames(rows)
}

// ListByClient получает подтверждённые бронирования клиента
// с присоединёнными именами услуги и мастера
func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"c.name AS client_name",
		"c.phone AS client_phone",
		"s.name AS service_name",
		"m.name AS master_name",
	).
		From("bookings b").
		Join("clients c ON b.client_id = c.id").
		Join("services s ON b.service_id = s.id").
		Join("masters m ON b.master_id = m.id").
		Where(squirrel.Eq{
			"b.client_id": clientID,
			"b.status":    domain.StatusConfirmed,
		}).
		OrderBy("b.booking_date ASC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithNames(rows)
}

// Cancel переводит бронирование в статус cancelled.
// Условие status = confirmed в WHERE делает операцию идемпотентной:
// повторная отмена и отмена несуществующего бронирования одинаково
// возвращают ErrBookingNotFound.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ClientID,
			&booking.ServiceID,
			&booking.MasterID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBookingsWithNames сканирует результаты запроса с JOIN в слайс проекций
func (r *Repository) scanBookingsWithNames(rows *sql.Rows) ([]*domain.BookingWithNames, error) {
	bookings := make([]*domain.BookingWithNames, 0)

	for rows.Next() {
		var booking domain.BookingWithNames

		err := rows.Scan(
			&booking.ID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.ClientName,
			&booking.ClientPhone,
			&booking.ServiceName,
			&booking.MasterName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingsWithNames - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingsWithNames - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

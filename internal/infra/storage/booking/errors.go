package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или уже отменено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrSerializationConflict возвращается, когда PostgreSQL прерывает
	// сериализуемую транзакцию (SQLSTATE 40001) — проигрыш гонки
	// с конкурентной транзакцией, операцию можно повторить
	ErrSerializationConflict = errors.New("booking.repository: serialization conflict")
)

package schedule

import "errors"

var (
	// ErrWindowNotFound возвращается, когда у мастера нет рабочего окна
	// на указанную дату
	ErrWindowNotFound = errors.New("schedule.repository: work window not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

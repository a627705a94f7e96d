package blockedday

import "errors"

var (
	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("blockedday.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedday.repository: failed to scan row")
)

package cms

import "errors"

var (
	// ErrComponentNotFound возвращается, когда компонент не найден
	ErrComponentNotFound = errors.New("cms.repository: component not found")

	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("cms.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cms.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cms.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cms.repository: failed to scan row")
)

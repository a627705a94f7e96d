package rule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило для пары магазин+услуга не найдено
	ErrRuleNotFound = errors.New("rule.repository: service rule not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("rule.repository: service not found")

	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("rule.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")
)

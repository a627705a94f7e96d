package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/lib/pq"
)

// ErrSerialization маркер конфликта сериализации (SQLSTATE 40001)
// Репозитории помечают им ошибки выполнения внутри транзакции: верхние
// слои оборачивают причину через %v, и без маркера признак повторяемости
// не доживает до менеджера транзакций
var ErrSerialization = errors.New("pgerr: serialization conflict")

// IsSerializationFailure определяет, является ли ошибка конфликтом
// сериализации: либо сырая ошибка драйвера с кодом 40001 (commit),
// либо ошибка, помеченная ErrSerialization (statement внутри транзакции)
func IsSerializationFailure(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrSerialization) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "40001"
	}

	return false
}

// IsUnavailable определяет, вызвана ли ошибка недоступностью БД
// (в отличие от ошибки самого запроса). Репозитории используют это,
// чтобы отделить 503 от 500 на границе API
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		// 08xxx - connection exception, 53xxx - insufficient resources,
		// 57P01/57P02/57P03 - сервер останавливается или отклоняет соединения
		return strings.HasPrefix(code, "08") ||
			strings.HasPrefix(code, "53") ||
			strings.HasPrefix(code, "57P")
	}

	return false
}

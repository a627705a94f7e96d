package cms

import "errors"

var (
	// ErrComponentNotFound возвращается, когда компонент не найден
	ErrComponentNotFound = errors.New("cms.service: component not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cms.service: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("cms.service: data store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cms.service: internal error")
)

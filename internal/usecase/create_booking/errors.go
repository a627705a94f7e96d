package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных или неполных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable возвращается, когда на запрошенное время
	// уже занята вся ёмкость
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("create_booking: data store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase,
	// включая неизвестную услугу и отсутствующее правило
	ErrInternal = errors.New("create_booking: internal error")
)

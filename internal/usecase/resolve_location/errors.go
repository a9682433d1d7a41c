package resolve_location

import "errors"

var (
	// ErrLocationNotFound возвращается, когда место не найдено
	ErrLocationNotFound = errors.New("location not found")

	// ErrServiceUnavailable возвращается, когда Places API недоступен и нет текста для разбора
	ErrServiceUnavailable = errors.New("location service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_location: internal error")
)

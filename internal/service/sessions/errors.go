package sessions

import "errors"

var (
	// ErrPrefillNotFound возвращается, когда в сессии нет сохраненного выбора
	ErrPrefillNotFound = errors.New("prefill not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

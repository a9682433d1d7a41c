package places

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда Places API не знает place_id
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("places client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("places client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что Places API недоступен и следует разобрать адрес из текста
	ErrServiceDegraded = errors.New("places api unavailable: graceful degradation applied")
)

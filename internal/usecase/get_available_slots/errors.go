package get_available_slots

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrDateTooSoon возвращается, когда дата нарушает минимальный срок бронирования вендора
	ErrDateTooSoon = errors.New("date is earlier than the vendor's lead time allows")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

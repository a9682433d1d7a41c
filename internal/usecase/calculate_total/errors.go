package calculate_total

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("calculate_total: vendor not found")

	// ErrOfferingNotFound возвращается, когда пакет или услуга не принадлежат вендору
	ErrOfferingNotFound = errors.New("calculate_total: offering not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_total: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_total: internal error")
)

package create_booking

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("create_booking: vendor not found")

	// ErrOfferingNotFound возвращается, когда пакет или услуга не принадлежат вендору
	ErrOfferingNotFound = errors.New("create_booking: offering not found")

	// ErrInvalidDraft возвращается, когда форма бронирования не прошла проверку
	ErrInvalidDraft = errors.New("create_booking: booking form is invalid")

	// ErrPaymentRequired возвращается, когда вендор с мгновенным бронированием, а платеж не передан
	ErrPaymentRequired = errors.New("create_booking: payment is required")

	// ErrPaymentNotFound возвращается, когда платеж не найден у провайдера
	ErrPaymentNotFound = errors.New("create_booking: payment not found")

	// ErrPaymentNotCompleted возвращается, когда платеж еще не прошел
	ErrPaymentNotCompleted = errors.New("create_booking: payment is not completed")

	// ErrPaymentMismatch возвращается, когда сумма или владелец платежа не совпадают с бронированием
	ErrPaymentMismatch = errors.New("create_booking: payment does not match the booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// DraftError ошибки формы по полям. errors.Is(err, ErrInvalidDraft) == true.
type DraftError struct {
	Errors               validate_booking.FieldErrors
	RequiresConfirmation bool
}

func (e *DraftError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	if e.RequiresConfirmation && len(fields) == 0 {
		return fmt.Sprintf("%v: empty selection is not confirmed", ErrInvalidDraft)
	}
	return fmt.Sprintf("%v: invalid fields: %s", ErrInvalidDraft, strings.Join(fields, ", "))
}

func (e *DraftError) Unwrap() error {
	return ErrInvalidDraft
}

package create_payment_intent

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrOfferingNotFound возвращается, когда пакет или услуга не принадлежат вендору
	ErrOfferingNotFound = errors.New("offering not found")

	// ErrInvalidDraft возвращается, когда форма бронирования не прошла проверку
	ErrInvalidDraft = errors.New("create_payment_intent: booking form is invalid")

	// ErrInstantBookingDisabled возвращается, когда вендор принимает только заявки без оплаты
	ErrInstantBookingDisabled = errors.New("vendor does not accept instant bookings")

	// ErrNothingToPay возвращается, когда в смете нет оплачиваемых позиций
	ErrNothingToPay = errors.New("nothing to pay")

	// ErrPaymentRejected возвращается, когда платежный провайдер отклонил запрос
	ErrPaymentRejected = errors.New("payment provider rejected the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)

// DraftError ошибки формы по полям. errors.Is(err, ErrInvalidDraft) == true.
type DraftError struct {
	Errors               validate_booking.FieldErrors
	RequiresConfirmation bool
}

func (e *DraftError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Errors))
	if e.RequiresConfirmation && len(fields) == 0 {
		return fmt.Sprintf("%v: empty selection is not confirmed", ErrInvalidDraft)
	}
	return fmt.Sprintf("%v: invalid fields: %s", ErrInvalidDraft, strings.Join(fields, ", "))
}

func (e *DraftError) Unwrap() error {
	return ErrInvalidDraft
}

package create_booking

import (
	"fmt"
	"strconv"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/create_payment_intent"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	return nil
}

// validatePayment сверяет платеж с пересчитанной сметой и пользователем
func validatePayment(intent *stripepay.PaymentIntent, req *Request, breakdown domain.PriceBreakdown) error {
	if !intent.IsSucceeded() {
		return fmt.Errorf("%w: payment %s has status %s", ErrPaymentNotCompleted, intent.ID, intent.Status)
	}

	if want := domain.AmountInCents(breakdown.Total); intent.AmountCents != want {
		return fmt.Errorf("%w: paid %d, booking total %d", ErrPaymentMismatch, intent.AmountCents, want)
	}

	// Платеж, созданный для другого пользователя или вендора, не подходит
	if owner, ok := intent.Metadata[create_payment_intent.MetadataUserID]; ok && owner != strconv.FormatInt(req.UserID, 10) {
		return fmt.Errorf("%w: payment belongs to another user", ErrPaymentMismatch)
	}
	if vendor, ok := intent.Metadata[create_payment_intent.MetadataVendorID]; ok && vendor != strconv.FormatInt(req.VendorID, 10) {
		return fmt.Errorf("%w: payment belongs to another vendor", ErrPaymentMismatch)
	}

	return nil
}

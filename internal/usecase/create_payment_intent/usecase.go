package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

// Ключи metadata платежа
const (
	MetadataUserID   = "user_id"
	MetadataVendorID = "vendor_id"
	MetadataTotal    = "total"
)

// UseCase use case для создания платежа за бронирование
type UseCase struct {
	validator  DraftValidator
	calculator QuoteCalculator
	gateway    PaymentGateway
	logger     Logger
	newKey     func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(validator DraftValidator, calculator QuoteCalculator, gateway PaymentGateway, logger Logger) *UseCase {
	return &UseCase{
		validator:  validator,
		calculator: calculator,
		gateway:    gateway,
		logger:     logger,
		newKey:     uuid.NewString,
	}
}

// Execute проверяет форму, пересчитывает смету на сервере и создает PaymentIntent на итоговую сумму.
// Сумма от клиента не принимается. Невалидная форма до провайдера не доходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: user=%d, vendor=%d", req.UserID, req.Quote.VendorID)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем форму целиком (шаг review)
	if err := uc.validateDraft(ctx, req); err != nil {
		return nil, err
	}

	// 3. Считаем смету
	quote, err := uc.calculator.Execute(ctx, &req.Quote)
	if err != nil {
		return nil, uc.mapQuoteError(err)
	}

	if quote.Vendor != nil && !quote.Vendor.InstantBooking {
		uc.logger.Warn("CreatePaymentIntent: vendor id=%d does not accept instant bookings", req.Quote.VendorID)
		return nil, ErrInstantBookingDisabled
	}

	amount := domain.AmountInCents(quote.Breakdown.Total)
	if quote.Breakdown.Subtotal <= 0 || amount <= 0 {
		uc.logger.Warn("CreatePaymentIntent: nothing to pay for vendor=%d", req.Quote.VendorID)
		return nil, ErrNothingToPay
	}

	// 4. Ключ идемпотентности: повтор запроса не создает второй платеж
	key := strings.TrimSpace(req.IdempotencyKey)
	if key == "" {
		key = uc.newKey()
	}
	scopedKey := fmt.Sprintf("booking-intent:%d:%s", req.UserID, key)

	// 5. Создаем платеж
	intent, err := uc.gateway.CreatePaymentIntent(ctx, stripepay.CreateIntentParams{
		AmountCents:    amount,
		Currency:       quote.Breakdown.Currency,
		Description:    fmt.Sprintf("Planbeau booking, vendor %d", req.Quote.VendorID),
		IdempotencyKey: scopedKey,
		Metadata: map[string]string{
			MetadataUserID:   strconv.FormatInt(req.UserID, 10),
			MetadataVendorID: strconv.FormatInt(req.Quote.VendorID, 10),
			MetadataTotal:    strconv.FormatFloat(quote.Breakdown.Total, 'f', 2, 64),
		},
	})
	if err != nil {
		if errors.Is(err, stripepay.ErrInvalidRequest) {
			uc.logger.Warn("CreatePaymentIntent: rejected by payment provider: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentRejected, err)
		}
		uc.logger.Error("CreatePaymentIntent: failed to create payment intent: %v", err)
		return nil, fmt.Errorf("%w: failed to create payment intent: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentIntent: created intent id=%s amount=%d %s for user=%d",
		intent.ID, intent.AmountCents, intent.Currency, req.UserID)

	return &Response{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
		Currency:        intent.Currency,
		IdempotencyKey:  key,
		Breakdown:       quote.Breakdown,
	}, nil
}

func (uc *UseCase) validateDraft(ctx context.Context, req *Request) error {
	result, err := uc.validator.Execute(ctx, &validate_booking.Request{
		VendorID:     req.Quote.VendorID,
		Step:         validate_booking.StepReview,
		Draft:        req.Draft,
		ConfirmEmpty: req.ConfirmEmpty,
	})
	if err != nil {
		switch {
		case errors.Is(err, validate_booking.ErrVendorNotFound):
			uc.logger.Warn("CreatePaymentIntent: vendor id=%d not found", req.Quote.VendorID)
			return ErrVendorNotFound
		case errors.Is(err, validate_booking.ErrInvalidInput):
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreatePaymentIntent: failed to validate draft: %v", err)
			return fmt.Errorf("%w: failed to validate draft: %v", ErrInternal, err)
		}
	}

	if !result.Valid {
		draftErr := &DraftError{Errors: result.Errors, RequiresConfirmation: result.RequiresConfirmation}
		uc.logger.Warn("CreatePaymentIntent: %v", draftErr)
		return draftErr
	}

	return nil
}

func (uc *UseCase) mapQuoteError(err error) error {
	switch {
	case errors.Is(err, calculate_total.ErrVendorNotFound):
		return ErrVendorNotFound
	case errors.Is(err, calculate_total.ErrOfferingNotFound):
		return fmt.Errorf("%w: %v", ErrOfferingNotFound, err)
	case errors.Is(err, calculate_total.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreatePaymentIntent: failed to calculate quote: %v", err)
		return fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}
}

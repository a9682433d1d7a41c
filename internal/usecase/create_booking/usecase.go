package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbeau/booking-service/internal/domain"
	bookingRepo "github.com/planbeau/booking-service/internal/infra/storage/booking"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	validator    DraftValidator
	calculator   QuoteCalculator
	payments     PaymentGateway
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator DraftValidator,
	calculator QuoteCalculator,
	payments PaymentGateway,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		calculator:   calculator,
		payments:     payments,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Шаги строго последовательны: проверка формы, пересчет сметы, проверка платежа, запись.
// Повтор с тем же платежом возвращает уже созданное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vendor=%d, date=%s, payment=%q",
		req.UserID, req.VendorID, req.Draft.EventDate.Format(domain.DateFormat), req.PaymentIntentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем форму целиком
	if err := uc.validateDraft(ctx, req); err != nil {
		return nil, err
	}

	// 3. Пересчитываем смету на сервере
	quote, err := uc.calculator.Execute(ctx, &calculate_total.Request{
		VendorID:      req.VendorID,
		PackageID:     req.Draft.PackageID,
		ServiceIDs:    req.Draft.ServiceIDs,
		StartTime:     req.Draft.StartTime,
		EndTime:       req.Draft.EndTime,
		AttendeeCount: req.Draft.AttendeeCount,
		EventLocation: req.Draft.EventLocation,
		Province:      req.Province,
	})
	if err != nil {
		return nil, uc.mapQuoteError(err)
	}

	booking := newBooking(req, quote.Breakdown)

	// 4. Мгновенное бронирование подтверждается только оплаченным платежом
	paid := quote.Vendor != nil && quote.Vendor.InstantBooking
	if paid {
		if err := uc.checkPayment(ctx, req, quote.Breakdown); err != nil {
			return nil, err
		}
		booking.PaymentIntentID = ptr.Ptr(req.PaymentIntentID)
		booking.Status = domain.StatusConfirmed
	}

	// 5. Сохраняем в сериализуемой транзакции
	var (
		result  *domain.Booking
		created bool
	)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if paid {
			existing, err := uc.bookingRepo.GetByPaymentIntentID(txCtx, req.PaymentIntentID)
			switch {
			case err == nil:
				result = existing
				return nil
			case !errors.Is(err, bookingRepo.ErrBookingNotFound):
				return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
			}
		}

		saved, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = saved
		created = true
		return nil
	})

	// Параллельный повтор успел вставить бронирование по тому же платежу
	if errors.Is(err, bookingRepo.ErrDuplicatePaymentIntent) {
		result, err = uc.bookingRepo.GetByPaymentIntentID(ctx, req.PaymentIntentID)
		created = false
	}

	if err != nil {
		uc.logger.Error("CreateBooking: failed to save booking for user=%d, vendor=%d: %v", req.UserID, req.VendorID, err)
		if paid {
			uc.publishOrphanedPayment(ctx, req, quote.Breakdown, err)
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if result.UserID != req.UserID {
		uc.logger.Warn("CreateBooking: payment %s already used by user=%d", req.PaymentIntentID, result.UserID)
		return nil, fmt.Errorf("%w: payment already used", ErrPaymentMismatch)
	}

	// 6. Публикуем событие только для новой записи
	if created {
		uc.logger.Info("CreateBooking: created booking id=%d, status=%s", result.ID, result.Status)
		uc.publish(ctx, domain.Event{
			Type:            domain.EventBookingCreated,
			VendorID:        result.VendorID,
			BookingID:       result.ID,
			UserID:          result.UserID,
			PaymentIntentID: req.PaymentIntentID,
			Amount:          result.Total,
			OccurredAt:      uc.timeProvider.Now(),
		})
	} else {
		uc.logger.Info("CreateBooking: payment %s already has booking id=%d", req.PaymentIntentID, result.ID)
	}

	return &Response{
		Booking:   result,
		Breakdown: quote.Breakdown,
		Created:   created,
	}, nil
}

func (uc *UseCase) validateDraft(ctx context.Context, req *Request) error {
	result, err := uc.validator.Execute(ctx, &validate_booking.Request{
		VendorID:     req.VendorID,
		Step:         validate_booking.StepReview,
		Draft:        req.Draft,
		ConfirmEmpty: req.ConfirmEmpty,
	})
	if err != nil {
		switch {
		case errors.Is(err, validate_booking.ErrVendorNotFound):
			uc.logger.Warn("CreateBooking: vendor id=%d not found", req.VendorID)
			return ErrVendorNotFound
		case errors.Is(err, validate_booking.ErrInvalidInput):
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateBooking: failed to validate draft: %v", err)
			return fmt.Errorf("%w: failed to validate draft: %v", ErrInternal, err)
		}
	}

	if !result.Valid {
		draftErr := &DraftError{Errors: result.Errors, RequiresConfirmation: result.RequiresConfirmation}
		uc.logger.Warn("CreateBooking: %v", draftErr)
		return draftErr
	}

	return nil
}

func (uc *UseCase) checkPayment(ctx context.Context, req *Request, breakdown domain.PriceBreakdown) error {
	if req.PaymentIntentID == "" {
		uc.logger.Warn("CreateBooking: vendor id=%d requires payment", req.VendorID)
		return ErrPaymentRequired
	}

	intent, err := uc.payments.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, stripepay.ErrPaymentIntentNotFound) {
			uc.logger.Warn("CreateBooking: payment %s not found", req.PaymentIntentID)
			return ErrPaymentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get payment %s: %v", req.PaymentIntentID, err)
		return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	if err := validatePayment(intent, req, breakdown); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return err
	}

	return nil
}

// publishOrphanedPayment сообщает о платеже без бронирования для ручной сверки.
// Автоматический возврат не делается.
func (uc *UseCase) publishOrphanedPayment(ctx context.Context, req *Request, breakdown domain.PriceBreakdown, cause error) {
	uc.publish(context.WithoutCancel(ctx), domain.Event{
		Type:            domain.EventPaymentOrphaned,
		VendorID:        req.VendorID,
		UserID:          req.UserID,
		PaymentIntentID: req.PaymentIntentID,
		Amount:          breakdown.Total,
		Reason:          cause.Error(),
		OccurredAt:      uc.timeProvider.Now(),
	})
}

func (uc *UseCase) publish(ctx context.Context, event domain.Event) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish %s: %v", event.Type, err)
	}
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
		uc.logger.Error("CreateBooking: failed to calculate quote: %v", err)
		return fmt.Errorf("%w: failed to calculate quote: %v", ErrInternal, err)
	}
}

// newBooking собирает бронирование-заявку с денормализованной сметой
func newBooking(req *Request, breakdown domain.PriceBreakdown) *domain.Booking {
	booking := &domain.Booking{
		UserID:        req.UserID,
		VendorID:      req.VendorID,
		EventName:     req.Draft.EventName,
		EventType:     req.Draft.EventType,
		EventDate:     req.Draft.EventDate,
		StartTime:     req.Draft.StartTime,
		EndTime:       req.Draft.EndTime,
		AttendeeCount: req.Draft.AttendeeCount,
		EventLocation: req.Draft.EventLocation,
		PackageID:     req.Draft.PackageID,
		ServiceIDs:    req.Draft.ServiceIDs,
		Status:        domain.StatusPending,
		Currency:      breakdown.Currency,
	}
	booking.ApplyBreakdown(breakdown)
	return booking
}

package validate_booking

import (
	"context"
	"errors"
	"fmt"

	vendorRepo "github.com/planbeau/booking-service/internal/infra/storage/vendor"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

// UseCase use case для проверки формы бронирования
type UseCase struct {
	vendorRepo   VendorRepository
	offeringRepo OfferingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vendorRepo VendorRepository, offeringRepo OfferingRepository, logger Logger) *UseCase {
	return &UseCase{
		vendorRepo:   vendorRepo,
		offeringRepo: offeringRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет шаг мастера.
// Шаг review проверяет детали события и выбор целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	uc.logger.Info("ValidateBooking: vendor=%d, step=%s", req.VendorID, req.Step)

	// 1. Валидация входных данных
	if req.VendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}
	step, ok := ParseStep(string(req.Step))
	if !ok {
		return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidInput, req.Step)
	}

	// 2. Получаем вендора (lead time)
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("ValidateBooking: vendor id=%d not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("ValidateBooking: failed to get vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(vendor.Location())
	result := &Result{
		Step:         step,
		Errors:       FieldErrors{},
		Warnings:     []DurationWarning{},
		EarliestDate: vendor.EarliestEventDate(now),
	}

	// 3. Шаг 1: детали события
	if step == StepEventDetails || step == StepReview {
		for field, msg := range ValidateEventDetails(req.Draft, now, vendor.MinLeadTimeHours) {
			result.Errors[field] = msg
		}
	}

	// 4. Шаг 2: выбор пакета и услуг
	if step == StepSelection || step == StepReview {
		if err := uc.checkSelection(ctx, req, result); err != nil {
			return nil, err
		}
	}

	// Пустой выбор не ошибка: после подтверждения пользователя шаг проходит
	result.Valid = !result.Errors.HasErrors() && (!result.RequiresConfirmation || req.ConfirmEmpty)
	result.NextStep = step
	if result.Valid {
		result.NextStep = nextStep(step)
	}

	uc.logger.Info("ValidateBooking: vendor=%d, step=%s, valid=%t, errors=%d",
		req.VendorID, step, result.Valid, len(result.Errors))

	return result, nil
}

func (uc *UseCase) checkSelection(ctx context.Context, req *Request, result *Result) error {
	pkg, services, err := calculate_total.LoadSelection(ctx, uc.offeringRepo, req.VendorID, req.Draft.PackageID, req.Draft.ServiceIDs)
	if err != nil {
		if errors.Is(err, calculate_total.ErrOfferingNotFound) {
			uc.logger.Warn("ValidateBooking: %v", err)
			result.Errors[FieldServices] = "Some selected packages or services are no longer available"
			return nil
		}
		uc.logger.Error("ValidateBooking: failed to load selection: %v", err)
		return fmt.Errorf("%w: failed to load selection: %v", ErrInternal, err)
	}

	selection := ValidateSelection(req.Draft, pkg, services)
	for field, msg := range selection.Errors {
		result.Errors[field] = msg
	}
	result.RequiresConfirmation = selection.RequiresConfirmation

	if pkg != nil {
		if warning := CheckDurationFit(*pkg, req.Draft.StartTime, req.Draft.EndTime); warning != nil {
			result.Warnings = append(result.Warnings, *warning)
		}
	}
	for _, service := range services {
		if warning := CheckDurationFit(service, req.Draft.StartTime, req.Draft.EndTime); warning != nil {
			result.Warnings = append(result.Warnings, *warning)
		}
	}

	return nil
}

func nextStep(step Step) Step {
	switch step {
	case StepEventDetails:
		return StepSelection
	case StepSelection:
		return StepReview
	default:
		return step
	}
}

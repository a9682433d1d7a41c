package calculate_total

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbeau/booking-service/internal/domain"
	vendorRepo "github.com/planbeau/booking-service/internal/infra/storage/vendor"
	"github.com/planbeau/booking-service/pkg/ptr"
)

// UseCase use case для расчета стоимости бронирования
type UseCase struct {
	vendorRepo   VendorRepository
	offeringRepo OfferingRepository
	settings     Settings
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vendorRepo VendorRepository,
	offeringRepo OfferingRepository,
	settings Settings,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		vendorRepo:   vendorRepo,
		offeringRepo: offeringRepo,
		settings:     settings,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case расчета сметы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateTotal: vendor=%d, package=%v, services=%v, time=%s-%s",
		req.VendorID, ptr.Value(req.PackageID), req.ServiceIDs, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateTotal: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем вендора
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("CalculateTotal: vendor id=%d not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("CalculateTotal: failed to get vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	// 3. Загружаем выбранные пакет и услуги
	pkg, services, err := LoadSelection(ctx, uc.offeringRepo, req.VendorID, req.PackageID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, ErrOfferingNotFound) {
			uc.logger.Warn("CalculateTotal: %v", err)
			return nil, err
		}
		uc.logger.Error("CalculateTotal: failed to load selection: %v", err)
		return nil, err
	}

	// 4. Считаем смету
	breakdown := Calculate(Input{
		Services:           services,
		Package:            pkg,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		AttendeeCount:      req.AttendeeCount,
		PlatformFeePercent: ptr.Ptr(uc.settings.PlatformFeePercent),
		Province:           req.Province,
		EventLocation:      req.EventLocation,
		DefaultProvince:    uc.settings.DefaultProvince,
		Currency:           uc.settings.Currency,
	})

	uc.metrics.RecordQuote(breakdown.Province)

	uc.logger.Info("CalculateTotal: vendor=%d subtotal=%.2f total=%.2f province=%s",
		req.VendorID, breakdown.Subtotal, breakdown.Total, breakdown.Province)

	return &Response{
		VendorID:  req.VendorID,
		Vendor:    vendor,
		Breakdown: breakdown,
	}, nil
}

// LoadSelection загружает пакет и услуги вендора по ID.
// Отсутствующий или чужой ID дает ErrOfferingNotFound.
func LoadSelection(
	ctx context.Context,
	repo OfferingRepository,
	vendorID int64,
	packageID *int64,
	serviceIDs []int64,
) (*domain.Offering, []domain.Offering, error) {
	var pkg *domain.Offering

	if packageID != nil {
		packages, err := repo.GetByIDs(ctx, vendorID, domain.KindPackage, []int64{*packageID})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}
		if len(packages) != 1 {
			return nil, nil, fmt.Errorf("%w: package id=%d of vendor id=%d", ErrOfferingNotFound, *packageID, vendorID)
		}
		pkg = &packages[0]
	}

	ids := uniqueIDs(serviceIDs)
	if len(ids) == 0 {
		return pkg, []domain.Offering{}, nil
	}

	services, err := repo.GetByIDs(ctx, vendorID, domain.KindService, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(ids) {
		return nil, nil, fmt.Errorf("%w: %d of %d services missing for vendor id=%d", ErrOfferingNotFound,
			len(ids)-len(services), len(ids), vendorID)
	}

	return pkg, services, nil
}

// Preview считает смету по уже нормализованным предложениям без обращения к хранилищу.
// Комиссия, провинция по умолчанию и валюта берутся из настроек.
func (uc *UseCase) Preview(in Input) domain.PriceBreakdown {
	in.PlatformFeePercent = ptr.Ptr(uc.settings.PlatformFeePercent)
	in.DefaultProvince = uc.settings.DefaultProvince
	in.Currency = uc.settings.Currency

	breakdown := Calculate(in)
	uc.metrics.RecordQuote(breakdown.Province)

	return breakdown
}

package vendors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/infra/clientstore"
	policyRepo "github.com/planbeau/booking-service/internal/infra/storage/policy"
	vendorRepo "github.com/planbeau/booking-service/internal/infra/storage/vendor"
	"github.com/planbeau/booking-service/internal/location"
	"github.com/planbeau/booking-service/internal/service/vendors/models"
)

// Settings параметры сервиса из конфигурации
type Settings struct {
	PublicURL string        // базовый URL SPA
	ViewTTL   time.Duration // сколько помнить просмотр в сессии
}

// Service сервис профилей вендоров
type Service struct {
	vendorRepo   VendorRepository
	offeringRepo OfferingRepository
	policyRepo   PolicyRepository
	store        ClientStore
	publisher    EventPublisher
	qr           QRGenerator
	settings     Settings
	logger       Logger
}

// NewService создает новый экземпляр сервиса вендоров
func NewService(
	vendorRepo VendorRepository,
	offeringRepo OfferingRepository,
	policyRepo PolicyRepository,
	store ClientStore,
	publisher EventPublisher,
	settings Settings,
	logger Logger,
) *Service {
	return &Service{
		vendorRepo:   vendorRepo,
		offeringRepo: offeringRepo,
		policyRepo:   policyRepo,
		store:        store,
		publisher:    publisher,
		qr:           DefaultQRGenerator{},
		settings:     settings,
		logger:       logger,
	}
}

// GetProfile получает профиль вендора с пакетами, услугами и политикой отмены
func (s *Service) GetProfile(ctx context.Context, vendorID int64) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching vendor id=%d", vendorID)

	vendor, err := s.getVendor(ctx, "GetProfile", vendorID)
	if err != nil {
		return nil, err
	}

	packages, err := s.offeringRepo.ListByVendor(ctx, vendorID, domain.KindPackage)
	if err != nil {
		s.logger.Error("GetProfile: failed to list packages of vendor id=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to list packages: %v", ErrInternal, err)
	}

	services, err := s.offeringRepo.ListByVendor(ctx, vendorID, domain.KindService)
	if err != nil {
		s.logger.Error("GetProfile: failed to list services of vendor id=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to list services: %v", ErrInternal, err)
	}

	loc := location.FromProfile(vendor.City, vendor.Province)
	resp := &models.ProfileResponse{
		ID:               vendor.ID,
		BusinessName:     vendor.BusinessName,
		City:             vendor.City,
		Province:         vendor.Province,
		Location:         loc.Display(),
		InstantBooking:   vendor.InstantBooking,
		MinLeadTimeHours: vendor.MinLeadTimeHours,
		Timezone:         vendor.Timezone,
		ProfileURL:       s.ProfileURL(vendor.ID),
		Packages:         toOfferingResponses(packages),
		Services:         toOfferingResponses(services),
	}
	if province, ok := domain.LookupProvince(vendor.Province); ok {
		resp.TaxLabel = province.TaxLabel
	}

	// Политика отмены необязательна для отображения профиля
	if vendor.CancellationPolicyID != nil {
		policy, err := s.policyRepo.GetByID(ctx, *vendor.CancellationPolicyID)
		switch {
		case err == nil:
			resp.CancellationPolicy = &models.PolicyResponse{
				Name:                 policy.Name,
				Description:          policy.Description,
				FullRefundHours:      policy.FullRefundHours,
				PartialRefundPercent: policy.PartialRefundPercent,
			}
		case errors.Is(err, policyRepo.ErrPolicyNotFound):
			s.logger.Warn("GetProfile: policy id=%d of vendor id=%d not found", *vendor.CancellationPolicyID, vendorID)
		default:
			s.logger.Error("GetProfile: failed to get policy of vendor id=%d: %v", vendorID, err)
		}
	}

	s.logger.Info("GetProfile: vendor id=%d, packages=%d, services=%d", vendorID, len(packages), len(services))
	return resp, nil
}

// RecordView учитывает просмотр профиля один раз за сессию и публикует vendor.viewed
func (s *Service) RecordView(ctx context.Context, vendorID int64, sessionID string) (*models.ViewResponse, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if _, err := s.getVendor(ctx, "RecordView", vendorID); err != nil {
		return nil, err
	}

	key := clientstore.ViewKey(sessionID, vendorID)
	_, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		s.logger.Info("RecordView: vendor id=%d already viewed in session %s", vendorID, sessionID)
		return &models.ViewResponse{VendorID: vendorID, Recorded: false}, nil
	case !errors.Is(err, clientstore.ErrNotFound):
		// Без хранилища просмотр считается новым
		s.logger.Warn("RecordView: client store unavailable: %v", err)
	}

	if err := s.store.Set(ctx, key, []byte("1"), s.settings.ViewTTL); err != nil {
		s.logger.Warn("RecordView: failed to remember view of vendor id=%d: %v", vendorID, err)
	}

	if err := s.publisher.Publish(ctx, domain.Event{
		Type:      domain.EventVendorViewed,
		VendorID:  vendorID,
		SessionID: sessionID,
	}); err != nil {
		s.logger.Error("RecordView: failed to publish view of vendor id=%d: %v", vendorID, err)
	}

	return &models.ViewResponse{VendorID: vendorID, Recorded: true}, nil
}

// ShareQR возвращает PNG с QR-кодом ссылки на профиль вендора
// size = 0 означает размер по умолчанию
func (s *Service) ShareQR(ctx context.Context, vendorID int64, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, fmt.Errorf("%w: size must be between %d and %d", ErrInvalidInput, MinQRSize, MaxQRSize)
	}

	if _, err := s.getVendor(ctx, "ShareQR", vendorID); err != nil {
		return nil, err
	}

	png, err := s.qr.Generate(s.ProfileURL(vendorID), size)
	if err != nil {
		s.logger.Error("ShareQR: failed to encode QR for vendor id=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: ShareQR - encode: %v", ErrInternal, err)
	}

	return png, nil
}

// ProfileURL ссылка на публичный профиль вендора
func (s *Service) ProfileURL(vendorID int64) string {
	return fmt.Sprintf("%s/vendor/%d", strings.TrimRight(s.settings.PublicURL, "/"), vendorID)
}

func (s *Service) getVendor(ctx context.Context, op string, vendorID int64) (*domain.Vendor, error) {
	if vendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			s.logger.Warn("%s: vendor id=%d not found", op, vendorID)
			return nil, ErrVendorNotFound
		}
		s.logger.Error("%s: repository error for vendor id=%d: %v", op, vendorID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return vendor, nil
}

func toOfferingResponses(offerings []domain.Offering) []models.OfferingResponse {
	resp := make([]models.OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		resp = append(resp, models.OfferingResponse{
			ID:              o.ID,
			Kind:            string(o.Kind),
			Name:            o.Name,
			Price:           o.Price,
			BaseRate:        o.BaseRate,
			SalePrice:       o.SalePrice,
			PricingModel:    string(o.PricingModel),
			MinAttendees:    o.MinAttendees,
			MaxAttendees:    o.MaxAttendees,
			DurationMinutes: o.DurationMinutes,
		})
	}
	return resp
}

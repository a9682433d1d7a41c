package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/infra/clientstore"
	vendorRepo "github.com/planbeau/booking-service/internal/infra/storage/vendor"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	vendorRepo   VendorRepository
	cache        HoursCache
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil - тогда часы всегда читаются из БД.
func NewUseCase(
	vendorRepo VendorRepository,
	cache HoursCache,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		vendorRepo:   vendorRepo,
		cache:        cache,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: vendor=%d, date=%s", req.VendorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем вендора
	vendor, err := uc.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorRepo.ErrVendorNotFound) {
			uc.logger.Warn("GetAvailableSlots: vendor id=%d not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	// 3. Переводим дату и текущее время в часовой пояс вендора
	loc := vendor.Location()
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, loc)
	now := uc.timeProvider.Now().In(loc)

	// 4. Проверяем lead time
	earliest, err := validateLeadTime(vendor, date, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: vendor=%d: %v", req.VendorID, err)
		return nil, err
	}

	// 5. Получаем рабочие часы (кэш, затем БД)
	hours, err := uc.businessHours(ctx, req.VendorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours of vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots := GenerateSlots(hours, date)

	uc.logger.Info("GetAvailableSlots: generated %d slots for vendor=%d, date=%s",
		len(slots), req.VendorID, date.Format(domain.DateFormat))

	return &Response{
		VendorID:     req.VendorID,
		Date:         date,
		EarliestDate: earliest,
		Slots:        slots,
	}, nil
}

// businessHours читает расписание из кэша; промах или ошибка кэша ведут в БД
func (uc *UseCase) businessHours(ctx context.Context, vendorID int64) ([]domain.BusinessHours, error) {
	key := clientstore.HoursKey(vendorID)

	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, key)
		switch {
		case err == nil:
			var hours []domain.BusinessHours
			if jsonErr := json.Unmarshal(raw, &hours); jsonErr == nil {
				return hours, nil
			}
			uc.logger.Warn("GetAvailableSlots: corrupted hours cache for vendor=%d", vendorID)
		case !errors.Is(err, clientstore.ErrNotFound):
			uc.logger.Warn("GetAvailableSlots: hours cache unavailable: %v", err)
		}
	}

	hours, err := uc.vendorRepo.GetBusinessHours(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && uc.settings.HoursTTL > 0 {
		raw, err := json.Marshal(hours)
		if err == nil {
			err = uc.cache.Set(ctx, key, raw, uc.settings.HoursTTL)
		}
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: failed to cache hours for vendor=%d: %v", vendorID, err)
		}
	}

	return hours, nil
}

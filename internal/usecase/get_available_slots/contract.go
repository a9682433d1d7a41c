package get_available_slots

import (
	"context"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// VendorRepository интерфейс репозитория вендоров
type VendorRepository interface {
	GetByID(ctx context.Context, vendorID int64) (*domain.Vendor, error)
	GetBusinessHours(ctx context.Context, vendorID int64) ([]domain.BusinessHours, error)
}

// HoursCache кэш рабочих часов (клиентское хранилище)
type HoursCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

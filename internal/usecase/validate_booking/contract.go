package validate_booking

import (
	"context"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// VendorRepository интерфейс репозитория вендоров
type VendorRepository interface {
	GetByID(ctx context.Context, vendorID int64) (*domain.Vendor, error)
}

// OfferingRepository интерфейс репозитория пакетов и услуг
type OfferingRepository interface {
	GetByIDs(ctx context.Context, vendorID int64, kind domain.OfferingKind, ids []int64) ([]domain.Offering, error)
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

package vendors

import (
	"context"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// VendorRepository интерфейс репозитория вендоров
type VendorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
}

// OfferingRepository интерфейс репозитория пакетов и услуг
type OfferingRepository interface {
	ListByVendor(ctx context.Context, vendorID int64, kind domain.OfferingKind) ([]domain.Offering, error)
}

// PolicyRepository интерфейс репозитория политик отмены
type PolicyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error)
}

// ClientStore хранилище состояния сессии
type ClientStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// QRGenerator генератор PNG с QR-кодом
type QRGenerator interface {
	Generate(content string, size int) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

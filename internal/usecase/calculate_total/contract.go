package calculate_total

import (
	"context"

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

// Metrics счетчик рассчитанных смет
type Metrics interface {
	RecordQuote(province string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"context"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error)
}

// DraftValidator проверка формы бронирования целиком (шаг review)
type DraftValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Result, error)
}

// QuoteCalculator серверный пересчет сметы
type QuoteCalculator interface {
	Execute(ctx context.Context, req *calculate_total.Request) (*calculate_total.Response, error)
}

// PaymentGateway получение платежа у провайдера
type PaymentGateway interface {
	GetPaymentIntent(ctx context.Context, id string) (*stripepay.PaymentIntent, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

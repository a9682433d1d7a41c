package create_payment_intent

import (
	"context"

	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

// DraftValidator проверка формы бронирования целиком (шаг review)
type DraftValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Result, error)
}

// QuoteCalculator расчет сметы бронирования
type QuoteCalculator interface {
	Execute(ctx context.Context, req *calculate_total.Request) (*calculate_total.Response, error)
}

// PaymentGateway платежный провайдер
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params stripepay.CreateIntentParams) (*stripepay.PaymentIntent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_payment_intent

import (
	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

// Request модель запроса на создание платежа
type Request struct {
	UserID         int64
	Draft          domain.BookingDraft
	ConfirmEmpty   bool // пользователь подтвердил оплату без пакета и услуг
	Quote          calculate_total.Request
	IdempotencyKey string // ключ клиента; пусто = сгенерировать
}

// Response модель ответа с client secret для подтверждения оплаты на клиенте
type Response struct {
	PaymentIntentID string
	ClientSecret    string
	AmountCents     int64
	Currency        string
	IdempotencyKey  string
	Breakdown       domain.PriceBreakdown
}

package stripepay

// Статусы PaymentIntent, которые важны для бронирования
const (
	StatusSucceeded       = "succeeded"
	StatusRequiresPayment = "requires_payment_method"
	StatusCanceled        = "canceled"
)

// CreateIntentParams параметры создания платежа
type CreateIntentParams struct {
	AmountCents    int64
	Currency       string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// PaymentIntent платеж Stripe в объеме, нужном сервису
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
	Metadata     map[string]string
}

// IsSucceeded возвращает true для успешно оплаченного платежа
func (p *PaymentIntent) IsSucceeded() bool {
	return p.Status == StatusSucceeded
}

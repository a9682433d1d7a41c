package create_payment_intent

import (
	"github.com/planbeau/booking-service/internal/api/handlers"
	createPaymentIntent "github.com/planbeau/booking-service/internal/usecase/create_payment_intent"
)

// idempotencyHeader заголовок с ключом идемпотентности клиента
const idempotencyHeader = "Idempotency-Key"

// CreatePaymentIntentRequest HTTP request model
type CreatePaymentIntentRequest struct {
	VendorID int64 `json:"vendorProfileId"`
	handlers.DraftRequest
	ConfirmEmpty bool `json:"confirmEmpty"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	PaymentIntentID string                     `json:"paymentIntentId"`
	ClientSecret    string                     `json:"clientSecret"`
	Amount          int64                      `json:"amount"` // в центах
	Currency        string                     `json:"currency"`
	IdempotencyKey  string                     `json:"idempotencyKey"`
	Breakdown       handlers.BreakdownResponse `json:"breakdown"`
}

// DraftErrorResponse ответ 422 с ошибками формы по полям
type DraftErrorResponse struct {
	Code                 int               `json:"code"`
	Message              string            `json:"message"`
	Errors               map[string]string `json:"errors"`
	RequiresConfirmation bool              `json:"requiresConfirmation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePaymentIntentRequest) ToUseCaseRequest(userID int64, idempotencyKey string) (*createPaymentIntent.Request, error) {
	draft, err := r.ToDomainDraft()
	if err != nil {
		return nil, err
	}
	quote, err := r.ToQuoteRequest(r.VendorID)
	if err != nil {
		return nil, err
	}

	return &createPaymentIntent.Request{
		UserID:         userID,
		Draft:          draft,
		ConfirmEmpty:   r.ConfirmEmpty,
		Quote:          *quote,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: resp.PaymentIntentID,
		ClientSecret:    resp.ClientSecret,
		Amount:          resp.AmountCents,
		Currency:        resp.Currency,
		IdempotencyKey:  resp.IdempotencyKey,
		Breakdown:       handlers.FromBreakdown(resp.Breakdown),
	}
}

// FromDraftError конвертирует ошибки формы в HTTP response
func FromDraftError(status int, message string, err *createPaymentIntent.DraftError) *DraftErrorResponse {
	errs := make(map[string]string, len(err.Errors))
	for field, msg := range err.Errors {
		errs[field] = msg
	}

	return &DraftErrorResponse{
		Code:                 status,
		Message:              message,
		Errors:               errs,
		RequiresConfirmation: err.RequiresConfirmation,
	}
}

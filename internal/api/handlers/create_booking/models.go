package create_booking

import (
	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/service/bookings/models"
	createBooking "github.com/planbeau/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VendorID int64 `json:"vendorProfileId"`
	handlers.DraftRequest
	PaymentIntentID string `json:"paymentIntentId,omitempty"` // обязателен для мгновенного бронирования
	ConfirmEmpty    bool   `json:"confirmEmpty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking   *models.BookingResponse    `json:"booking"`
	Breakdown handlers.BreakdownResponse `json:"breakdown"`
	Created   bool                       `json:"created"`
}

// DraftErrorResponse ответ 422 с ошибками формы по полям
type DraftErrorResponse struct {
	Code                 int               `json:"code"`
	Message              string            `json:"message"`
	Errors               map[string]string `json:"errors"`
	RequiresConfirmation bool              `json:"requiresConfirmation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	draft, err := r.ToDomainDraft()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		VendorID:        r.VendorID,
		Draft:           draft,
		Province:        r.Province,
		PaymentIntentID: r.PaymentIntentID,
		ConfirmEmpty:    r.ConfirmEmpty,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:   models.FromDomainBooking(resp.Booking),
		Breakdown: handlers.FromBreakdown(resp.Breakdown),
		Created:   resp.Created,
	}
}

// FromDraftError конвертирует ошибки формы в HTTP response
func FromDraftError(status int, message string, err *createBooking.DraftError) *DraftErrorResponse {
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

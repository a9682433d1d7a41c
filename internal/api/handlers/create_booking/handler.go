package create_booking

import (
	"errors"
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/api/middleware"
	createBooking "github.com/planbeau/booking-service/internal/usecase/create_booking"
)

const (
	msgMissingUserID       = "authentication required"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidInput        = "invalid booking request"
	msgInvalidDraft        = "booking form has errors"
	msgVendorNotFound      = "vendor not found"
	msgOfferingNotFound    = "package or service not found for this vendor"
	msgPaymentRequired     = "this vendor requires payment before booking"
	msgPaymentNotFound     = "payment not found"
	msgPaymentNotCompleted = "payment has not been completed"
	msgPaymentMismatch     = "payment does not match this booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// 201 - бронирование создано, 200 - повторный запрос с тем же платежом вернул существующее.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var draftErr *createBooking.DraftError
		switch {
		case errors.As(err, &draftErr):
			h.logger.Warn("POST /bookings - Invalid draft: user_id=%d, vendor_id=%d, %v", userID, req.VendorID, err)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity,
				FromDraftError(http.StatusUnprocessableEntity, msgInvalidDraft, draftErr))

		case errors.Is(err, createBooking.ErrVendorNotFound):
			h.logger.Warn("POST /bookings - Vendor not found: vendor_id=%d", req.VendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, createBooking.ErrOfferingNotFound):
			h.logger.Warn("POST /bookings - Offering not found: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, createBooking.ErrPaymentRequired):
			h.logger.Warn("POST /bookings - Payment required: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRequired)

		case errors.Is(err, createBooking.ErrPaymentNotFound):
			h.logger.Warn("POST /bookings - Payment not found: user_id=%d, payment_intent=%s", userID, req.PaymentIntentID)
			handlers.RespondBadRequest(w, msgPaymentNotFound)

		case errors.Is(err, createBooking.ErrPaymentNotCompleted):
			h.logger.Warn("POST /bookings - Payment not completed: user_id=%d, payment_intent=%s", userID, req.PaymentIntentID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotCompleted)

		case errors.Is(err, createBooking.ErrPaymentMismatch):
			h.logger.Warn("POST /bookings - Payment mismatch: user_id=%d, payment_intent=%s, %v",
				userID, req.PaymentIntentID, err)
			handlers.RespondConflict(w, msgPaymentMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, vendor_id=%d, error=%v",
				userID, req.VendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings - Booking saved: booking_id=%d, user_id=%d, vendor_id=%d, status=%s, created=%t",
		result.Booking.ID, userID, req.VendorID, result.Booking.Status, result.Created)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}

package create_payment_intent

import (
	"errors"
	"net/http"
	"strings"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/api/middleware"
	createPaymentIntent "github.com/planbeau/booking-service/internal/usecase/create_payment_intent"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSelection   = "invalid selection"
	msgInvalidDraft       = "booking form has errors"
	msgVendorNotFound     = "vendor not found"
	msgOfferingNotFound   = "package or service not found for this vendor"
	msgInstantBookingOff  = "this vendor accepts booking requests only, no payment is needed"
	msgNothingToPay       = "the booking total is zero, nothing to pay"
	msgPaymentRejected    = "the payment provider rejected the request"
	msgKeyTooLong         = "Idempotency-Key is too long"
)

const maxIdempotencyKeyBytes = 255

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/intents
// Заголовок Idempotency-Key опционален; без него ключ генерируется на сервере.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/intents - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	idempotencyKey := strings.TrimSpace(r.Header.Get(idempotencyHeader))
	if len(idempotencyKey) > maxIdempotencyKeyBytes {
		h.logger.Warn("POST /payments/intents - Idempotency key too long: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgKeyTooLong)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, idempotencyKey)
	if err != nil {
		h.logger.Warn("POST /payments/intents - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var draftErr *createPaymentIntent.DraftError
		switch {
		case errors.As(err, &draftErr):
			h.logger.Warn("POST /payments/intents - Invalid draft: user_id=%d, vendor_id=%d, %v", userID, req.VendorID, err)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity,
				FromDraftError(http.StatusUnprocessableEntity, msgInvalidDraft, draftErr))

		case errors.Is(err, createPaymentIntent.ErrVendorNotFound):
			h.logger.Warn("POST /payments/intents - Vendor not found: vendor_id=%d", req.VendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, createPaymentIntent.ErrOfferingNotFound):
			h.logger.Warn("POST /payments/intents - Offering not found: vendor_id=%d", req.VendorID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, createPaymentIntent.ErrInstantBookingDisabled):
			h.logger.Warn("POST /payments/intents - Instant booking disabled: vendor_id=%d", req.VendorID)
			handlers.RespondConflict(w, msgInstantBookingOff)

		case errors.Is(err, createPaymentIntent.ErrNothingToPay):
			h.logger.Warn("POST /payments/intents - Nothing to pay: user_id=%d, vendor_id=%d", userID, req.VendorID)
			handlers.RespondUnprocessable(w, msgNothingToPay)

		case errors.Is(err, createPaymentIntent.ErrPaymentRejected):
			h.logger.Warn("POST /payments/intents - Payment rejected: user_id=%d, vendor_id=%d, error=%v",
				userID, req.VendorID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRejected)

		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /payments/intents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /payments/intents - Failed to create payment intent: user_id=%d, vendor_id=%d, error=%v",
				userID, req.VendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intents - Payment intent created: id=%s, user_id=%d, vendor_id=%d, amount=%d",
		result.PaymentIntentID, userID, req.VendorID, result.AmountCents)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

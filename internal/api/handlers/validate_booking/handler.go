package validate_booking

import (
	"errors"
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
	validateBooking "github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

const (
	msgInvalidVendorID    = "invalid vendor id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStep        = "invalid step, expected event_details, selection or review"
	msgVendorNotFound     = "vendor not found"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vendors/{vendorId}/bookings/validate
// Ошибки формы возвращаются с кодом 200 в поле errors.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/bookings/validate - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendors/{id}/bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if _, ok := validateBooking.ParseStep(req.Step); !ok {
		h.logger.Warn("POST /vendors/{id}/bookings/validate - Invalid step: %q", req.Step)
		handlers.RespondBadRequest(w, msgInvalidStep)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(vendorID)
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrVendorNotFound):
			h.logger.Warn("POST /vendors/{id}/bookings/validate - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /vendors/{id}/bookings/validate - Invalid input: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidStep)

		default:
			h.logger.Error("POST /vendors/{id}/bookings/validate - Failed to validate booking: vendor_id=%d, error=%v",
				vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vendors/{id}/bookings/validate - Step validated: vendor_id=%d, step=%s, valid=%t",
		vendorID, result.Step, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}

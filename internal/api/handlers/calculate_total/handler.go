package calculate_total

import (
	"errors"
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
	calculateTotal "github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

const (
	msgInvalidVendorID    = "invalid vendor id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSelection   = "invalid selection"
	msgVendorNotFound     = "vendor not found"
	msgOfferingNotFound   = "package or service not found for this vendor"
)

type Handler struct {
	useCase CalculateTotalUseCase
	logger  Logger
}

func NewHandler(useCase CalculateTotalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vendors/{vendorId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/quote - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vendors/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToQuoteRequest(vendorID)
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateTotal.ErrVendorNotFound):
			h.logger.Warn("POST /vendors/{id}/quote - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, calculateTotal.ErrOfferingNotFound):
			h.logger.Warn("POST /vendors/{id}/quote - Offering not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, calculateTotal.ErrInvalidInput):
			h.logger.Warn("POST /vendors/{id}/quote - Invalid selection: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /vendors/{id}/quote - Failed to calculate total: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vendors/{id}/quote - Quote calculated: vendor_id=%d, total=%.2f",
		vendorID, result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

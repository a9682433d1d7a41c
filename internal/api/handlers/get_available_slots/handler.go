package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/planbeau/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidVendorID = "invalid vendor id"
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgVendorNotFound  = "vendor not found"
	msgDateTooSoon     = "this vendor requires more notice before the event date"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /vendors/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(vendorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/available-slots - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooSoon):
			h.logger.Warn("GET /vendors/{id}/available-slots - Date too soon: vendor_id=%d, date=%s", vendorID, dateStr)
			handlers.RespondUnprocessable(w, msgDateTooSoon)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/available-slots - Invalid input: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vendors/{id}/available-slots - Failed to get slots: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/available-slots - Slots retrieved: vendor_id=%d, date=%s, count=%d",
		vendorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

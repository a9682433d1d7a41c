package record_vendor_view

import (
	"errors"
	"net/http"
	"strings"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/service/vendors"
)

const (
	msgInvalidVendorID = "invalid vendor id"
	msgMissingSession  = "X-Session-ID header is required"
	msgVendorNotFound  = "vendor not found"
)

type Handler struct {
	service VendorService
	logger  Logger
}

func NewHandler(service VendorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vendors/{vendorId}/views
// Сессия передается в заголовке X-Session-ID.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("POST /vendors/{id}/views - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	sessionID := strings.TrimSpace(r.Header.Get(handlers.SessionHeader))
	if sessionID == "" {
		h.logger.Warn("POST /vendors/{id}/views - Missing session: vendor_id=%d", vendorID)
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	result, err := h.service.RecordView(r.Context(), vendorID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrVendorNotFound):
			h.logger.Warn("POST /vendors/{id}/views - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, vendors.ErrInvalidInput):
			h.logger.Warn("POST /vendors/{id}/views - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /vendors/{id}/views - Failed to record view: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vendors/{id}/views - View handled: vendor_id=%d, recorded=%t", vendorID, result.Recorded)
	handlers.RespondJSON(w, http.StatusOK, result)
}

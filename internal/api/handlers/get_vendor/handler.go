package get_vendor

import (
	"errors"
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/service/vendors"
)

const (
	msgInvalidVendorID = "invalid vendor id"
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

// Handle GET /api/v1/vendors/{vendorId}
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("GET /vendors/{id} - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), vendorID)
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id} - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		default:
			h.logger.Error("GET /vendors/{id} - Failed to get vendor: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id} - Vendor retrieved: vendor_id=%d", vendorID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}

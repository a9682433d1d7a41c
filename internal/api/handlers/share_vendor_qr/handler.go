package share_vendor_qr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/service/vendors"
)

const (
	msgInvalidVendorID = "invalid vendor id"
	msgInvalidSize     = "invalid size, expected 128 to 1024 pixels"
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

// Handle GET /api/v1/vendors/{vendorId}/share/qr
// Query params: size (опционально, пиксели). Ответ - image/png.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vendorID, err := handlers.PathInt64(r, "vendorId")
	if err != nil {
		h.logger.Warn("GET /vendors/{id}/share/qr - Invalid vendor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /vendors/{id}/share/qr - Invalid size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSize)
			return
		}
	}

	png, err := h.service.ShareQR(r.Context(), vendorID, size)
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrVendorNotFound):
			h.logger.Warn("GET /vendors/{id}/share/qr - Vendor not found: vendor_id=%d", vendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, vendors.ErrInvalidInput):
			h.logger.Warn("GET /vendors/{id}/share/qr - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSize)

		default:
			h.logger.Error("GET /vendors/{id}/share/qr - Failed to generate QR: vendor_id=%d, error=%v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vendors/{id}/share/qr - QR generated: vendor_id=%d, bytes=%d", vendorID, len(png))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

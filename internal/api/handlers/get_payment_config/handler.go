package get_payment_config

import (
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/config
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config := h.service.GetConfig()

	h.logger.Info("GET /payments/config - Config retrieved: currency=%s, provinces=%d",
		config.Currency, len(config.Provinces))
	handlers.RespondJSON(w, http.StatusOK, config)
}

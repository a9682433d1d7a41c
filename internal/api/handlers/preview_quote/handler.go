package preview_quote

import (
	"net/http"

	"github.com/planbeau/booking-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	previewer QuotePreviewer
	logger    Logger
}

func NewHandler(previewer QuotePreviewer, logger Logger) *Handler {
	return &Handler{
		previewer: previewer,
		logger:    logger,
	}
}

// Handle POST /api/v1/quotes/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.logger.Warn("POST /quotes/preview - Failed to normalize request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	breakdown := h.previewer.Preview(input)

	h.logger.Info("POST /quotes/preview - Quote calculated: items=%d, total=%.2f", len(breakdown.Items), breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBreakdown(breakdown))
}

package resolve_location

import (
	"errors"
	"net/http"
	"strings"

	"github.com/planbeau/booking-service/internal/api/handlers"
	resolveLocation "github.com/planbeau/booking-service/internal/usecase/resolve_location"
)

const (
	msgMissingLocation    = "placeId or text is required"
	msgLocationNotFound   = "location not found"
	msgServiceUnavailable = "location service is temporarily unavailable"
)

type Handler struct {
	useCase ResolveLocationUseCase
	logger  Logger
}

func NewHandler(useCase ResolveLocationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/resolve
// Query params: placeId и/или text (хотя бы один)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &resolveLocation.Request{
		PlaceID: strings.TrimSpace(query.Get("placeId")),
		Text:    strings.TrimSpace(query.Get("text")),
	}

	if req.PlaceID == "" && req.Text == "" {
		h.logger.Warn("GET /locations/resolve - Missing placeId and text")
		handlers.RespondBadRequest(w, msgMissingLocation)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveLocation.ErrLocationNotFound):
			h.logger.Warn("GET /locations/resolve - Location not found: place_id=%s", req.PlaceID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, resolveLocation.ErrServiceUnavailable):
			h.logger.Warn("GET /locations/resolve - Places unavailable: place_id=%s", req.PlaceID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)

		case errors.Is(err, resolveLocation.ErrInvalidInput):
			h.logger.Warn("GET /locations/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingLocation)

		default:
			h.logger.Error("GET /locations/resolve - Failed to resolve location: place_id=%s, error=%v", req.PlaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/resolve - Location resolved: display=%q, province=%s, source=%s",
		result.Display, result.ProvinceCode, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

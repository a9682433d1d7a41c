// Package session_state обслуживает состояние анонимной сессии клиента:
// последние поисковые запросы и сохраненный выбор пакета и услуг.
package session_state

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/planbeau/booking-service/internal/api/handlers"
	"github.com/planbeau/booking-service/internal/service/sessions"
	"github.com/planbeau/booking-service/internal/service/sessions/models"
)

const (
	msgInvalidSession    = "invalid session id"
	msgInvalidBody       = "invalid request body"
	msgPrefillNotFound   = "no saved selection for this session"
	msgInvalidPrefill    = "vendorProfileId must be positive"
	msgInvalidSearchText = "query must not be empty"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	session := h.service.Create(r.Context())
	handlers.RespondJSON(w, http.StatusCreated, session)
}

// RecentSearches GET /api/v1/sessions/{sessionId}/recent-searches
func (h *Handler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	resp, err := h.service.RecentSearches(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "GET /sessions/{id}/recent-searches", err, msgInvalidSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// AddRecentSearch POST /api/v1/sessions/{sessionId}/recent-searches
func (h *Handler) AddRecentSearch(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.AddRecentSearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/recent-searches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.service.AddRecentSearch(r.Context(), sessionID, req.Query)
	if err != nil {
		h.respondError(w, "POST /sessions/{id}/recent-searches", err, msgInvalidSearchText)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// ClearRecentSearches DELETE /api/v1/sessions/{sessionId}/recent-searches
func (h *Handler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.ClearRecentSearches(r.Context(), sessionID); err != nil {
		h.respondError(w, "DELETE /sessions/{id}/recent-searches", err, msgInvalidSession)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPrefill GET /api/v1/sessions/{sessionId}/prefill
func (h *Handler) GetPrefill(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	prefill, err := h.service.GetPrefill(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "GET /sessions/{id}/prefill", err, msgInvalidSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prefill)
}

// SavePrefill PUT /api/v1/sessions/{sessionId}/prefill
func (h *Handler) SavePrefill(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var prefill models.Prefill
	if err := handlers.DecodeJSON(r, &prefill); err != nil {
		h.logger.Warn("PUT /sessions/{id}/prefill - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.SavePrefill(r.Context(), sessionID, &prefill); err != nil {
		h.respondError(w, "PUT /sessions/{id}/prefill", err, msgInvalidPrefill)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prefill)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error, invalidMsg string) {
	switch {
	case errors.Is(err, sessions.ErrPrefillNotFound):
		handlers.RespondNotFound(w, msgPrefillNotFound)

	case errors.Is(err, sessions.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, invalidMsg)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

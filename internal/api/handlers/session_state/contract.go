package session_state

import (
	"context"

	"github.com/planbeau/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Create(ctx context.Context) *models.SessionResponse
	RecentSearches(ctx context.Context, sessionID string) (*models.RecentSearchesResponse, error)
	AddRecentSearch(ctx context.Context, sessionID, query string) (*models.RecentSearchesResponse, error)
	ClearRecentSearches(ctx context.Context, sessionID string) error
	GetPrefill(ctx context.Context, sessionID string) (*models.Prefill, error)
	SavePrefill(ctx context.Context, sessionID string, prefill *models.Prefill) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

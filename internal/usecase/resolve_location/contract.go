package resolve_location

import (
	"context"

	"github.com/planbeau/booking-service/internal/integrations/places"
)

// PlacesClient интерфейс клиента Google Places
type PlacesClient interface {
	GetPlaceDetailsWithGracefulDegradation(ctx context.Context, placeID string) (*places.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

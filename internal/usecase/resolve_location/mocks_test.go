package resolve_location

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/integrations/places"
)

type mockPlacesClient struct {
	mock.Mock
}

func (m *mockPlacesClient) GetPlaceDetailsWithGracefulDegradation(ctx context.Context, placeID string) (*places.Place, error) {
	args := m.Called(ctx, placeID)
	place, _ := args.Get(0).(*places.Place)
	return place, args.Error(1)
}

package validate_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/domain"
)

type mockVendorRepository struct {
	mock.Mock
}

func (m *mockVendorRepository) GetByID(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	vendor, _ := args.Get(0).(*domain.Vendor)
	return vendor, args.Error(1)
}

type mockOfferingRepository struct {
	mock.Mock
}

func (m *mockOfferingRepository) GetByIDs(ctx context.Context, vendorID int64, kind domain.OfferingKind, ids []int64) ([]domain.Offering, error) {
	args := m.Called(ctx, vendorID, kind, ids)
	offerings, _ := args.Get(0).([]domain.Offering)
	return offerings, args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

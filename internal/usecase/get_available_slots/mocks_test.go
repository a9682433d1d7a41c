package get_available_slots

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

func (m *mockVendorRepository) GetBusinessHours(ctx context.Context, vendorID int64) ([]domain.BusinessHours, error) {
	args := m.Called(ctx, vendorID)
	hours, _ := args.Get(0).([]domain.BusinessHours)
	return hours, args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

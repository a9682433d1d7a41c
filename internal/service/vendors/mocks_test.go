package vendors

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/domain"
)

type mockVendorRepository struct {
	mock.Mock
}

func (m *mockVendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	args := m.Called(ctx, id)
	vendor, _ := args.Get(0).(*domain.Vendor)
	return vendor, args.Error(1)
}

type mockOfferingRepository struct {
	mock.Mock
}

func (m *mockOfferingRepository) ListByVendor(ctx context.Context, vendorID int64, kind domain.OfferingKind) ([]domain.Offering, error) {
	args := m.Called(ctx, vendorID, kind)
	offerings, _ := args.Get(0).([]domain.Offering)
	return offerings, args.Error(1)
}

type mockPolicyRepository struct {
	mock.Mock
}

func (m *mockPolicyRepository) GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error) {
	args := m.Called(ctx, id)
	policy, _ := args.Get(0).(*domain.CancellationPolicy)
	return policy, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// failingStore хранилище, которое всегда недоступно
type failingStore struct {
	err error
}

func (s failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, s.err
}

func (s failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return s.err
}

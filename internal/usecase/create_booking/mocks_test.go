package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	created, _ := args.Get(0).(*domain.Booking)
	return created, args.Error(1)
}

func (m *mockBookingRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	args := m.Called(ctx, paymentIntentID)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

type mockDraftValidator struct {
	mock.Mock
}

func (m *mockDraftValidator) Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*validate_booking.Result)
	return result, args.Error(1)
}

type mockQuoteCalculator struct {
	mock.Mock
}

func (m *mockQuoteCalculator) Execute(ctx context.Context, req *calculate_total.Request) (*calculate_total.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*calculate_total.Response)
	return resp, args.Error(1)
}

type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) GetPaymentIntent(ctx context.Context, id string) (*stripepay.PaymentIntent, error) {
	args := m.Called(ctx, id)
	intent, _ := args.Get(0).(*stripepay.PaymentIntent)
	return intent, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

package create_payment_intent

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
)

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

func (m *mockPaymentGateway) CreatePaymentIntent(ctx context.Context, params stripepay.CreateIntentParams) (*stripepay.PaymentIntent, error) {
	args := m.Called(ctx, params)
	intent, _ := args.Get(0).(*stripepay.PaymentIntent)
	return intent, args.Error(1)
}

package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/integrations/stripepay"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/logger"
)

func quoteResponse(instant bool, subtotal, total float64) *calculate_total.Response {
	return &calculate_total.Response{
		VendorID:  7,
		Vendor:    &domain.Vendor{ID: 7, InstantBooking: instant},
		Breakdown: domain.PriceBreakdown{Subtotal: subtotal, Total: total, Currency: "cad"},
	}
}

func testDraft() domain.BookingDraft {
	return domain.BookingDraft{
		EventName:     "Smith wedding",
		EventType:     "wedding",
		EventDate:     time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		StartTime:     "16:00",
		EndTime:       "22:00",
		AttendeeCount: 120,
		EventLocation: "Toronto, ON",
		ServiceIDs:    []int64{20},
	}
}

func validResult() *validate_booking.Result {
	return &validate_booking.Result{Step: validate_booking.StepReview, Valid: true, Errors: validate_booking.FieldErrors{}}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	quoteReq := calculate_total.Request{VendorID: 7, ServiceIDs: []int64{20}}
	draft := testDraft()
	reviewReq := &validate_booking.Request{VendorID: 7, Step: validate_booking.StepReview, Draft: draft}

	tests := []struct {
		name         string
		req          *Request
		prepareMocks func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway)
		wantErr      error
		wantKey      string
	}{
		{
			name: "success_client_key",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq, IdempotencyKey: "abc"},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(true, 1000, 1221.9), nil).Once()
				g.On("CreatePaymentIntent", ctx, stripepay.CreateIntentParams{
					AmountCents:    122190,
					Currency:       "cad",
					Description:    "Planbeau booking, vendor 7",
					IdempotencyKey: "booking-intent:42:abc",
					Metadata:       map[string]string{"user_id": "42", "vendor_id": "7", "total": "1221.90"},
				}).Return(&stripepay.PaymentIntent{ID: "pi_1", ClientSecret: "secret", AmountCents: 122190, Currency: "cad"}, nil).Once()
			},
			wantKey: "abc",
		},
		{
			name: "success_generated_key",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(true, 9, 10), nil).Once()
				g.On("CreatePaymentIntent", ctx, mock.MatchedBy(func(p stripepay.CreateIntentParams) bool {
					return p.IdempotencyKey == "booking-intent:42:generated" && p.AmountCents == 1000
				})).Return(&stripepay.PaymentIntent{ID: "pi_2", AmountCents: 1000, Currency: "cad"}, nil).Once()
			},
			wantKey: "generated",
		},
		{
			name: "error_invalid_draft_never_reaches_provider",
			req:  &Request{UserID: 7, Draft: domain.BookingDraft{}, Quote: calculate_total.Request{VendorID: 7}},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, &validate_booking.Request{VendorID: 7, Step: validate_booking.StepReview}).
					Return(&validate_booking.Result{
						Step:  validate_booking.StepEventDetails,
						Valid: false,
						Errors: validate_booking.FieldErrors{
							validate_booking.FieldEventName:     "Event name is required",
							validate_booking.FieldAttendeeCount: "Number of guests must be at least 1",
						},
					}, nil).Once()
			},
			wantErr: ErrInvalidDraft,
		},
		{
			name: "error_validator_vendor_not_found",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(nil, validate_booking.ErrVendorNotFound).Once()
			},
			wantErr: ErrVendorNotFound,
		},
		{
			name: "error_request_only_vendor",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(false, 100, 120), nil).Once()
			},
			wantErr: ErrInstantBookingDisabled,
		},
		{
			name: "error_nothing_to_pay_processing_fee_only",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq, ConfirmEmpty: true},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, &validate_booking.Request{
					VendorID: 7, Step: validate_booking.StepReview, Draft: draft, ConfirmEmpty: true,
				}).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(true, 0, 0.30), nil).Once()
			},
			wantErr: ErrNothingToPay,
		},
		{
			name: "error_vendor_not_found",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(nil, calculate_total.ErrVendorNotFound).Once()
			},
			wantErr: ErrVendorNotFound,
		},
		{
			name: "error_offering_not_found",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).
					Return(nil, fmt.Errorf("%w: service 20", calculate_total.ErrOfferingNotFound)).Once()
			},
			wantErr: ErrOfferingNotFound,
		},
		{
			name: "error_provider_rejected",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(true, 9, 10), nil).Once()
				g.On("CreatePaymentIntent", ctx, mock.Anything).
					Return(nil, fmt.Errorf("%w: amount too small", stripepay.ErrInvalidRequest)).Once()
			},
			wantErr: ErrPaymentRejected,
		},
		{
			name: "error_provider_down",
			req:  &Request{UserID: 42, Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {
				v.On("Execute", ctx, reviewReq).Return(validResult(), nil).Once()
				c.On("Execute", ctx, &quoteReq).Return(quoteResponse(true, 9, 10), nil).Once()
				g.On("CreatePaymentIntent", ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()
			},
			wantErr: ErrInternal,
		},
		{
			name:         "error_missing_user",
			req:          &Request{Draft: draft, Quote: quoteReq},
			prepareMocks: func(v *mockDraftValidator, c *mockQuoteCalculator, g *mockPaymentGateway) {},
			wantErr:      ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &mockDraftValidator{}
			calculator := &mockQuoteCalculator{}
			gateway := &mockPaymentGateway{}
			tt.prepareMocks(validator, calculator, gateway)

			uc := NewUseCase(validator, calculator, gateway, logger.NewNop())
			uc.newKey = func() string { return "generated" }

			resp, err := uc.Execute(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantKey, resp.IdempotencyKey)
				assert.NotEmpty(t, resp.PaymentIntentID)
			}

			validator.AssertExpectations(t)
			calculator.AssertExpectations(t)
			gateway.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_InvalidDraftFields(t *testing.T) {
	ctx := context.Background()
	validator := &mockDraftValidator{}
	calculator := &mockQuoteCalculator{}
	gateway := &mockPaymentGateway{}

	validator.On("Execute", ctx, mock.Anything).Return(&validate_booking.Result{
		Valid:                false,
		Errors:               validate_booking.FieldErrors{},
		RequiresConfirmation: true,
	}, nil).Once()

	uc := NewUseCase(validator, calculator, gateway, logger.NewNop())
	_, err := uc.Execute(ctx, &Request{UserID: 42, Draft: testDraft(), Quote: calculate_total.Request{VendorID: 7}})

	var draftErr *DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.True(t, draftErr.RequiresConfirmation)
	assert.Contains(t, draftErr.Error(), "empty selection is not confirmed")

	calculator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
}

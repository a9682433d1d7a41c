package create_payment_intent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/api/middleware"
	"github.com/planbeau/booking-service/internal/domain"
	createPaymentIntent "github.com/planbeau/booking-service/internal/usecase/create_payment_intent"
	"github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createPaymentIntent.Request) (*createPaymentIntent.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createPaymentIntent.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	body := `{"vendorProfileId":7,"eventName":"Smith wedding","eventType":"wedding","eventDate":"2026-07-18",` +
		`"attendeeCount":120,"eventLocation":"Toronto, ON","serviceIds":[20],"startTime":"10:00","endTime":"14:00","province":"ON"}`

	tests := []struct {
		name         string
		userID       int64
		idemKey      string
		body         string
		prepareMocks func(uc *mockUseCase)
		wantStatus   int
	}{
		{
			name:    "success",
			userID:  42,
			idemKey: "client-key-1",
			body:    body,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createPaymentIntent.Request) bool {
					return req.UserID == 42 && req.IdempotencyKey == "client-key-1" &&
						req.Quote.VendorID == 7 && req.Quote.Province == "ON" &&
						req.Draft.EventName == "Smith wedding" && req.Draft.AttendeeCount == 120 &&
						req.Draft.StartTime == "10:00"
				})).Return(&createPaymentIntent.Response{
					PaymentIntentID: "pi_1",
					ClientSecret:    "pi_1_secret",
					AmountCents:     122190,
					Currency:        "cad",
					IdempotencyKey:  "client-key-1",
					Breakdown:       domain.PriceBreakdown{Total: 1221.9},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			body:       body,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid_body",
			userID:     42,
			body:       `{"vendorProfileId":"x"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "key_too_long",
			userID:     42,
			idemKey:    strings.Repeat("k", 300),
			body:       body,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "request_only_vendor",
			userID: 42,
			body:   body,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createPaymentIntent.ErrInstantBookingDisabled)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "invalid_draft",
			userID: 42,
			body:   `{"vendorProfileId":7,"serviceIds":[20]}`,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createPaymentIntent.DraftError{
					Errors: validate_booking.FieldErrors{validate_booking.FieldEventName: "Event name is required"},
				})
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid_event_date",
			userID:     42,
			body:       `{"vendorProfileId":7,"eventDate":"18/07/2026"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "nothing_to_pay",
			userID: 42,
			body:   body,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createPaymentIntent.ErrNothingToPay)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "rejected_by_provider",
			userID: 42,
			body:   body,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createPaymentIntent.ErrPaymentRejected)
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:   "internal_error",
			userID: 42,
			body:   body,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("stripe down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.prepareMocks != nil {
				tt.prepareMocks(uc)
			}

			r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/intents", strings.NewReader(tt.body))
			if tt.userID != 0 {
				r = r.WithContext(middleware.WithUserID(r.Context(), tt.userID))
			}
			if tt.idemKey != "" {
				r.Header.Set("Idempotency-Key", tt.idemKey)
			}
			w := httptest.NewRecorder()

			NewHandler(uc, logger.NewNop()).Handle(w, r)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp PaymentIntentResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "pi_1_secret", resp.ClientSecret)
				assert.Equal(t, int64(122190), resp.Amount)
			}
			if tt.name == "invalid_draft" {
				var resp DraftErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Event name is required", resp.Errors["eventName"])
			}
			uc.AssertExpectations(t)
		})
	}
}

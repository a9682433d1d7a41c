package validate_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	validateBooking "github.com/planbeau/booking-service/internal/usecase/validate_booking"
	"github.com/planbeau/booking-service/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *validateBooking.Request) (*validateBooking.Result, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*validateBooking.Result)
	return res, args.Error(1)
}

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/vendors/{vendorId}/bookings/validate", NewHandler(uc, logger.NewNop()).Handle)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/vendors/7/bookings/validate", strings.NewReader(body)))
	return w
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMocks func(uc *mockUseCase)
		wantStatus   int
	}{
		{
			name: "field_errors_are_data",
			body: `{"step":"event_details","eventName":"","eventDate":"2026-07-18"}`,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *validateBooking.Request) bool {
					return req.VendorID == 7 && req.Step == validateBooking.StepEventDetails &&
						req.Draft.EventDate.Equal(time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC))
				})).Return(&validateBooking.Result{
					Step:     validateBooking.StepEventDetails,
					NextStep: validateBooking.StepEventDetails,
					Errors:   validateBooking.FieldErrors{validateBooking.FieldEventName: "Event name is required"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_step",
			body:       `{"step":"payment"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_date",
			body:       `{"step":"review","eventDate":"July 18"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "vendor_not_found",
			body: `{"step":"selection"}`,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, validateBooking.ErrVendorNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "internal_error",
			body: `{"step":"selection"}`,
			prepareMocks: func(uc *mockUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
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

			w := serve(uc, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandler_Handle_ConfirmationResponse(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *validateBooking.Request) bool {
		return req.ConfirmEmpty && req.Step == validateBooking.StepSelection
	})).Return(&validateBooking.Result{
		Step:                 validateBooking.StepSelection,
		Valid:                true,
		NextStep:             validateBooking.StepReview,
		Errors:               validateBooking.FieldErrors{},
		RequiresConfirmation: true,
		EarliestDate:         time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	w := serve(uc, `{"step":"selection","confirmEmpty":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.True(t, body.RequiresConfirmation)
	assert.Equal(t, "review", body.NextStep)
	assert.Equal(t, "2026-07-01", body.EarliestDate)
	assert.NotNil(t, body.Warnings)
	assert.Empty(t, body.Errors)
}

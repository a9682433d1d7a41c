package cancel_booking

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/api/middleware"
	"github.com/planbeau/booking-service/internal/service/bookings"
	"github.com/planbeau/booking-service/internal/service/bookings/models"
	"github.com/planbeau/booking-service/pkg/logger"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	args := m.Called(ctx, bookingID, req)
	return args.Error(0)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		userID       int64
		prepareMocks func(s *mockBookingService)
		wantStatus   int
	}{
		{
			name:   "success_with_reason",
			body:   `{"cancellationReason":"plans changed"}`,
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), &models.CancelBookingRequest{
					UserID:             42,
					CancellationReason: "plans changed",
				}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "success_without_body",
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), &models.CancelBookingRequest{UserID: 42}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid_body",
			body:       `{`,
			userID:     42,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "already_cancelled",
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(bookings.ErrCannotCancel)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "foreign_booking",
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(bookings.ErrAccessDenied)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "not_found",
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(bookings.ErrBookingNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "reason_too_long",
			body:   `{"cancellationReason":"x"}`,
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(bookings.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "internal_error",
			userID: 42,
			prepareMocks: func(s *mockBookingService) {
				s.On("Cancel", mock.Anything, int64(5), mock.Anything).Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockBookingService{}
			if tt.prepareMocks != nil {
				tt.prepareMocks(s)
			}

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(s, logger.NewNop()).Handle)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/5/cancel", body)
			if tt.userID != 0 {
				r = r.WithContext(middleware.WithUserID(r.Context(), tt.userID))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			s.AssertExpectations(t)
		})
	}
}

package record_vendor_view

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/planbeau/booking-service/internal/service/vendors"
	"github.com/planbeau/booking-service/internal/service/vendors/models"
	"github.com/planbeau/booking-service/pkg/logger"
)

type mockVendorService struct {
	mock.Mock
}

func (m *mockVendorService) RecordView(ctx context.Context, vendorID int64, sessionID string) (*models.ViewResponse, error) {
	args := m.Called(ctx, vendorID, sessionID)
	resp, _ := args.Get(0).(*models.ViewResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name         string
		sessionID    string
		prepareMocks func(s *mockVendorService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "recorded",
			sessionID: "sess-1",
			prepareMocks: func(s *mockVendorService) {
				s.On("RecordView", mock.Anything, int64(7), "sess-1").
					Return(&models.ViewResponse{VendorID: 7, Recorded: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"vendorProfileId":7,"recorded":true}`,
		},
		{
			name:       "missing_session",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "vendor_not_found",
			sessionID: "sess-1",
			prepareMocks: func(s *mockVendorService) {
				s.On("RecordView", mock.Anything, int64(7), "sess-1").Return(nil, vendors.ErrVendorNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "internal_error",
			sessionID: "sess-1",
			prepareMocks: func(s *mockVendorService) {
				s.On("RecordView", mock.Anything, int64(7), "sess-1").Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockVendorService{}
			if tt.prepareMocks != nil {
				tt.prepareMocks(s)
			}

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/vendors/{vendorId}/views", NewHandler(s, logger.NewNop()).Handle)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/7/views", nil)
			if tt.sessionID != "" {
				r.Header.Set("X-Session-ID", tt.sessionID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			s.AssertExpectations(t)
		})
	}
}

package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/internal/domain"
	bookingRepo "github.com/planbeau/booking-service/internal/infra/storage/booking"
	"github.com/planbeau/booking-service/internal/service/bookings/models"
	"github.com/planbeau/booking-service/pkg/logger"
	"github.com/planbeau/booking-service/pkg/ptr"
)

func newTestService(repo *mockBookingRepository, publisher *mockEventPublisher, now time.Time) *Service {
	s := NewService(repo, publisher, logger.NewNop())
	s.timeProvider = &fixedTimeProvider{now: now}
	return s
}

func ownedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              5,
		UserID:          42,
		VendorID:        7,
		PaymentIntentID: ptr.Ptr("pi_123"),
		EventName:       "Smith wedding",
		EventDate:       time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "14:00",
		Status:          status,
		Total:           1221.9,
	}
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		userID       int64
		prepareMocks func(repo *mockBookingRepository)
		wantErr      error
	}{
		{
			name:   "success_owner",
			userID: 42,
			prepareMocks: func(repo *mockBookingRepository) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusConfirmed), nil).Once()
			},
		},
		{
			name:   "error_other_user",
			userID: 43,
			prepareMocks: func(repo *mockBookingRepository) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusConfirmed), nil).Once()
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:   "error_not_found",
			userID: 42,
			prepareMocks: func(repo *mockBookingRepository) {
				repo.On("GetByID", ctx, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound).Once()
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name:   "error_repository",
			userID: 42,
			prepareMocks: func(repo *mockBookingRepository) {
				repo.On("GetByID", ctx, int64(5)).Return(nil, bookingRepo.ErrExecQuery).Once()
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			tt.prepareMocks(repo)
			s := newTestService(repo, &mockEventPublisher{}, time.Now())

			resp, err := s.GetByID(ctx, 5, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "2026-07-18", resp.EventDate)
				assert.Equal(t, "10:00", resp.StartTime)
				assert.Equal(t, []int64{}, resp.ServiceIDs)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_GetUserBookings(t *testing.T) {
	ctx := context.Background()
	confirmed := domain.StatusConfirmed

	tests := []struct {
		name       string
		req        *models.GetUserBookingsRequest
		wantFilter domain.UserBookingsFilter
		wantErr    error
	}{
		{
			name:       "default_page_size",
			req:        &models.GetUserBookingsRequest{UserID: 42},
			wantFilter: domain.UserBookingsFilter{UserID: 42, Limit: DefaultPageSize},
		},
		{
			name:       "status_and_capped_limit",
			req:        &models.GetUserBookingsRequest{UserID: 42, Status: ptr.Ptr("confirmed"), Limit: 1000, Offset: 40},
			wantFilter: domain.UserBookingsFilter{UserID: 42, Status: &confirmed, Limit: MaxPageSize, Offset: 40},
		},
		{
			name:    "error_invalid_status",
			req:     &models.GetUserBookingsRequest{UserID: 42, Status: ptr.Ptr("no_show")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "error_missing_user",
			req:     &models.GetUserBookingsRequest{},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			if tt.wantErr == nil {
				repo.On("GetByUserWithFilter", ctx, tt.wantFilter).
					Return([]*domain.Booking{ownedBooking(domain.StatusConfirmed)}, nil).Once()
			}
			s := newTestService(repo, &mockEventPublisher{}, time.Now())

			resp, err := s.GetUserBookings(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, resp.Bookings, 1)
				assert.Equal(t, tt.wantFilter.Limit, resp.Limit)
				assert.Equal(t, tt.wantFilter.Offset, resp.Offset)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          *models.CancelBookingRequest
		prepareMocks func(repo *mockBookingRepository, publisher *mockEventPublisher)
		wantErr      error
	}{
		{
			name: "success",
			req:  &models.CancelBookingRequest{UserID: 42, CancellationReason: "  plans changed "},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusConfirmed), nil).Once()
				repo.On("Cancel", ctx, int64(5), domain.StatusCancelledByUser, "plans changed").Return(nil).Once()
				publisher.On("Publish", ctx, domain.Event{
					Type:            domain.EventBookingCancelled,
					VendorID:        7,
					BookingID:       5,
					UserID:          42,
					PaymentIntentID: "pi_123",
					Reason:          "plans changed",
					OccurredAt:      now,
				}).Return(nil).Once()
			},
		},
		{
			name: "success_publish_failure_ignored",
			req:  &models.CancelBookingRequest{UserID: 42},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusPending), nil).Once()
				repo.On("Cancel", ctx, int64(5), domain.StatusCancelledByUser, "").Return(nil).Once()
				publisher.On("Publish", ctx, mock.Anything).Return(errors.New("kafka down")).Once()
			},
		},
		{
			name: "error_already_cancelled",
			req:  &models.CancelBookingRequest{UserID: 42},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusCancelledByVendor), nil).Once()
			},
			wantErr: ErrCannotCancel,
		},
		{
			name: "error_completed",
			req:  &models.CancelBookingRequest{UserID: 42},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusCompleted), nil).Once()
			},
			wantErr: ErrCannotCancel,
		},
		{
			name: "error_other_user",
			req:  &models.CancelBookingRequest{UserID: 43},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusConfirmed), nil).Once()
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:         "error_reason_too_long",
			req:          &models.CancelBookingRequest{UserID: 42, CancellationReason: strings.Repeat("я", 501)},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {},
			wantErr:      ErrInvalidInput,
		},
		{
			name: "error_cancel_race",
			req:  &models.CancelBookingRequest{UserID: 42},
			prepareMocks: func(repo *mockBookingRepository, publisher *mockEventPublisher) {
				repo.On("GetByID", ctx, int64(5)).Return(ownedBooking(domain.StatusConfirmed), nil).Once()
				repo.On("Cancel", ctx, int64(5), domain.StatusCancelledByUser, "").Return(bookingRepo.ErrBookingNotFound).Once()
			},
			wantErr: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			publisher := &mockEventPublisher{}
			tt.prepareMocks(repo, publisher)
			s := newTestService(repo, publisher, now)

			err := s.Cancel(ctx, 5, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

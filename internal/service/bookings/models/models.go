package models

import (
	"errors"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserBookingsRequest) ToDomainFilter() (domain.UserBookingsFilter, error) {
	filter := domain.UserBookingsFilter{
		UserID: r.UserID,
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	VendorID        int64   `json:"vendorProfileId"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`
	EventName       string  `json:"eventName"`
	EventType       string  `json:"eventType,omitempty"`
	EventDate       string  `json:"eventDate"` // "2026-07-18"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`
	AttendeeCount   int     `json:"attendeeCount"`
	EventLocation   string  `json:"eventLocation,omitempty"`
	PackageID       *int64  `json:"packageId,omitempty"`
	ServiceIDs      []int64 `json:"serviceIds"`
	Status          string  `json:"status"`

	// Смета на момент бронирования
	Subtotal      float64 `json:"subtotal"`
	PlatformFee   float64 `json:"platformFee"`
	TaxAmount     float64 `json:"taxAmount"`
	TaxLabel      string  `json:"taxLabel,omitempty"`
	ProcessingFee float64 `json:"processingFee"`
	Total         float64 `json:"totalAmount"`
	Currency      string  `json:"currency,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Limit    uint64            `json:"limit"`
	Offset   uint64            `json:"offset"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	serviceIDs := b.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		VendorID:           b.VendorID,
		PaymentIntentID:    b.PaymentIntentID,
		EventName:          b.EventName,
		EventType:          b.EventType,
		EventDate:          b.EventDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		AttendeeCount:      b.AttendeeCount,
		EventLocation:      b.EventLocation,
		PackageID:          b.PackageID,
		ServiceIDs:         serviceIDs,
		Status:             string(b.Status),
		Subtotal:           b.Subtotal,
		PlatformFee:        b.PlatformFee,
		TaxAmount:          b.TaxAmount,
		TaxLabel:           b.TaxLabel,
		ProcessingFee:      b.ProcessingFee,
		Total:              b.Total,
		Currency:           b.Currency,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByVendor,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

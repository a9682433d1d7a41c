package domain

import (
	"time"

	"github.com/planbeau/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending" // Request awaiting vendor approval
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByUser   BookingStatus = "cancelled_by_user"
	StatusCancelledByVendor BookingStatus = "cancelled_by_vendor"
)

// BookingDraft is the user's in-progress booking selection
type BookingDraft struct {
	EventName     string
	EventType     string
	EventDate     time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	AttendeeCount int
	EventLocation string
	PackageID     *int64
	ServiceIDs    []int64
}

// HasSelection returns true if a package or at least one service is selected
func (d *BookingDraft) HasSelection() bool {
	return d.PackageID != nil || len(d.ServiceIDs) > 0
}

// Booking represents a persisted vendor booking
type Booking struct {
	ID              int64
	UserID          int64
	VendorID        int64
	PaymentIntentID *string
	EventName       string
	EventType       string
	EventDate       time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	AttendeeCount   int
	EventLocation   string
	PackageID       *int64
	ServiceIDs      []int64
	Status          BookingStatus

	// Denormalized price breakdown at booking time
	Subtotal      float64
	PlatformFee   float64
	TaxAmount     float64
	TaxLabel      string
	ProcessingFee float64
	Total         float64
	Currency      string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser && b.Status != StatusCancelledByVendor
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByVendor
}

// IsPaid returns true if the booking was created from a payment
func (b *Booking) IsPaid() bool {
	return b.PaymentIntentID != nil && *b.PaymentIntentID != ""
}

// ApplyBreakdown copies price totals onto the booking
func (b *Booking) ApplyBreakdown(p PriceBreakdown) {
	b.Subtotal = p.Subtotal
	b.PlatformFee = p.PlatformFee
	b.TaxAmount = p.TaxAmount
	b.TaxLabel = p.TaxLabel
	b.ProcessingFee = p.ProcessingFee
	b.Total = p.Total
}

// UserBookingsFilter фильтр для списка бронирований пользователя
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus
	Limit  uint64 // 0 = без ограничения
	Offset uint64
}

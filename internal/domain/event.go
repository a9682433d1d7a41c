package domain

import "time"

// EventType names a domain event published to the message bus
type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
	EventPaymentOrphaned  EventType = "payment.orphaned" // Payment succeeded but the booking was not stored
	EventVendorViewed     EventType = "vendor.viewed"
)

// Event is the payload written to Kafka
type Event struct {
	Type            EventType `json:"type"`
	VendorID        int64     `json:"vendorId"`
	BookingID       int64     `json:"bookingId,omitempty"`
	UserID          int64     `json:"userId,omitempty"`
	PaymentIntentID string    `json:"paymentIntentId,omitempty"`
	SessionID       string    `json:"sessionId,omitempty"`
	Amount          float64   `json:"amount,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

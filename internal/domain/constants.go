package domain

// Pricing defaults
const (
	DefaultPlatformFeePercent = 5.0
	DefaultProvinceCode       = "ON"
	DefaultCurrency           = "cad"

	// Card processor fee approximation: 2.9% + $0.30
	ProcessingFeeRate  = 0.029
	ProcessingFeeFixed = 0.30
)

// Availability
const (
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinAttendeeCount            = 1
	MaxEventNameLength          = 200
	MaxRecentSearches           = 10
	MaxRecentSearchLength       = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы бронирований, которые больше не занимают вендора
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByVendor,
}

// ActiveStatuses статусы действующих бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

package domain

// CancellationPolicy describes the refund terms a vendor offers
type CancellationPolicy struct {
	ID                   int64
	Name                 string
	Description          string
	FullRefundHours      int // Full refund if cancelled at least this many hours before the event
	PartialRefundPercent int // Refund share after the full-refund window, 0 = none
}

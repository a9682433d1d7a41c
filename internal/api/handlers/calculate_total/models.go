package calculate_total

import (
	"github.com/planbeau/booking-service/internal/api/handlers"
	calculateTotal "github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VendorID       int64                      `json:"vendorProfileId"`
	InstantBooking bool                       `json:"instantBookingEnabled"`
	Breakdown      handlers.BreakdownResponse `json:"breakdown"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateTotal.Response) *QuoteResponse {
	quote := &QuoteResponse{
		VendorID:  resp.VendorID,
		Breakdown: handlers.FromBreakdown(resp.Breakdown),
	}
	if resp.Vendor != nil {
		quote.InstantBooking = resp.Vendor.InstantBooking
	}
	return quote
}

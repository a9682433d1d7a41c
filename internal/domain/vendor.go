package domain

import "time"

// Vendor represents a vendor profile as seen by the booking flow
type Vendor struct {
	ID                   int64
	BusinessName         string
	Latitude             *float64
	Longitude            *float64
	City                 string
	Province             string
	InstantBooking       bool // Pay-and-confirm instead of request-then-approve
	MinLeadTimeHours     int  // Minimum notice before the event date
	CancellationPolicyID *int64
	Timezone             string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Location returns the vendor's time zone, falling back to the server's local zone
func (v *Vendor) Location() *time.Location {
	if v.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// HasLeadTime returns true if the vendor requires advance notice
func (v *Vendor) HasLeadTime() bool {
	return v.MinLeadTimeHours > 0
}

// EarliestEventDate returns the first calendar day that satisfies the lead time
func (v *Vendor) EarliestEventDate(now time.Time) time.Time {
	earliest := now.Add(time.Duration(v.MinLeadTimeHours) * time.Hour)
	y, m, d := earliest.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, earliest.Location())
}

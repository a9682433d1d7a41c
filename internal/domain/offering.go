package domain

import "strings"

// PricingModel determines how an offering's price depends on duration or attendees
type PricingModel string

const (
	PricingFixed       PricingModel = "fixed_price"
	PricingHourly      PricingModel = "hourly"
	PricingPerAttendee PricingModel = "per_attendee"
)

// ParsePricingModel folds the tag aliases used by vendors into a canonical model.
// Unknown or empty tags are treated as fixed price.
func ParsePricingModel(tag string) PricingModel {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "hourly", "time_based", "per_hour":
		return PricingHourly
	case "per_attendee", "per_person", "per_guest":
		return PricingPerAttendee
	default:
		return PricingFixed
	}
}

// OfferingKind distinguishes bookable packages from individual services
type OfferingKind string

const (
	KindService OfferingKind = "service"
	KindPackage OfferingKind = "package"
)

// Offering is a priced service or package of a vendor
type Offering struct {
	ID              int64
	VendorID        int64
	Kind            OfferingKind
	Name            string
	Price           float64
	BaseRate        float64 // Hourly rate for time-based offerings
	SalePrice       *float64
	PricingModel    PricingModel
	MinAttendees    *int
	MaxAttendees    *int
	DurationMinutes *int
}

// IsHourly returns true for time-based pricing
func (o *Offering) IsHourly() bool {
	return o.PricingModel == PricingHourly
}

// IsPerAttendee returns true for per-person pricing
func (o *Offering) IsPerAttendee() bool {
	return o.PricingModel == PricingPerAttendee
}

// HasAttendeeBounds returns true if a minimum or maximum attendee count is set
func (o *Offering) HasAttendeeBounds() bool {
	return o.MinAttendees != nil || o.MaxAttendees != nil
}

// AcceptsAttendees returns true if count is within the offering's bounds
func (o *Offering) AcceptsAttendees(count int) bool {
	if o.MinAttendees != nil && count < *o.MinAttendees {
		return false
	}
	if o.MaxAttendees != nil && count > *o.MaxAttendees {
		return false
	}
	return true
}

// ListPrice returns Price, or BaseRate when Price is not set
func (o *Offering) ListPrice() float64 {
	if o.Price > 0 {
		return o.Price
	}
	return o.BaseRate
}

// EffectivePrice returns the sale price when it is set and lower than the list price
func (o *Offering) EffectivePrice() float64 {
	list := o.ListPrice()
	if o.SalePrice != nil && *o.SalePrice > 0 && (list == 0 || *o.SalePrice < list) {
		return *o.SalePrice
	}
	return list
}

// HourlyRate returns BaseRate, or Price when no base rate is stored
func (o *Offering) HourlyRate() float64 {
	if o.BaseRate > 0 {
		return o.BaseRate
	}
	return o.Price
}

// HasDuration returns true if the offering states a duration
func (o *Offering) HasDuration() bool {
	return o.DurationMinutes != nil && *o.DurationMinutes > 0
}

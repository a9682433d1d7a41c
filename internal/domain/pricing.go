package domain

import "math"

// LineItem is one priced entry of a breakdown
type LineItem struct {
	OfferingID   int64
	Kind         OfferingKind
	Name         string
	PricingModel PricingModel
	UnitPrice    float64
	Hours        float64 // 0 when no multiplier was applied
	Amount       float64
}

// PriceBreakdown is the derived price of a booking draft
type PriceBreakdown struct {
	Items         []LineItem
	Subtotal      float64
	PlatformFee   float64
	TaxRate       float64
	TaxLabel      string
	Province      string
	TaxAmount     float64
	ProcessingFee float64
	Total         float64
	Currency      string
}

// ComponentsSum returns subtotal + platform fee + tax + processing fee
func (p *PriceBreakdown) ComponentsSum() float64 {
	return p.Subtotal + p.PlatformFee + p.TaxAmount + p.ProcessingFee
}

// AmountInCents converts a dollar amount into the processor's minor units
func AmountInCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// RoundCents rounds an amount to two decimals
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

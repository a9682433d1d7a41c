package handlers

import "github.com/planbeau/booking-service/internal/domain"

// LineItemResponse строка сметы
type LineItemResponse struct {
	OfferingID   int64   `json:"offeringId"`
	Kind         string  `json:"kind"`
	Name         string  `json:"name"`
	PricingModel string  `json:"pricingModel"`
	UnitPrice    float64 `json:"unitPrice"`
	Hours        float64 `json:"hours,omitempty"`
	Amount       float64 `json:"amount"`
}

// BreakdownResponse смета бронирования
type BreakdownResponse struct {
	Items         []LineItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	PlatformFee   float64            `json:"platformFee"`
	TaxRate       float64            `json:"taxRate"`
	TaxLabel      string             `json:"taxLabel"`
	Province      string             `json:"province"`
	TaxAmount     float64            `json:"taxAmount"`
	ProcessingFee float64            `json:"processingFee"`
	Total         float64            `json:"total"`
	Currency      string             `json:"currency"`
}

// FromBreakdown конвертирует доменную смету в HTTP модель
func FromBreakdown(b domain.PriceBreakdown) BreakdownResponse {
	items := make([]LineItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, LineItemResponse{
			OfferingID:   item.OfferingID,
			Kind:         string(item.Kind),
			Name:         item.Name,
			PricingModel: string(item.PricingModel),
			UnitPrice:    item.UnitPrice,
			Hours:        item.Hours,
			Amount:       item.Amount,
		})
	}

	return BreakdownResponse{
		Items:         items,
		Subtotal:      b.Subtotal,
		PlatformFee:   b.PlatformFee,
		TaxRate:       b.TaxRate,
		TaxLabel:      b.TaxLabel,
		Province:      b.Province,
		TaxAmount:     b.TaxAmount,
		ProcessingFee: b.ProcessingFee,
		Total:         b.Total,
		Currency:      b.Currency,
	}
}

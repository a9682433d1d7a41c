package models

// OfferingResponse пакет или услуга в профиле вендора
type OfferingResponse struct {
	ID              int64    `json:"id"`
	Kind            string   `json:"kind"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	BaseRate        float64  `json:"baseRate,omitempty"`
	SalePrice       *float64 `json:"salePrice,omitempty"`
	PricingModel    string   `json:"pricingModel"`
	MinAttendees    *int     `json:"minAttendees,omitempty"`
	MaxAttendees    *int     `json:"maxAttendees,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// PolicyResponse политика отмены
type PolicyResponse struct {
	Name                 string `json:"name"`
	Description          string `json:"description,omitempty"`
	FullRefundHours      int    `json:"fullRefundHours"`
	PartialRefundPercent int    `json:"partialRefundPercent"`
}

// ProfileResponse профиль вендора для страницы бронирования
type ProfileResponse struct {
	ID                 int64              `json:"id"`
	BusinessName       string             `json:"businessName"`
	City               string             `json:"city,omitempty"`
	Province           string             `json:"province,omitempty"`
	Location           string             `json:"location"` // "Toronto, Ontario"
	TaxLabel           string             `json:"taxLabel,omitempty"`
	InstantBooking     bool               `json:"instantBookingEnabled"`
	MinLeadTimeHours   int                `json:"minBookingLeadTimeHours"`
	Timezone           string             `json:"timezone,omitempty"`
	ProfileURL         string             `json:"profileUrl"`
	CancellationPolicy *PolicyResponse    `json:"cancellationPolicy,omitempty"`
	Packages           []OfferingResponse `json:"packages"`
	Services           []OfferingResponse `json:"services"`
}

// ViewResponse результат учета просмотра профиля
type ViewResponse struct {
	VendorID int64 `json:"vendorProfileId"`
	Recorded bool  `json:"recorded"` // false, если просмотр в этой сессии уже был
}

package resolve_location

import (
	resolveLocation "github.com/planbeau/booking-service/internal/usecase/resolve_location"
)

// LocationResponse HTTP response model
type LocationResponse struct {
	PlaceID         string  `json:"placeId,omitempty"`
	City            string  `json:"city"`
	Province        string  `json:"province"`
	ProvinceCode    string  `json:"provinceCode"`
	Display         string  `json:"display"` // "Toronto, Ontario"
	TaxRate         float64 `json:"taxRate"`
	TaxLabel        string  `json:"taxLabel"`
	Source          string  `json:"source"`
	DefaultProvince bool    `json:"defaultProvince"`
	Degraded        bool    `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveLocation.Response) *LocationResponse {
	return &LocationResponse{
		PlaceID:         resp.PlaceID,
		City:            resp.City,
		Province:        resp.Province,
		ProvinceCode:    resp.ProvinceCode,
		Display:         resp.Display,
		TaxRate:         resp.TaxRate,
		TaxLabel:        resp.TaxLabel,
		Source:          resp.Source,
		DefaultProvince: resp.DefaultProvince,
		Degraded:        resp.Degraded,
	}
}

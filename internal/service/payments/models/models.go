package models

// ProvinceResponse ставка налога провинции
type ProvinceResponse struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	TaxRate  float64 `json:"taxRate"`
	TaxLabel string  `json:"taxLabel"`
}

// ConfigResponse публичные параметры оплаты для клиента
type ConfigResponse struct {
	PublishableKey       string             `json:"publishableKey"`
	Currency             string             `json:"currency"`
	PlatformFeePercent   float64            `json:"platformFeePercent"`
	ProcessingFeePercent float64            `json:"processingFeePercent"`
	ProcessingFeeFixed   float64            `json:"processingFeeFixed"`
	DefaultProvince      string             `json:"defaultProvince"`
	Provinces            []ProvinceResponse `json:"provinces"`
}

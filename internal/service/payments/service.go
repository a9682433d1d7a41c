package payments

import (
	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/service/payments/models"
)

// Settings параметры оплаты из конфигурации
type Settings struct {
	PublishableKey     string
	Currency           string
	PlatformFeePercent float64
	DefaultProvince    string
}

// Service сервис публичной конфигурации оплаты
type Service struct {
	settings Settings
}

// NewService создает новый экземпляр сервиса
func NewService(settings Settings) *Service {
	return &Service{settings: settings}
}

// GetConfig возвращает параметры, которые клиент показывает в смете и передает в Stripe Elements.
// Секретный ключ сюда не попадает.
func (s *Service) GetConfig() *models.ConfigResponse {
	currency := s.settings.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	provinces := make([]models.ProvinceResponse, 0, len(domain.Provinces))
	for _, p := range domain.Provinces {
		provinces = append(provinces, models.ProvinceResponse{
			Code:     p.Code,
			Name:     p.Name,
			TaxRate:  p.TaxRate,
			TaxLabel: p.TaxLabel,
		})
	}

	return &models.ConfigResponse{
		PublishableKey:       s.settings.PublishableKey,
		Currency:             currency,
		PlatformFeePercent:   s.settings.PlatformFeePercent,
		ProcessingFeePercent: domain.ProcessingFeeRate * 100,
		ProcessingFeeFixed:   domain.ProcessingFeeFixed,
		DefaultProvince:      domain.DefaultProvince(s.settings.DefaultProvince).Code,
		Provinces:            provinces,
	}
}

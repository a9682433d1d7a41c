package calculate_total

import (
	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/location"
	"github.com/planbeau/booking-service/pkg/types"
)

// Input входные данные калькулятора
type Input struct {
	Services []domain.Offering
	Package  *domain.Offering

	StartTime     types.TimeString
	EndTime       types.TimeString
	AttendeeCount int

	PlatformFeePercent *float64 // nil = domain.DefaultPlatformFeePercent
	Province           string   // явно выбранная провинция (код или название), имеет приоритет
	EventLocation      string   // свободный текст, из него угадывается провинция
	DefaultProvince    string   // код провинции по умолчанию
	Currency           string
}

// Calculate рассчитывает смету бронирования.
// Функция чистая: одинаковый вход дает одинаковый результат, ошибок не возвращает.
func Calculate(in Input) domain.PriceBreakdown {
	hours := ElapsedHours(in.StartTime, in.EndTime)

	breakdown := domain.PriceBreakdown{
		Items:    make([]domain.LineItem, 0, len(in.Services)+1),
		Currency: in.Currency,
	}
	if breakdown.Currency == "" {
		breakdown.Currency = domain.DefaultCurrency
	}

	// 1. Услуги
	for _, service := range in.Services {
		breakdown.Items = append(breakdown.Items, priceService(service, hours))
	}

	// 2. Пакет
	if in.Package != nil {
		breakdown.Items = append(breakdown.Items, pricePackage(*in.Package, hours))
	}

	// 3. Подытог
	var subtotal float64
	for _, item := range breakdown.Items {
		subtotal += item.Amount
	}
	breakdown.Subtotal = domain.RoundCents(subtotal)

	// 4. Комиссия платформы
	feePercent := domain.DefaultPlatformFeePercent
	if in.PlatformFeePercent != nil && *in.PlatformFeePercent >= 0 {
		feePercent = *in.PlatformFeePercent
	}
	breakdown.PlatformFee = domain.RoundCents(breakdown.Subtotal * feePercent / 100)

	// 5. Налог провинции
	province := resolveProvince(in)
	breakdown.Province = province.Code
	breakdown.TaxRate = province.TaxRate
	breakdown.TaxLabel = province.TaxLabel
	breakdown.TaxAmount = domain.RoundCents((breakdown.Subtotal + breakdown.PlatformFee) * province.TaxRate)

	// 6. Комиссия процессинга
	breakdown.ProcessingFee = domain.RoundCents(breakdown.Subtotal*domain.ProcessingFeeRate + domain.ProcessingFeeFixed)

	// 7. Итог
	breakdown.Total = domain.RoundCents(breakdown.ComponentsSum())

	return breakdown
}

// ElapsedHours returns the duration between start and end in hours.
// Missing, malformed or non-positive windows return 0, meaning "no duration".
func ElapsedHours(start, end types.TimeString) float64 {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	startMin, err := start.Minutes()
	if err != nil {
		return 0
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0
	}
	if endMin <= startMin {
		return 0
	}
	return float64(endMin-startMin) / 60
}

func priceService(o domain.Offering, hours float64) domain.LineItem {
	item := domain.LineItem{
		OfferingID:   o.ID,
		Kind:         domain.KindService,
		Name:         o.Name,
		PricingModel: o.PricingModel,
	}

	if o.IsHourly() {
		item.UnitPrice = o.HourlyRate()
		item.Amount, item.Hours = applyHours(item.UnitPrice, hours)
		return item
	}

	// Фиксированная цена и цена за гостя: берется сохраненная цена без множителя
	item.UnitPrice = o.ListPrice()
	item.Amount = domain.RoundCents(item.UnitPrice)
	return item
}

func pricePackage(o domain.Offering, hours float64) domain.LineItem {
	item := domain.LineItem{
		OfferingID:   o.ID,
		Kind:         domain.KindPackage,
		Name:         o.Name,
		PricingModel: o.PricingModel,
		UnitPrice:    o.EffectivePrice(),
	}

	if o.IsHourly() {
		item.Amount, item.Hours = applyHours(item.UnitPrice, hours)
		return item
	}

	item.Amount = domain.RoundCents(item.UnitPrice)
	return item
}

// applyHours multiplies an hourly rate. Without a duration the raw rate is charged.
func applyHours(rate, hours float64) (float64, float64) {
	if hours <= 0 {
		return domain.RoundCents(rate), 0
	}
	return domain.RoundCents(rate * hours), hours
}

func resolveProvince(in Input) domain.Province {
	if in.Province != "" {
		if p, ok := domain.LookupProvince(in.Province); ok {
			return p
		}
	}
	return location.ResolveProvinceOrDefault(in.EventLocation, in.DefaultProvince)
}

package calculate_total

import (
	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/types"
)

// Request модель запроса на расчет сметы
type Request struct {
	VendorID      int64
	PackageID     *int64
	ServiceIDs    []int64
	StartTime     types.TimeString // пусто = без длительности
	EndTime       types.TimeString
	AttendeeCount int
	EventLocation string // свободный текст, из него определяется провинция
	Province      string // явная провинция, опционально
}

// Response модель ответа со сметой
type Response struct {
	VendorID  int64
	Vendor    *domain.Vendor
	Breakdown domain.PriceBreakdown
}

// Settings параметры ценообразования из конфигурации
type Settings struct {
	PlatformFeePercent float64
	DefaultProvince    string
	Currency           string
}

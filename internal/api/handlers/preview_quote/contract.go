package preview_quote

import (
	"github.com/planbeau/booking-service/internal/domain"
	calculateTotal "github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

type QuotePreviewer interface {
	Preview(in calculateTotal.Input) domain.PriceBreakdown
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

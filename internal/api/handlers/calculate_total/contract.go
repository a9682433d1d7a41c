package calculate_total

import (
	"context"

	calculateTotal "github.com/planbeau/booking-service/internal/usecase/calculate_total"
)

type CalculateTotalUseCase interface {
	Execute(ctx context.Context, req *calculateTotal.Request) (*calculateTotal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package resolve_location

import (
	"context"

	resolveLocation "github.com/planbeau/booking-service/internal/usecase/resolve_location"
)

type ResolveLocationUseCase interface {
	Execute(ctx context.Context, req *resolveLocation.Request) (*resolveLocation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

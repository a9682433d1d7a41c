package get_vendor

import (
	"context"

	"github.com/planbeau/booking-service/internal/service/vendors/models"
)

type VendorService interface {
	GetProfile(ctx context.Context, vendorID int64) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

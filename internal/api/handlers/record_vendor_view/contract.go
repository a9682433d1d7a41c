package record_vendor_view

import (
	"context"

	"github.com/planbeau/booking-service/internal/service/vendors/models"
)

type VendorService interface {
	RecordView(ctx context.Context, vendorID int64, sessionID string) (*models.ViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

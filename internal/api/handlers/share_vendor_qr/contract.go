package share_vendor_qr

import (
	"context"
)

type VendorService interface {
	ShareQR(ctx context.Context, vendorID int64, size int) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

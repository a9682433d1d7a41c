package get_payment_config

import (
	"github.com/planbeau/booking-service/internal/service/payments/models"
)

type PaymentsService interface {
	GetConfig() *models.ConfigResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

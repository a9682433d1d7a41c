package create_booking

import (
	"github.com/planbeau/booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64
	VendorID        int64
	Draft           domain.BookingDraft
	Province        string // явная провинция для налога, опционально
	PaymentIntentID string // обязателен для вендоров с мгновенным бронированием
	ConfirmEmpty    bool   // пользователь подтвердил бронирование без пакета и услуг
}

// Response модель ответа с бронированием
type Response struct {
	Booking   *domain.Booking
	Breakdown domain.PriceBreakdown
	Created   bool // false, если вернули уже существующее бронирование по тому же платежу
}

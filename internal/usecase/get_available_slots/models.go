package get_available_slots

import (
	"time"

	"github.com/planbeau/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VendorID int64     // ID вендора
	Date     time.Time // Календарная дата (время игнорируется)
}

// Response модель ответа со списком слотов
type Response struct {
	VendorID     int64
	Date         time.Time          // Дата в часовом поясе вендора
	EarliestDate time.Time          // Первая дата, доступная с учетом lead time
	Slots        []types.TimeString // Начала слотов "HH:MM"
}

// Settings настройки кэширования
type Settings struct {
	HoursTTL time.Duration // 0 = не кэшировать
}

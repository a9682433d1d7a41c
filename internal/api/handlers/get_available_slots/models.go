package get_available_slots

import (
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	getAvailableSlots "github.com/planbeau/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	VendorID     int64    `json:"vendorProfileId"`
	Date         string   `json:"date"`
	EarliestDate string   `json:"earliestDate"`
	Slots        []string `json:"slots"` // ["09:00", "09:30", ...]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(vendorID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		VendorID: vendorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		VendorID:     resp.VendorID,
		Date:         resp.Date.Format(domain.DateFormat),
		EarliestDate: resp.EarliestDate.Format(domain.DateFormat),
		Slots:        slots,
	}
}

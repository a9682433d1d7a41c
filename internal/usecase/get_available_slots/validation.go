package get_available_slots

import (
	"fmt"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VendorID <= 0 {
		return fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateLeadTime проверяет, что дата не раньше, чем позволяет lead time вендора.
// Прошедшие даты отсекаются этой же проверкой.
func validateLeadTime(vendor *domain.Vendor, date, now time.Time) (time.Time, error) {
	earliest := vendor.EarliestEventDate(now)
	if date.Before(earliest) {
		return earliest, fmt.Errorf("%w: earliest available date is %s", ErrDateTooSoon, earliest.Format(domain.DateFormat))
	}
	return earliest, nil
}

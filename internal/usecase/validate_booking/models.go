package validate_booking

import (
	"time"

	"github.com/planbeau/booking-service/internal/domain"
)

// Request модель запроса на проверку шага мастера
type Request struct {
	VendorID     int64
	Step         Step
	Draft        domain.BookingDraft
	ConfirmEmpty bool // Пользователь подтвердил продолжение без пакета и услуг
}

// Result результат проверки. Ошибки формы - это данные, а не error.
type Result struct {
	Step                 Step
	Valid                bool
	NextStep             Step // Шаг, на который можно перейти (равен Step, если нельзя)
	Errors               FieldErrors
	RequiresConfirmation bool
	Warnings             []DurationWarning
	EarliestDate         time.Time
}

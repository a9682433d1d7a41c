package validate_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/types"
)

// Ключи полей формы
const (
	FieldEventName     = "eventName"
	FieldEventType     = "eventType"
	FieldEventDate     = "eventDate"
	FieldStartTime     = "startTime"
	FieldEndTime       = "endTime"
	FieldAttendeeCount = "attendeeCount"
	FieldEventLocation = "eventLocation"
	FieldPackage       = "package"
	FieldServices      = "services"
)

const minutesPerDay = 24 * 60

// FieldErrors ошибки формы по ключу поля
type FieldErrors map[string]string

// HasErrors возвращает true, если есть хотя бы одна ошибка
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// SelectionResult результат проверки шага выбора
type SelectionResult struct {
	Errors               FieldErrors
	RequiresConfirmation bool // Ничего не выбрано: нужно подтверждение "продолжить?"
}

// DurationWarning предупреждение: длительность предложения не помещается в окно события
type DurationWarning struct {
	OfferingID      int64               `json:"offeringId"`
	OfferingKind    domain.OfferingKind `json:"offeringKind"`
	OfferingName    string              `json:"offeringName"`
	DurationMinutes int                 `json:"durationMinutes"`
	WindowMinutes   int                 `json:"windowMinutes"`
	Message         string              `json:"message"`
}

// ValidateEventDetails проверяет шаг 1 (детали события).
// Любое незаполненное поле блокирует переход дальше.
func ValidateEventDetails(draft domain.BookingDraft, now time.Time, leadTimeHours int) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(draft.EventName)
	switch {
	case name == "":
		errs[FieldEventName] = "Event name is required"
	case len([]rune(name)) > domain.MaxEventNameLength:
		errs[FieldEventName] = fmt.Sprintf("Event name must be at most %d characters", domain.MaxEventNameLength)
	}

	if strings.TrimSpace(draft.EventType) == "" {
		errs[FieldEventType] = "Please select an event type"
	}

	if draft.EventDate.IsZero() {
		errs[FieldEventDate] = "Please select an event date"
	} else if !now.IsZero() {
		// Календарная дата события сравнивается в часовом поясе now (вендора)
		y, m, d := draft.EventDate.Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if date.Before(earliestDate(now, leadTimeHours)) {
			if leadTimeHours > 0 {
				errs[FieldEventDate] = fmt.Sprintf("This vendor requires at least %d hours notice", leadTimeHours)
			} else {
				errs[FieldEventDate] = "Event date cannot be in the past"
			}
		}
	}

	validateClock(errs, FieldStartTime, draft.StartTime, "Please select a start time")
	validateClock(errs, FieldEndTime, draft.EndTime, "Please select an end time")

	if draft.AttendeeCount < domain.MinAttendeeCount {
		errs[FieldAttendeeCount] = "Number of guests must be at least 1"
	}

	if strings.TrimSpace(draft.EventLocation) == "" {
		errs[FieldEventLocation] = "Event location is required"
	}

	return errs
}

func validateClock(errs FieldErrors, field string, value types.TimeString, requiredMsg string) {
	if value.IsZero() {
		errs[field] = requiredMsg
		return
	}
	if err := value.Validate(); err != nil {
		errs[field] = "Time must be in HH:MM format"
	}
}

// ValidateSelection проверяет шаг 2 (пакет и услуги).
// Границы гостей пакета проверяются при любой модели цены,
// у услуг - только при цене за гостя.
func ValidateSelection(draft domain.BookingDraft, pkg *domain.Offering, services []domain.Offering) SelectionResult {
	result := SelectionResult{Errors: FieldErrors{}}

	if pkg == nil && len(services) == 0 {
		result.RequiresConfirmation = true
		return result
	}

	if pkg != nil && !pkg.AcceptsAttendees(draft.AttendeeCount) {
		result.Errors[FieldPackage] = boundsMessage(pkg)
	}

	messages := make([]string, 0)
	for i := range services {
		service := &services[i]
		if service.IsPerAttendee() && !service.AcceptsAttendees(draft.AttendeeCount) {
			messages = append(messages, boundsMessage(service))
		}
	}
	if len(messages) > 0 {
		result.Errors[FieldServices] = strings.Join(messages, "; ")
	}

	return result
}

func boundsMessage(o *domain.Offering) string {
	switch {
	case o.MinAttendees != nil && o.MaxAttendees != nil:
		return fmt.Sprintf("%s requires between %d and %d guests", o.Name, *o.MinAttendees, *o.MaxAttendees)
	case o.MinAttendees != nil:
		return fmt.Sprintf("%s requires at least %d guests", o.Name, *o.MinAttendees)
	default:
		return fmt.Sprintf("%s allows at most %d guests", o.Name, *o.MaxAttendees)
	}
}

// WindowMinutes возвращает длину окна события в минутах.
// Окно через полночь (конец раньше начала) оборачивается: 22:00-02:00 = 240.
func WindowMinutes(start, end types.TimeString) (int, bool) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return 0, false
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return 0, false
	}

	if endMinutes < startMinutes {
		endMinutes += minutesPerDay
	}
	return endMinutes - startMinutes, true
}

// CheckDurationFit возвращает предупреждение, если заявленная длительность
// предложения больше окна события. Без длительности или окна проверка не выполняется.
func CheckDurationFit(offering domain.Offering, start, end types.TimeString) *DurationWarning {
	if !offering.HasDuration() {
		return nil
	}

	window, ok := WindowMinutes(start, end)
	if !ok || *offering.DurationMinutes <= window {
		return nil
	}

	return &DurationWarning{
		OfferingID:      offering.ID,
		OfferingKind:    offering.Kind,
		OfferingName:    offering.Name,
		DurationMinutes: *offering.DurationMinutes,
		WindowMinutes:   window,
		Message: fmt.Sprintf("%s lasts %s but your event is only %s long",
			offering.Name, formatMinutes(*offering.DurationMinutes), formatMinutes(window)),
	}
}

func formatMinutes(minutes int) string {
	hours, rest := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, rest)
	}
}

func earliestDate(now time.Time, leadTimeHours int) time.Time {
	return dateOnly(now.Add(time.Duration(leadTimeHours) * time.Hour))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

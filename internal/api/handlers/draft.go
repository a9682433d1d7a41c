package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/usecase/calculate_total"
	"github.com/planbeau/booking-service/pkg/types"
)

// DraftRequest поля формы бронирования, общие для сметы, проверки, оплаты и создания
type DraftRequest struct {
	EventName     string  `json:"eventName"`
	EventType     string  `json:"eventType"`
	EventDate     string  `json:"eventDate"` // "2026-07-18"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`
	AttendeeCount int     `json:"attendeeCount"`
	EventLocation string  `json:"eventLocation"`
	PackageID     *int64  `json:"packageId,omitempty"`
	ServiceIDs    []int64 `json:"serviceIds"`
	Province      string  `json:"province,omitempty"`
}

// ToDomainDraft разбирает дату и время. Пустые значения остаются нулевыми,
// их обязательность проверяет валидация формы.
func (r *DraftRequest) ToDomainDraft() (domain.BookingDraft, error) {
	draft := domain.BookingDraft{
		EventName:     r.EventName,
		EventType:     r.EventType,
		AttendeeCount: r.AttendeeCount,
		EventLocation: r.EventLocation,
		PackageID:     r.PackageID,
		ServiceIDs:    r.ServiceIDs,
	}

	if date := strings.TrimSpace(r.EventDate); date != "" {
		eventDate, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return draft, fmt.Errorf("eventDate: %w", err)
		}
		draft.EventDate = eventDate
	}

	var err error
	if draft.StartTime, err = parseClock(r.StartTime); err != nil {
		return draft, fmt.Errorf("startTime: %w", err)
	}
	if draft.EndTime, err = parseClock(r.EndTime); err != nil {
		return draft, fmt.Errorf("endTime: %w", err)
	}

	return draft, nil
}

// ToQuoteRequest запрос на расчет сметы по черновику
func (r *DraftRequest) ToQuoteRequest(vendorID int64) (*calculate_total.Request, error) {
	draft, err := r.ToDomainDraft()
	if err != nil {
		return nil, err
	}

	return &calculate_total.Request{
		VendorID:      vendorID,
		PackageID:     draft.PackageID,
		ServiceIDs:    draft.ServiceIDs,
		StartTime:     draft.StartTime,
		EndTime:       draft.EndTime,
		AttendeeCount: draft.AttendeeCount,
		EventLocation: draft.EventLocation,
		Province:      r.Province,
	}, nil
}

func parseClock(value string) (types.TimeString, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	return types.NewTimeStringFromString(value)
}

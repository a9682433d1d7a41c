package get_available_slots

import (
	"iter"
	"strings"
	"time"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/pkg/types"
)

// isoLayouts форматы ISO datetime, в которых приходят часы работы
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Slots возвращает ленивую последовательность начал слотов на дату.
// Слоты идут с шагом 30 минут от открытия до закрытия включительно.
// Нет строки расписания, день недоступен или время некорректно - пустая последовательность.
func Slots(hours []domain.BusinessHours, date time.Time) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		row, ok := domain.HoursForDate(hours, date)
		if !ok || !row.IsAvailable {
			return
		}

		open, ok := parseClock(row.OpenTime, date.Location())
		if !ok {
			return
		}
		closing, ok := parseClock(row.CloseTime, date.Location())
		if !ok {
			return
		}

		for minutes := open; minutes <= closing; minutes += domain.SlotStepMinutes {
			slot, err := types.NewTimeStringFromMinutes(minutes)
			if err != nil {
				return
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// GenerateSlots собирает Slots в срез
func GenerateSlots(hours []domain.BusinessHours, date time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)
	for slot := range Slots(hours, date) {
		slots = append(slots, slot)
	}
	return slots
}

// parseClock переводит "HH:MM", "HH:MM:SS" или ISO datetime в минуты от полуночи.
// ISO значения с зоной переводятся в loc.
func parseClock(value string, loc *time.Location) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if ts, err := types.NewTimeStringFromString(value); err == nil {
		minutes, err := ts.Minutes()
		return minutes, err == nil
	}

	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return t.Hour()*60 + t.Minute(), true
	}

	return 0, false
}

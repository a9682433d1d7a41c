package domain

import "time"

// BusinessHours is one day-of-week row of a vendor's weekly schedule.
// DayOfWeek uses 0=Sunday..6=Saturday; some vendors store Sunday as 7.
type BusinessHours struct {
	VendorID    int64
	DayOfWeek   int
	OpenTime    string // "HH:MM", "HH:MM:SS" or an ISO datetime
	CloseTime   string
	IsAvailable bool
}

// SundayAltIndex is the alternative Sunday index used by some schedules
const SundayAltIndex = 7

// HoursForDate returns the schedule row for the weekday of date.
// Sunday falls back to index 7 when no row with index 0 exists.
func HoursForDate(hours []BusinessHours, date time.Time) (BusinessHours, bool) {
	weekday := int(date.Weekday())

	if row, ok := findDay(hours, weekday); ok {
		return row, true
	}
	if weekday == int(time.Sunday) {
		return findDay(hours, SundayAltIndex)
	}
	return BusinessHours{}, false
}

func findDay(hours []BusinessHours, day int) (BusinessHours, bool) {
	for _, row := range hours {
		if row.DayOfWeek == day {
			return row, true
		}
	}
	return BusinessHours{}, false
}

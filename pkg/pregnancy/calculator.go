// Package pregnancy converts between conception and due dates and derives
// the progress of a pregnancy at a given moment.
package pregnancy

import (
	"math"
	"time"
)

const (
	// DurationDays is the average pregnancy length (40 weeks).
	DurationDays = 280
	// MaxWeeks caps the reported week count.
	MaxWeeks = 42

	day = 24 * time.Hour
)

// Progress is a snapshot of a pregnancy relative to some "now".
// It is derived on every call and never stored.
type Progress struct {
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	TotalDays         int       `json:"total_days"`
	DaysElapsed       int       `json:"days_elapsed"`
	DaysRemaining     int       `json:"days_remaining"`
	WeeksElapsed      int       `json:"weeks_elapsed"`
	DaysInCurrentWeek int       `json:"days_in_current_week"`
	Trimester         int       `json:"trimester"`
	ProgressPercent   int       `json:"progress_percent"`
}

// ConceptionFromDue returns the conception date DurationDays before due.
func ConceptionFromDue(due time.Time) time.Time {
	return due.AddDate(0, 0, -DurationDays)
}

// DueFromConception returns the due date DurationDays after conception.
func DueFromConception(conception time.Time) time.Time {
	return conception.AddDate(0, 0, DurationDays)
}

// Calculate returns nil when neither date is known. A missing date is derived
// from the other one; when both are given they are used as they are.
//
// DaysElapsed is not clamped: a conception date in the future gives a negative value.
func Calculate(start, due *time.Time, now time.Time) *Progress {
	var startDate, endDate time.Time
	switch {
	case start != nil && due != nil:
		startDate, endDate = *start, *due
	case due != nil:
		endDate = *due
		startDate = ConceptionFromDue(endDate)
	case start != nil:
		startDate = *start
		endDate = DueFromConception(startDate)
	default:
		return nil
	}

	totalDays := DaysBetween(startDate, endDate)
	daysElapsed := DaysBetween(startDate, now)
	weeksElapsed := floorDiv(daysElapsed, 7)

	return &Progress{
		StartDate:         startDate,
		EndDate:           endDate,
		TotalDays:         totalDays,
		DaysElapsed:       daysElapsed,
		DaysRemaining:     max(0, DaysBetween(now, endDate)),
		WeeksElapsed:      min(weeksElapsed, MaxWeeks),
		DaysInCurrentWeek: daysElapsed % 7,
		Trimester:         Trimester(weeksElapsed),
		ProgressPercent:   percent(daysElapsed, totalDays),
	}
}

// DaysBetween is the number of whole days from a to b, rounded toward negative infinity.
func DaysBetween(a, b time.Time) int {
	return int(math.Floor(float64(b.Sub(a)) / float64(day)))
}

// Trimester maps completed weeks to 1 (< 14), 2 (< 27) or 3.
func Trimester(weeks int) int {
	switch {
	case weeks >= 27:
		return 3
	case weeks >= 14:
		return 2
	default:
		return 1
	}
}

func percent(elapsed, total int) int {
	if total <= 0 {
		if elapsed >= 0 {
			return 100
		}
		return 0
	}
	p := int(math.Round(float64(elapsed) / float64(total) * 100))
	return min(100, max(0, p))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Package calendar buckets reservations into calendar days for the
// month grid and the daily agenda. All functions are pure; fetching
// and rendering are the caller's concern.
package calendar

import (
	"time"

	"github.com/salasys/roomctl/internal/models"
)

// DisplayCap is how many reservations a grid cell shows before
// collapsing the rest into an overflow count. It is a presentation
// limit only; buckets always hold the full overlapping set.
const DisplayCap = 3

// Cell is one day of the month grid together with every reservation
// overlapping it.
type Cell struct {
	Day          time.Time // midnight, local time
	Reservations []models.Reservation
}

// Grid is a month's worth of day cells. Leading nil cells pad the
// first week so weekdays align (Sunday first); there is no trailing
// padding, so len(Cells) == leading blanks + days in month.
type Grid struct {
	Year  int
	Month time.Month
	Cells []*Cell
}

// BuildGrid computes the grid for a month, bucketing reservations into
// each day they overlap.
func BuildGrid(year int, month time.Month, loc *time.Location, reservations []models.Reservation) *Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]*Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, &Cell{
			Day:          date,
			Reservations: ForDay(reservations, date),
		})
	}

	return &Grid{Year: year, Month: month, Cells: cells}
}

// Overlaps reports whether the reservation touches the calendar day
// starting at the given local midnight. A reservation spanning
// midnight belongs to every day it touches.
func Overlaps(r models.Reservation, day time.Time) bool {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return !r.StartTime.After(dayEnd) && !r.EndTime.Before(dayStart)
}

// ForDay returns every reservation overlapping the given day,
// preserving input order.
func ForDay(reservations []models.Reservation, day time.Time) []models.Reservation {
	var matched []models.Reservation
	for _, r := range reservations {
		if Overlaps(r, day) {
			matched = append(matched, r)
		}
	}
	return matched
}

// MonthRange returns the timestamps that scope a reservation fetch to
// one month: the first day's midnight and the last instant of the last
// day.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// NextMonth steps the (year, month) pair forward, rolling the year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth steps the (year, month) pair backward, rolling the year.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// Clip applies the display cap to a bucket, returning the visible
// reservations and how many were hidden. The bucket itself is left
// complete.
func Clip(reservations []models.Reservation, max int) ([]models.Reservation, int) {
	if max < 0 || len(reservations) <= max {
		return reservations, 0
	}
	return reservations[:max], len(reservations) - max
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

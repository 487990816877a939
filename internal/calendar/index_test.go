package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasys/roomctl/internal/models"
)

func reservation(id int64, start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:        id,
		Title:     "r",
		RoomID:    1,
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildGrid(t *testing.T) {
	t.Run("month starting on a Wednesday gets three leading blanks", func(t *testing.T) {
		// September 2021: the 1st is a Wednesday, 30 days.
		grid := BuildGrid(2021, time.September, time.UTC, nil)

		require.Len(t, grid.Cells, 33)
		for i := 0; i < 3; i++ {
			assert.Nil(t, grid.Cells[i])
		}
		require.NotNil(t, grid.Cells[3])
		assert.Equal(t, 1, grid.Cells[3].Day.Day())
		require.NotNil(t, grid.Cells[32])
		assert.Equal(t, 30, grid.Cells[32].Day.Day())
	})

	t.Run("month starting on a Sunday has no leading blanks", func(t *testing.T) {
		// June 2025: the 1st is a Sunday.
		grid := BuildGrid(2025, time.June, time.UTC, nil)

		require.Len(t, grid.Cells, 30)
		require.NotNil(t, grid.Cells[0])
		assert.Equal(t, 1, grid.Cells[0].Day.Day())
	})

	t.Run("leap February", func(t *testing.T) {
		// February 2024: the 1st is a Thursday, 29 days.
		grid := BuildGrid(2024, time.February, time.UTC, nil)

		assert.Len(t, grid.Cells, 4+29)
	})

	t.Run("cell count is always leading blanks plus days in month", func(t *testing.T) {
		for year := 2020; year <= 2026; year++ {
			for month := time.January; month <= time.December; month++ {
				grid := BuildGrid(year, month, time.UTC, nil)

				first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
				days := first.AddDate(0, 1, -1).Day()
				require.Len(t, grid.Cells, int(first.Weekday())+days, "%s %d", month, year)
			}
		}
	})

	t.Run("buckets reservations into each day they touch", func(t *testing.T) {
		overnight := reservation(1,
			time.Date(2021, 9, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2021, 9, 11, 1, 0, 0, 0, time.UTC))

		grid := BuildGrid(2021, time.September, time.UTC, []models.Reservation{overnight})

		day10 := grid.Cells[3+9]
		day11 := grid.Cells[3+10]
		day12 := grid.Cells[3+11]
		require.Len(t, day10.Reservations, 1)
		require.Len(t, day11.Reservations, 1)
		assert.Empty(t, day12.Reservations)
	})
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			"inside the day",
			time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC),
			true,
		},
		{
			"starts the day before, ends within",
			time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC),
			true,
		},
		{
			"spans the whole day",
			time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"ends before the day starts",
			time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
			false,
		},
		{
			"starts after the day ends",
			time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reservation(1, tt.start, tt.end)
			assert.Equal(t, tt.want, Overlaps(r, day))
		})
	}
}

func TestForDay(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	within := func(hour int) models.Reservation {
		return reservation(int64(hour),
			time.Date(2026, 8, 31, hour, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, hour+1, 0, 0, 0, time.UTC))
	}
	elsewhere := reservation(99,
		time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 5, 11, 0, 0, 0, time.UTC))

	input := []models.Reservation{within(9), elsewhere, within(14), within(8)}
	matched := ForDay(input, day)

	// Full set, input order preserved
	require.Len(t, matched, 3)
	assert.Equal(t, int64(9), matched[0].ID)
	assert.Equal(t, int64(14), matched[1].ID)
	assert.Equal(t, int64(8), matched[2].ID)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2026, time.September, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, end.Day())

	t.Run("december rolls into the next year", func(t *testing.T) {
		start, end := MonthRange(2026, time.December, time.UTC)
		assert.Equal(t, time.December, start.Month())
		assert.Equal(t, 31, end.Day())
		assert.Equal(t, 2026, end.Year())
	})
}

func TestMonthNavigation(t *testing.T) {
	year, month := NextMonth(2026, time.December)
	assert.Equal(t, 2027, year)
	assert.Equal(t, time.January, month)

	year, month = NextMonth(2026, time.August)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.September, month)

	year, month = PrevMonth(2027, time.January)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.December, month)
}

func TestClip(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	var bucket []models.Reservation
	for i := 0; i < 5; i++ {
		bucket = append(bucket, reservation(int64(i), day.Add(time.Duration(i)*time.Hour), day.Add(time.Duration(i+1)*time.Hour)))
	}

	t.Run("caps the visible set and counts the overflow", func(t *testing.T) {
		shown, hidden := Clip(bucket, DisplayCap)
		assert.Len(t, shown, 3)
		assert.Equal(t, 2, hidden)
		assert.Len(t, bucket, 5, "the underlying bucket stays complete")
	})

	t.Run("small buckets pass through untouched", func(t *testing.T) {
		shown, hidden := Clip(bucket[:2], DisplayCap)
		assert.Len(t, shown, 2)
		assert.Equal(t, 0, hidden)
	})
}

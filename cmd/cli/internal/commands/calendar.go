package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/salasys/roomctl/internal/api"
	"github.com/salasys/roomctl/internal/calendar"
)

// CalendarCmd renders the month grid.
type CalendarCmd struct {
	Month    string        `help:"Month to show (YYYY-MM), defaults to the current month"`
	Watch    bool          `help:"Refresh the view periodically" default:"false"`
	Interval time.Duration `help:"Refresh interval in watch mode" default:"30s"`
}

func (c *CalendarCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	year, month, err := parseMonth(c.Month, time.Now())
	if err != nil {
		return err
	}

	if c.Watch {
		return c.watch(ctx, client, year, month)
	}

	return c.show(ctx, client, year, month)
}

func (c *CalendarCmd) show(ctx context.Context, client *api.Client, year int, month time.Month) error {
	start, end := calendar.MonthRange(year, month, time.Local)

	reservations, err := client.ListReservations(ctx, api.ListReservationsOptions{
		Start: start,
		End:   end,
	})
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	grid := calendar.BuildGrid(year, month, time.Local, reservations)
	renderGrid(os.Stdout, grid)
	return nil
}

// watch re-renders on a fixed interval while fetches succeed and backs
// off exponentially while they fail, so an unreachable backend is not
// hammered. Individual requests are never retried.
func (c *CalendarCmd) watch(ctx context.Context, client *api.Client, year int, month time.Month) error {
	fmt.Println("Watching calendar (press Ctrl+C to stop)...")

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = time.Second
	retry.MaxInterval = c.Interval

	for {
		delay := c.Interval

		fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
		fmt.Printf("Calendar (updated at %s)\n\n", time.Now().Format("15:04:05"))

		if err := c.show(ctx, client, year, month); err != nil {
			delay = retry.NextBackOff()
			fmt.Printf("Error updating calendar: %v (next attempt in %v)\n", err, delay.Round(time.Second))
		} else {
			retry.Reset()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func renderGrid(w io.Writer, grid *calendar.Grid) {
	fmt.Fprintf(w, "%s %d\n", grid.Month, grid.Year)
	fmt.Fprintln(w, " Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	col := 0
	for _, cell := range grid.Cells {
		switch {
		case cell == nil:
			fmt.Fprint(w, "     ")
		case len(cell.Reservations) > 0:
			fmt.Fprintf(w, "%4d*", cell.Day.Day())
		default:
			fmt.Fprintf(w, "%4d ", cell.Day.Day())
		}
		col++
		if col == 7 {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	for _, cell := range grid.Cells {
		if cell == nil || len(cell.Reservations) == 0 {
			continue
		}

		shown, hidden := calendar.Clip(cell.Reservations, calendar.DisplayCap)

		fmt.Fprintf(w, "%s\n", cell.Day.Format("Mon 02 Jan"))
		for _, r := range shown {
			fmt.Fprintf(w, "  %s-%s  %s (%s)\n",
				r.StartTime.Format("15:04"), r.EndTime.Format("15:04"),
				r.Title, statusLabel(r.Status))
		}
		if hidden > 0 {
			fmt.Fprintf(w, "  +%d more\n", hidden)
		}
	}
}

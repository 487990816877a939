package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/salasys/roomctl/internal/api"
	"github.com/salasys/roomctl/internal/calendar"
)

// TodayCmd prints the agenda for the current day. Unlike the grid
// cells, the agenda has no display cap.
type TodayCmd struct{}

func (t *TodayCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	now := time.Now()
	start, end := calendar.MonthRange(now.Year(), now.Month(), time.Local)

	reservations, err := client.ListReservations(ctx, api.ListReservationsOptions{
		Start: start,
		End:   end,
	})
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	agenda := calendar.ForDay(reservations, now)
	if len(agenda) == 0 {
		fmt.Printf("No reservations today (%s).\n", now.Format("Mon 02 Jan"))
		return nil
	}

	fmt.Printf("Today, %s:\n", now.Format("Mon 02 Jan"))
	for _, r := range agenda {
		room := r.RoomName
		if room == "" {
			room = fmt.Sprintf("room #%d", r.RoomID)
		}
		fmt.Printf("  %s-%s  %s @ %s (%s)\n",
			r.StartTime.Format("15:04"), r.EndTime.Format("15:04"),
			r.Title, room, statusLabel(r.Status))
	}
	return nil
}

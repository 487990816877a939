package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/salasys/roomctl/internal/api"
	"github.com/salasys/roomctl/internal/calendar"
	"github.com/salasys/roomctl/internal/models"
)

// ReservationsCmd manages reservations.
type ReservationsCmd struct {
	List   ReservationsListCmd   `cmd:"" help:"List reservations"`
	Create ReservationsCreateCmd `cmd:"" help:"Create a reservation"`
	Update ReservationsUpdateCmd `cmd:"" help:"Update a reservation"`
	Cancel ReservationsCancelCmd `cmd:"" help:"Cancel a reservation"`
}

// ReservationsListCmd lists reservations, optionally filtered. The
// backend scopes non-admin users to their own reservations.
type ReservationsListCmd struct {
	Month  string `help:"Limit to a month (YYYY-MM)"`
	Room   int64  `help:"Limit to a room ID"`
	Status string `help:"Limit to a status (confirmada, cancelada, pendente)"`
}

func (r *ReservationsListCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	opts := api.ListReservationsOptions{
		RoomID: r.Room,
		Status: models.ReservationStatus(r.Status),
	}
	if r.Month != "" {
		year, month, err := parseMonth(r.Month, time.Now())
		if err != nil {
			return err
		}
		opts.Start, opts.End = calendar.MonthRange(year, month, time.Local)
	}

	reservations, err := client.ListReservations(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	printReservations(reservations)
	return nil
}

func printReservations(reservations []models.Reservation) {
	if len(reservations) == 0 {
		fmt.Println("No reservations found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tROOM\tSTART\tEND\tSTATUS")

	for _, r := range reservations {
		room := r.RoomName
		if room == "" {
			room = fmt.Sprintf("#%d", r.RoomID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title, room,
			r.StartTime.Format("2006-01-02 15:04"),
			r.EndTime.Format("2006-01-02 15:04"),
			statusLabel(r.Status))
	}

	w.Flush()
}

// ReservationsCreateCmd creates a reservation. The time range is
// validated locally before anything goes over the wire.
type ReservationsCreateCmd struct {
	Title       string `arg:"" help:"Reservation title"`
	Room        int64  `help:"Room ID" required:""`
	Start       string `help:"Start time (e.g. 2026-08-31 14:00)" required:""`
	End         string `help:"End time (e.g. 2026-08-31 15:00)" required:""`
	Description string `help:"Optional description"`
}

func (r *ReservationsCreateCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	start, err := parseStamp(r.Start, time.Local)
	if err != nil {
		return err
	}
	end, err := parseStamp(r.End, time.Local)
	if err != nil {
		return err
	}

	reservation := &models.Reservation{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   start,
		EndTime:     end,
		RoomID:      r.Room,
	}

	created, err := client.CreateReservation(ctx, reservation)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	fmt.Printf("Created reservation %q (id %d, %s)\n",
		created.Title, created.ID, statusLabel(created.Status))
	return nil
}

// ReservationsUpdateCmd replaces a reservation's fields.
type ReservationsUpdateCmd struct {
	ID          int64  `arg:"" help:"Reservation ID"`
	Title       string `help:"Reservation title" required:""`
	Room        int64  `help:"Room ID" required:""`
	Start       string `help:"Start time (e.g. 2026-08-31 14:00)" required:""`
	End         string `help:"End time (e.g. 2026-08-31 15:00)" required:""`
	Description string `help:"Optional description"`
	Status      string `help:"New status (confirmada, cancelada, pendente)"`
}

func (r *ReservationsUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	start, err := parseStamp(r.Start, time.Local)
	if err != nil {
		return err
	}
	end, err := parseStamp(r.End, time.Local)
	if err != nil {
		return err
	}

	reservation := &models.Reservation{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   start,
		EndTime:     end,
		RoomID:      r.Room,
		Status:      models.ReservationStatus(r.Status),
	}

	updated, err := client.UpdateReservation(ctx, reservation)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	fmt.Printf("Updated reservation %q (id %d, %s)\n",
		updated.Title, updated.ID, statusLabel(updated.Status))
	return nil
}

// ReservationsCancelCmd cancels a reservation.
type ReservationsCancelCmd struct {
	ID int64 `arg:"" help:"Reservation ID"`
}

func (r *ReservationsCancelCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	if err := client.CancelReservation(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	fmt.Printf("Cancelled reservation %d\n", r.ID)
	return nil
}

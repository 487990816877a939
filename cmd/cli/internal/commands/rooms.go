package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/salasys/roomctl/internal/models"
)

// RoomsCmd manages rooms (admin screens).
type RoomsCmd struct {
	List   RoomsListCmd   `cmd:"" help:"List all rooms"`
	Create RoomsCreateCmd `cmd:"" help:"Create a room"`
	Update RoomsUpdateCmd `cmd:"" help:"Update a room"`
	Delete RoomsDeleteCmd `cmd:"" help:"Delete a room"`
}

// RoomsListCmd lists all rooms.
type RoomsListCmd struct{}

func (r *RoomsListCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	rooms, err := client.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}

	if len(rooms) == 0 {
		fmt.Println("No rooms found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCAPACITY\tLOCATION\tTYPE\tEQUIPMENT\tACTIVE")

	for _, room := range rooms {
		active := ""
		if room.Active {
			active = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			room.ID, room.Name, room.Capacity, room.Location, room.Type,
			strings.Join(room.Equipment, ", "), active)
	}

	w.Flush()
	return nil
}

// RoomsCreateCmd creates a room.
type RoomsCreateCmd struct {
	Name      string   `arg:"" help:"Room name"`
	Capacity  int      `help:"Seats in the room" required:""`
	Location  string   `help:"Where the room is" required:""`
	Type      string   `help:"Room type (reuniao, auditorio, laboratorio, treinamento)" default:"reuniao"`
	Equipment []string `help:"Equipment in the room (repeatable)"`
}

func (r *RoomsCreateCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	room := &models.Room{
		Name:      r.Name,
		Capacity:  r.Capacity,
		Location:  r.Location,
		Type:      models.RoomType(r.Type),
		Equipment: r.Equipment,
		Active:    true,
	}

	created, err := client.CreateRoom(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	fmt.Printf("Created room %q (id %d)\n", created.Name, created.ID)
	return nil
}

// RoomsUpdateCmd replaces a room's fields.
type RoomsUpdateCmd struct {
	ID        int64    `arg:"" help:"Room ID"`
	Name      string   `help:"Room name" required:""`
	Capacity  int      `help:"Seats in the room" required:""`
	Location  string   `help:"Where the room is" required:""`
	Type      string   `help:"Room type (reuniao, auditorio, laboratorio, treinamento)" default:"reuniao"`
	Equipment []string `help:"Equipment in the room (repeatable; omit to clear)"`
	Inactive  bool     `help:"Mark the room as inactive"`
}

func (r *RoomsUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	room := &models.Room{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Location:  r.Location,
		Type:      models.RoomType(r.Type),
		Equipment: r.Equipment,
		Active:    !r.Inactive,
	}

	updated, err := client.UpdateRoom(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	fmt.Printf("Updated room %q (id %d)\n", updated.Name, updated.ID)
	return nil
}

// RoomsDeleteCmd deletes a room.
type RoomsDeleteCmd struct {
	ID int64 `arg:"" help:"Room ID"`
}

func (r *RoomsDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	if err := client.DeleteRoom(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	fmt.Printf("Deleted room %d\n", r.ID)
	return nil
}

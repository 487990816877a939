package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/salasys/roomctl/cmd/cli/internal/commands"
	"github.com/salasys/roomctl/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Login        commands.LoginCmd        `cmd:"" help:"Log in and store the session"`
		Logout       commands.LogoutCmd       `cmd:"" help:"Drop the stored session"`
		Whoami       commands.WhoamiCmd       `cmd:"" help:"Show the logged-in user"`
		Rooms        commands.RoomsCmd        `cmd:"" help:"Manage rooms"`
		Reservations commands.ReservationsCmd `cmd:"" help:"Manage reservations"`
		Calendar     commands.CalendarCmd     `cmd:"" help:"Show the month calendar"`
		Today        commands.TodayCmd        `cmd:"" help:"Show today's agenda"`
		Config       string                   `help:"Path to config file (default: ~/.roomctl/config.yaml)"`
		Debug        bool                     `help:"Enable debug mode."`
		Version      kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	log.Logger = logger.Setup(cli.Debug)
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Config: cli.Config})
	cmd.FatalIfErrorf(err)
}

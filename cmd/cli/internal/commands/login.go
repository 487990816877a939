package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// LoginCmd authenticates against the backend and persists the session.
type LoginCmd struct {
	Username string `arg:"" help:"Account username"`
	Password string `help:"Account password (prompted when omitted)" env:"ROOMCTL_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	password := l.Password
	if password == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	user, err := client.Login(ctx, l.Username, password)
	if err != nil {
		return err
	}

	if user != nil && user.IsAdmin() {
		fmt.Printf("Logged in as %s (admin)\n", l.Username)
	} else {
		fmt.Printf("Logged in as %s\n", l.Username)
	}
	return nil
}

// LogoutCmd drops the stored session. No network call is made; the
// tokens simply stop existing on this machine.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	if err := client.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

// WhoamiCmd prints the logged-in user.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	user := client.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		fmt.Println()
		fmt.Println("To log in:")
		fmt.Println("  roomctl login <username>")
		return nil
	}

	fmt.Printf("%s (%s)\n", user.Username, user.AccessLevel)
	return nil
}

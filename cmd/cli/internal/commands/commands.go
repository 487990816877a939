package commands

import (
	"fmt"
	"time"

	"github.com/salasys/roomctl/internal/api"
	"github.com/salasys/roomctl/internal/config"
	"github.com/salasys/roomctl/internal/models"
	"github.com/salasys/roomctl/internal/session"
)

type Globals struct {
	Debug   bool
	Version string
	Config  string
}

// newClient builds an API client from the config file and any
// persisted session.
func newClient(globals *Globals) (*api.Client, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore("")
	if err != nil {
		return nil, err
	}

	return api.New(api.Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		CacheDir: cfg.CacheDir,
		Debug:    globals.Debug,
	}, store)
}

func statusLabel(s models.ReservationStatus) string {
	switch s {
	case models.StatusConfirmed:
		return "CONFIRMED"
	case models.StatusCancelled:
		return "CANCELLED"
	case models.StatusPending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// parseStamp accepts the timestamp formats users actually type.
func parseStamp(value string, loc *time.Location) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (want e.g. 2026-08-31 14:00)", value)
}

// parseMonth parses "YYYY-MM"; empty means the current month.
func parseMonth(value string, now time.Time) (int, time.Month, error) {
	if value == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", value)
	}
	return t.Year(), t.Month(), nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/salasys/roomctl/internal/models"
)

const reservationsPath = "/api/reservas"

// ListReservationsOptions narrows a reservation listing. Zero values
// leave the corresponding filter off.
type ListReservationsOptions struct {
	// Start and End scope the listing to reservations overlapping
	// the range, e.g. a calendar month.
	Start time.Time
	End   time.Time

	RoomID int64
	Status models.ReservationStatus
}

// ListReservations fetches reservations, optionally filtered. The
// backend scopes results to the caller's own reservations unless the
// caller is an admin.
func (c *Client) ListReservations(ctx context.Context, opts ListReservationsOptions) ([]models.Reservation, error) {
	query := url.Values{}
	if !opts.Start.IsZero() {
		query.Set("start", opts.Start.Format(time.RFC3339))
	}
	if !opts.End.IsZero() {
		query.Set("end", opts.End.Format(time.RFC3339))
	}
	if opts.RoomID != 0 {
		query.Set("sala_id", strconv.FormatInt(opts.RoomID, 10))
	}
	if opts.Status != "" {
		query.Set("status", string(opts.Status))
	}

	path := reservationsPath
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var result struct {
		Reservas []models.Reservation `json:"reservas"`
		Total    int                  `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Reservas, nil
}

// CreateReservation validates the reservation client-side and submits
// it. Validation failures return before any network call.
func (c *Client) CreateReservation(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var created models.Reservation
	if err := c.do(ctx, http.MethodPost, reservationsPath, r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReservation validates and replaces the reservation's fields.
func (c *Client) UpdateReservation(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var updated models.Reservation
	path := fmt.Sprintf("%s/%d", reservationsPath, r.ID)
	if err := c.do(ctx, http.MethodPut, path, r, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelReservation cancels a reservation. On success the caller can
// drop it from any locally held list; no reload is required.
func (c *Client) CancelReservation(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", reservationsPath, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

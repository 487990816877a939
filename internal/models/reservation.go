package models

import (
	"errors"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation. Wire
// values match the backend's vocabulary.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmada"
	StatusCancelled ReservationStatus = "cancelada"
	StatusPending   ReservationStatus = "pendente"
)

// Validation errors returned by Reservation.Validate. These are checked
// client-side so an invalid reservation never reaches the network.
var (
	ErrMissingTitle     = errors.New("reservation title is required")
	ErrMissingRoom      = errors.New("reservation room is required")
	ErrEndBeforeStart   = errors.New("reservation end must be after its start")
	ErrMissingStartTime = errors.New("reservation start time is required")
	ErrMissingEndTime   = errors.New("reservation end time is required")
)

// Reservation is a booking of a room for a time range.
// StartTime must be strictly before EndTime.
type Reservation struct {
	ID          int64             `json:"id,omitempty"`
	Title       string            `json:"titulo"`
	Description string            `json:"descricao,omitempty"`
	StartTime   time.Time         `json:"data_inicio"`
	EndTime     time.Time         `json:"data_fim"`
	Status      ReservationStatus `json:"status,omitempty"`
	RoomID      int64             `json:"sala_id"`
	OwnerUserID int64             `json:"usuario_id,omitempty"`

	// RoomName is echoed by list endpoints for display; it is never
	// sent on create or update.
	RoomName string `json:"sala_nome,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Validate checks the fields a create or update must carry before any
// network call is made.
func (r *Reservation) Validate() error {
	if r.Title == "" {
		return ErrMissingTitle
	}
	if r.RoomID == 0 {
		return ErrMissingRoom
	}
	if r.StartTime.IsZero() {
		return ErrMissingStartTime
	}
	if r.EndTime.IsZero() {
		return ErrMissingEndTime
	}
	if !r.StartTime.Before(r.EndTime) {
		return ErrEndBeforeStart
	}
	return nil
}

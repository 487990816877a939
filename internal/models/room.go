package models

import "time"

// RoomType categorizes a room. The wire values match the backend's
// Portuguese vocabulary.
type RoomType string

const (
	RoomTypeMeeting    RoomType = "reuniao"
	RoomTypeAuditorium RoomType = "auditorio"
	RoomTypeLab        RoomType = "laboratorio"
	RoomTypeTraining   RoomType = "treinamento"
)

// Room is a bookable room as served by the backend.
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Capacity  int       `json:"capacidade"`
	Location  string    `json:"localizacao"`
	Type      RoomType  `json:"tipo"`
	Equipment []string  `json:"equipamentos"`
	Active    bool      `json:"ativa"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

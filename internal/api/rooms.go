package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/salasys/roomctl/internal/models"
)

const roomsPath = "/api/salas"

// ListRooms fetches every room.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var result struct {
		Salas []models.Room `json:"salas"`
		Total int           `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, roomsPath, nil, &result); err != nil {
		return nil, err
	}
	return result.Salas, nil
}

// CreateRoom creates a room and returns it with its assigned ID.
func (c *Client) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	var created models.Room
	if err := c.do(ctx, http.MethodPost, roomsPath, room, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRoom replaces the room's fields.
func (c *Client) UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	var updated models.Room
	path := fmt.Sprintf("%s/%d", roomsPath, room.ID)
	if err := c.do(ctx, http.MethodPut, path, room, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", roomsPath, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

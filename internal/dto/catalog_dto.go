package dto

import "encoding/json"

// Request payloads for the staff-only catalog management endpoints. List and
// detail responses reuse the models directly; their json tags already match
// the public representation.

// LibraryRequest: create/update payload for a library. Times accept "HH:MM"
// or "HH:MM:SS".
type LibraryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"max=255"`
	Description string `json:"description"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

// FloorRequest: create/update payload for a floor.
type FloorRequest struct {
	Library     int64           `json:"library" binding:"required"`
	Number      int             `json:"number"`
	Description string          `json:"description"`
	FloorMap    json.RawMessage `json:"floor_map,omitempty"`
}

// RoomRequest: create/update payload for a room.
type RoomRequest struct {
	RoomID        string   `json:"room_id" binding:"required,max=20"`
	Floor         int64    `json:"floor" binding:"required"`
	Capacity      int      `json:"capacity" binding:"required,min=1"`
	HasWhiteboard bool     `json:"has_whiteboard"`
	HasMonitor    bool     `json:"has_monitor"`
	HasWindow     bool     `json:"has_window"`
	Status        string   `json:"status" binding:"omitempty,oneof=available maintenance closed"`
	PositionX     *float64 `json:"position_x,omitempty"`
	PositionY     *float64 `json:"position_y,omitempty"`
	Width         *float64 `json:"width,omitempty"`
	Height        *float64 `json:"height,omitempty"`
}

// MaterialRequest: create payload for a library material.
type MaterialRequest struct {
	Library int64  `json:"library" binding:"required"`
	Name    string `json:"name" binding:"required,max=100"`
}

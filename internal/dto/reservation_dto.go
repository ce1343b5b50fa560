package dto

import (
	"time"

	"studyrooms/internal/models"
)

// CreateReservationRequest: payload for creating a reservation. The owner is
// always the authenticated caller; there is no user field to supply.
type CreateReservationRequest struct {
	Room         string    `json:"room" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Status       string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Purpose      string    `json:"purpose" binding:"max=255"`
	NumAttendees int       `json:"num_attendees" binding:"omitempty,min=1"`
	Notes        string    `json:"notes"`
}

// UpdateReservationRequest: payload for a full reservation update.
type UpdateReservationRequest struct {
	Room         string    `json:"room" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Status       string    `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	Purpose      string    `json:"purpose" binding:"max=255"`
	NumAttendees int       `json:"num_attendees" binding:"omitempty,min=1"`
	Notes        string    `json:"notes"`
}

// PatchReservationRequest: partial reservation update; absent fields stay as
// they are.
type PatchReservationRequest struct {
	Room         *string    `json:"room,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Status       *string    `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Purpose      *string    `json:"purpose,omitempty" binding:"omitempty,max=255"`
	NumAttendees *int       `json:"num_attendees,omitempty" binding:"omitempty,min=1"`
	Notes        *string    `json:"notes,omitempty"`
}

// ReservationResponse mirrors the stored reservation plus the denormalized
// room identifier and username when the associations are loaded.
type ReservationResponse struct {
	ReservationID string    `json:"reservation_id"`
	Room          int64     `json:"room"`
	RoomID        string    `json:"room_id,omitempty"`
	User          string    `json:"user"`
	Username      string    `json:"username,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	Purpose       string    `json:"purpose"`
	NumAttendees  int       `json:"num_attendees"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

// FromReservation converts a model into its response shape.
func FromReservation(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ReservationID: r.ReservationID,
		Room:          r.RoomID,
		User:          r.UserID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        r.Status,
		Purpose:       r.Purpose,
		NumAttendees:  r.NumAttendees,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		ModifiedAt:    r.ModifiedAt,
	}
	if r.Room != nil {
		resp.RoomID = r.Room.RoomID
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	return resp
}

// FromReservations converts a slice of models, preserving order.
func FromReservations(reservations []models.Reservation) []ReservationResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		items = append(items, FromReservation(&reservations[i]))
	}
	return items
}

// ReservationListResponse: collection wrapper for reservation listings.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Total int                   `json:"total"`
}

// AvailabilityResponse: result of the room availability query.
type AvailabilityResponse struct {
	Room         string                `json:"room"`
	Date         string                `json:"date"`
	IsAvailable  bool                  `json:"is_available"`
	Reservations []ReservationResponse `json:"reservations"`
}

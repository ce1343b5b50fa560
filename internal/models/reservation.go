package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation status values.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// ValidReservationStatus reports whether s is one of the allowed reservation statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// Reservation is a user's claim on a room for a time window. The primary key
// is a UUID so public reservation ids cannot be enumerated. The check
// constraint keeps end_time after start_time even if a write bypasses the
// service-level validation.
type Reservation struct {
	ReservationID string    `json:"reservation_id" gorm:"primaryKey;type:uuid"`
	RoomID        int64     `json:"room" gorm:"not null;index"`
	UserID        string    `json:"user" gorm:"type:uuid;not null;index"`
	StartTime     time.Time `json:"start_time" gorm:"not null;index"`
	EndTime       time.Time `json:"end_time" gorm:"not null;check:chk_reservations_window,end_time > start_time"`
	Status        string    `json:"status" gorm:"not null;size:20;default:'pending'"`
	Purpose       string    `json:"purpose" gorm:"size:255"`
	NumAttendees  int       `json:"num_attendees" gorm:"default:1"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at" gorm:"autoUpdateTime"`

	// associations
	Room *Room `json:"-" gorm:"foreignKey:RoomID"`
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate hook to set the UUID before inserting a reservation.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ReservationID == "" {
		r.ReservationID = uuid.New().String()
	}
	return nil
}

func (Reservation) TableName() string {
	return "reservations"
}

// Overlaps reports whether the half-open windows [r.StartTime, r.EndTime) and
// [start, end) intersect. Touching endpoints do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

package models

// Room status values.
const (
	RoomStatusAvailable   = "available"
	RoomStatusMaintenance = "maintenance"
	RoomStatusClosed      = "closed"
)

// ValidRoomStatus reports whether s is one of the allowed room statuses.
func ValidRoomStatus(s string) bool {
	return s == RoomStatusAvailable || s == RoomStatusMaintenance || s == RoomStatusClosed
}

// Room is a reservable study room. RoomID is the human-readable identifier
// printed on the door (e.g. "STR101"); the numeric ID stays internal.
// The optional position rectangle places the room on its floor map.
type Room struct {
	ID            int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	RoomID        string   `json:"room_id" gorm:"uniqueIndex;not null;size:20"`
	FloorID       int64    `json:"floor" gorm:"not null;index"`
	Capacity      int      `json:"capacity" gorm:"not null"`
	HasWhiteboard bool     `json:"has_whiteboard" gorm:"default:false"`
	HasMonitor    bool     `json:"has_monitor" gorm:"default:false"`
	HasWindow     bool     `json:"has_window" gorm:"default:false"`
	Status        string   `json:"status" gorm:"not null;size:20;default:'available'"`
	PositionX     *float64 `json:"position_x,omitempty"`
	PositionY     *float64 `json:"position_y,omitempty"`
	Width         *float64 `json:"width,omitempty"`
	Height        *float64 `json:"height,omitempty"`

	// associations
	Floor        *Floor        `json:"-" gorm:"foreignKey:FloorID"`
	Reservations []Reservation `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}

func (Room) TableName() string {
	return "rooms"
}

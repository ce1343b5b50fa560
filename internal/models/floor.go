package models

import "encoding/json"

// Floor is a subdivision of a library. The floor number is unique within its
// library. FloorMap holds an optional JSON blob describing the floor layout
// for interactive maps; its shape is owned by the frontend.
type Floor struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	LibraryID   int64           `json:"library" gorm:"not null;uniqueIndex:idx_floors_library_number"`
	Number      int             `json:"number" gorm:"not null;uniqueIndex:idx_floors_library_number"`
	Description string          `json:"description"`
	FloorMap    json.RawMessage `json:"floor_map,omitempty" gorm:"type:jsonb"`

	// associations
	Library *Library `json:"-" gorm:"foreignKey:LibraryID"`
	Rooms   []Room   `json:"rooms,omitempty" gorm:"foreignKey:FloorID;constraint:OnDelete:CASCADE;"`
}

func (Floor) TableName() string {
	return "floors"
}

package models

import "time"

// Material is a lendable item catalogued per library (projectors, adapters,
// board markers and the like). Read access is public, writes are staff only.
type Material struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LibraryID int64     `json:"library" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"created_at"`

	Library *Library `json:"-" gorm:"foreignKey:LibraryID"`
}

func (Material) TableName() string {
	return "materials"
}

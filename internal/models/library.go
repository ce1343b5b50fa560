package models

// Library represents a physical library building on campus.
// Opening and closing times are stored as zero-padded "HH:MM:SS" strings so
// they compare lexicographically and round-trip through JSON unchanged.
type Library struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Location    string `json:"location" gorm:"size:255"`
	Description string `json:"description"`
	OpeningTime string `json:"opening_time" gorm:"not null;size:8"`
	ClosingTime string `json:"closing_time" gorm:"not null;size:8"`

	// associations
	Floors    []Floor    `json:"floors,omitempty" gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE;"`
	Materials []Material `json:"materials,omitempty" gorm:"foreignKey:LibraryID;constraint:OnDelete:CASCADE;"`
}

func (Library) TableName() string {
	return "libraries"
}

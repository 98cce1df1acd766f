package model

import "time"

type Dog struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID string `gorm:"index;not null" json:"ownerId"`

	Name      string     `gorm:"not null" json:"name"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate"`

	// small, medium or large
	Size   string  `gorm:"not null" json:"size"`
	Weight float64 `json:"weight"`
	Gender string  `json:"gender"`

	Neutered    bool        `json:"neutered"`
	Temperament StringSlice `gorm:"type:text" json:"temperament"`
	Photos      StringSlice `gorm:"type:text" json:"photos"`

	MicrochipNumber string `json:"microchipNumber"`
	MedicalNotes    string `json:"medicalNotes"`
}

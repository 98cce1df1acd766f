package model

import "time"

// DogSpot is a private garden or fenced area a host rents out to
// other dog owners
type DogSpot struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID string `gorm:"index;not null" json:"ownerId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`

	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `gorm:"not null" json:"address"`
	City       string  `gorm:"index;not null" json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `gorm:"default:Germany" json:"country"`

	// Square meters
	Size        float64     `gorm:"not null" json:"size"`
	Fenced      bool        `json:"fenced"`
	FenceHeight int         `json:"fenceHeight"`
	Surface     StringSlice `gorm:"type:text" json:"surface"`

	WaterSource   bool `json:"waterSource"`
	Seating       bool `json:"seating"`
	WasteDisposal bool `json:"wasteDisposal"`
	Parking       bool `json:"parking"`

	MaxDogs      int     `gorm:"not null" json:"maxDogs"`
	PricePerHour float64 `json:"pricePerHour"`

	Photos StringSlice `gorm:"type:text" json:"photos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

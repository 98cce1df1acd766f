package model

import "time"

type Route struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID string `gorm:"index;not null" json:"creatorId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	City        string `gorm:"index;not null" json:"city"`
	Country     string `gorm:"default:Germany" json:"country"`

	// Path holds the walked track as a JSON array of
	// {lat, lng, elevation} points
	Path string `gorm:"type:text" json:"path"`

	StartLatitude  float64 `json:"startLatitude"`
	StartLongitude float64 `json:"startLongitude"`
	EndLatitude    float64 `json:"endLatitude"`
	EndLongitude   float64 `json:"endLongitude"`

	// Meters and minutes
	Distance float64 `gorm:"not null" json:"distance"`
	Duration int     `json:"duration"`

	Difficulty string      `gorm:"default:easy" json:"difficulty"`
	Surface    StringSlice `gorm:"type:text" json:"surface"`

	OffLeash      bool `json:"offLeash"`
	WaterAccess   bool `json:"waterAccess"`
	DogPark       bool `json:"dogPark"`
	WasteStations bool `json:"wasteStations"`
	Lighting      bool `json:"lighting"`
	Parking       bool `json:"parking"`

	RatingSum   int `json:"-"`
	RatingCount int `json:"ratingCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AverageRating is recomputed from the stored sum instead of a
// storage hook so ratings stay a plain service level concern
func (r *Route) AverageRating() float64 {
	if r.RatingCount == 0 {
		return 0
	}

	return float64(r.RatingSum) / float64(r.RatingCount)
}

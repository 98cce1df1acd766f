package model

import "time"

// Meetup statuses
const (
	MeetupOpen      = "open"
	MeetupFull      = "full"
	MeetupCancelled = "cancelled"
	MeetupCompleted = "completed"
)

type Meetup struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID string `gorm:"index;not null" json:"creatorId"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"locationName"`
	Address      string  `json:"address"`

	DateTime time.Time `gorm:"index;not null" json:"dateTime"`
	Duration int       `gorm:"default:60" json:"duration"`

	// 0 means unlimited
	MaxParticipants int `json:"maxParticipants"`

	Activity   string `gorm:"default:walk" json:"activity"`
	Difficulty string `json:"difficulty"`
	Status     string `gorm:"default:open;index" json:"status"`

	Tags StringSlice `gorm:"type:text" json:"tags"`

	Participants []MeetupParticipant `gorm:"foreignKey:MeetupID" json:"participants"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MeetupParticipant struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetupID uint   `gorm:"index;not null" json:"meetupId"`
	UserID   string `gorm:"index;not null" json:"userId"`

	// confirmed, maybe or cancelled
	Status   string    `gorm:"default:confirmed" json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

package api

import (
	"net/http"
	"time"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type meetupCreateBody struct {
	Title           string    `json:"title" binding:"required,max=100"`
	Description     string    `json:"description" binding:"max=1000"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	LocationName    string    `json:"locationName"`
	Address         string    `json:"address"`
	DateTime        time.Time `json:"dateTime" binding:"required"`
	Duration        int       `json:"duration"`
	MaxParticipants int       `json:"maxParticipants" binding:"gte=0"`
	Activity        string    `json:"activity" binding:"omitempty,oneof=walk play training beach hike cafe other"`
	Difficulty      string    `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Tags            []string  `json:"tags"`
}

func (a *API) MeetupCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data meetupCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.DateTime.Before(time.Now()) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Meetup can't be scheduled in the past",
			"requestID": requestID,
		})
		return
	}

	meetup := model.Meetup{
		CreatorID:       userID,
		Title:           data.Title,
		Description:     data.Description,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		LocationName:    data.LocationName,
		Address:         data.Address,
		DateTime:        data.DateTime,
		Duration:        data.Duration,
		MaxParticipants: data.MaxParticipants,
		Activity:        data.Activity,
		Difficulty:      data.Difficulty,
		Tags:            data.Tags,
	}

	if err := a.DB.Create(&meetup).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create meetup", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   meetup,
	})
}

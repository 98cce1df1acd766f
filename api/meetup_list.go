package api

import (
	"net/http"
	"time"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) MeetupList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB.Model(model.Meetup{}).
		Preload("Participants").
		Where("date_time > ?", time.Now()).
		Order("date_time ASC").
		Limit(50)

	if activity := c.Query("activity"); activity != "" {
		q = q.Where("activity = ?", activity)
	}

	// Anonymous visitors only see open meetups, logged in users also
	// see the full ones they might already be part of
	if c.GetString("userID") == "" {
		q = q.Where("status = ?", model.MeetupOpen)
	} else {
		q = q.Where("status IN ?", []string{model.MeetupOpen, model.MeetupFull})
	}

	var meetups []model.Meetup

	if err := q.Find(&meetups).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch meetups", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   meetups,
	})
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"stralshund/dog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) MeetupJoin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	meetupID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid meetup ID",
			"requestID": requestID,
		})
		return
	}

	err = service.JoinMeetup(a.DB, uint(meetupID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMeetupNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrMeetupFull),
			errors.Is(err, service.ErrMeetupClosed),
			errors.Is(err, service.ErrAlreadyJoined):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to join meetup", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Joined meetup",
	})
}

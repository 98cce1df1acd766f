package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userUpdateBody struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Avatar    *string  `json:"avatar"`
	Bio       *string  `json:"bio"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UserUpdate changes profile fields only. Credentials, status and
// account type are never writable through this endpoint
func (a *API) UserUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

	var data userUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	updates := map[string]any{}

	if data.FirstName != nil {
		updates["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updates["last_name"] = *data.LastName
	}
	if data.Avatar != nil {
		updates["avatar"] = *data.Avatar
	}
	if data.Bio != nil {
		updates["bio"] = *data.Bio
	}
	if data.City != nil {
		updates["city"] = *data.City
	}
	if data.Country != nil {
		updates["country"] = *data.Country
	}
	if data.Latitude != nil {
		updates["latitude"] = *data.Latitude
	}
	if data.Longitude != nil {
		updates["longitude"] = *data.Longitude
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   user,
		})
		return
	}

	err := a.DB.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(updates).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update user profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var updated model.User
	if err := a.DB.Where("id = ?", user.ID).First(&updated).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updated,
	})
}

package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) SpotList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB.Model(model.DogSpot{}).Order("created_at DESC").Limit(50)

	if city := c.Query("city"); city != "" {
		q = q.Where("city = ?", city)
	}

	if c.Query("fenced") == "true" {
		q = q.Where("fenced = ?", true)
	}

	var spots []model.DogSpot

	if err := q.Find(&spots).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch dog spots", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   spots,
	})
}

package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRecommended is a premium feature. It ranks routes by their
// average rating, best first
func (a *API) RouteRecommended(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

	q := a.DB.Model(model.Route{}).
		Where("rating_count > 0").
		Order("rating_sum * 1.0 / rating_count DESC").
		Limit(20)

	if user.City != "" {
		q = q.Where("city = ?", user.City)
	}

	var routes []model.Route

	if err := q.Find(&routes).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recommended routes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   routeViews(routes),
	})
}

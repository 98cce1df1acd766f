package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// routeView decorates a stored route with its derived rating for
// responses
type routeView struct {
	model.Route
	AverageRating float64 `json:"averageRating"`
}

func routeViews(routes []model.Route) []routeView {
	out := make([]routeView, len(routes))
	for i, r := range routes {
		out[i] = routeView{Route: r, AverageRating: r.AverageRating()}
	}

	return out
}

func (a *API) RouteList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB.Model(model.Route{}).Order("created_at DESC").Limit(50)

	if city := c.Query("city"); city != "" {
		q = q.Where("city = ?", city)
	}

	if difficulty := c.Query("difficulty"); difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}

	// Logged in users additionally see their own routes first
	var mine []model.Route
	if userID := c.GetString("userID"); userID != "" {
		if err := a.DB.Where("creator_id = ?", userID).Order("created_at DESC").Find(&mine).Error; err != nil {
			zap.L().Error("Failed to fetch own routes", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	var routes []model.Route

	if err := q.Find(&routes).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch routes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"own":    routeViews(mine),
			"routes": routeViews(routes),
		},
	})
}

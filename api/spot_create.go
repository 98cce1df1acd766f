package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type spotCreateBody struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Description   string   `json:"description" binding:"required,max=1000"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	PostalCode    string   `json:"postalCode"`
	Country       string   `json:"country"`
	Size          float64  `json:"size" binding:"required,gte=10"`
	Fenced        bool     `json:"fenced"`
	FenceHeight   int      `json:"fenceHeight"`
	Surface       []string `json:"surface"`
	WaterSource   bool     `json:"waterSource"`
	Seating       bool     `json:"seating"`
	WasteDisposal bool     `json:"wasteDisposal"`
	Parking       bool     `json:"parking"`
	MaxDogs       int      `json:"maxDogs" binding:"required,gte=1"`
	PricePerHour  float64  `json:"pricePerHour" binding:"gte=0"`
	Photos        []string `json:"photos"`
}

// SpotCreate lists a new rentable spot. Routing restricts this to
// host and premium_plus accounts
func (a *API) SpotCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data spotCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	spot := model.DogSpot{
		OwnerID:       userID,
		Name:          data.Name,
		Description:   data.Description,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Address:       data.Address,
		City:          data.City,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		Size:          data.Size,
		Fenced:        data.Fenced,
		FenceHeight:   data.FenceHeight,
		Surface:       data.Surface,
		WaterSource:   data.WaterSource,
		Seating:       data.Seating,
		WasteDisposal: data.WasteDisposal,
		Parking:       data.Parking,
		MaxDogs:       data.MaxDogs,
		PricePerHour:  data.PricePerHour,
		Photos:        data.Photos,
	}

	if err := a.DB.Create(&spot).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create dog spot", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   spot,
	})
}

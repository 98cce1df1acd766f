package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type routeCreateBody struct {
	Name           string   `json:"name" binding:"required,max=100"`
	Description    string   `json:"description" binding:"max=1000"`
	City           string   `json:"city" binding:"required"`
	Country        string   `json:"country"`
	Path           string   `json:"path"`
	StartLatitude  float64  `json:"startLatitude"`
	StartLongitude float64  `json:"startLongitude"`
	EndLatitude    float64  `json:"endLatitude"`
	EndLongitude   float64  `json:"endLongitude"`
	Distance       float64  `json:"distance" binding:"required,gt=0"`
	Duration       int      `json:"duration"`
	Difficulty     string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Surface        []string `json:"surface"`
	OffLeash       bool     `json:"offLeash"`
	WaterAccess    bool     `json:"waterAccess"`
	DogPark        bool     `json:"dogPark"`
	WasteStations  bool     `json:"wasteStations"`
	Lighting       bool     `json:"lighting"`
	Parking        bool     `json:"parking"`
}

func (a *API) RouteCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data routeCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	route := model.Route{
		CreatorID:      userID,
		Name:           data.Name,
		Description:    data.Description,
		City:           data.City,
		Country:        data.Country,
		Path:           data.Path,
		StartLatitude:  data.StartLatitude,
		StartLongitude: data.StartLongitude,
		EndLatitude:    data.EndLatitude,
		EndLongitude:   data.EndLongitude,
		Distance:       data.Distance,
		Duration:       data.Duration,
		Difficulty:     data.Difficulty,
		Surface:        data.Surface,
		OffLeash:       data.OffLeash,
		WaterAccess:    data.WaterAccess,
		DogPark:        data.DogPark,
		WasteStations:  data.WasteStations,
		Lighting:       data.Lighting,
		Parking:        data.Parking,
	}

	if err := a.DB.Create(&route).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create route", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   route,
	})
}

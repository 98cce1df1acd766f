package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type refreshBody struct {
	RefreshToken string `json:"refreshToken"`
}

func (a *API) AuthRefresh(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data refreshBody
	if err := c.ShouldBindJSON(&data); err != nil || data.RefreshToken == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Refresh token is required",
			"requestID": requestID,
		})
		return
	}

	accessToken, err := a.Auth.Refresh(data.RefreshToken)
	if err != nil {
		serviceError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"accessToken": accessToken,
	})
}

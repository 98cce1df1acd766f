package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) AuthLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	if err := a.Auth.Logout(userID); err != nil {
		serviceError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *API) Heartbeat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "StralsHund API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

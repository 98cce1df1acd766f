package api

import (
	"errors"
	"net/http"

	"stralshund/dog-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serviceError turns an auth service error into the matching HTTP
// response. Anything that isn't one of the known kinds is an opaque
// server error, raw store errors never reach the client
func serviceError(c *gin.Context, requestID string, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, service.ErrDuplicateIdentity):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrInvalidRefreshToken):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		status, msg = http.StatusInternalServerError, "Internal server error"
		zap.L().Error("Auth operation failed", zap.Error(err), zap.String("requestID", requestID))
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":     msg,
		"requestID": requestID,
	})
}

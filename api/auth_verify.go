package api

import (
	"net/http"

	"stralshund/dog-api/internal/model"
	"stralshund/dog-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthVerify confirms an email address with the token mailed on
// registration
func (a *API) AuthVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	userID := c.Query("user_id")

	if token == "" || userID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Token expired or invalid",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load user for verification", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.VerificationTokenHash == nil || *user.VerificationTokenHash != security.DigestToken(token) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Token expired or invalid",
			"requestID": requestID,
		})
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"email_verified":          true,
			"verification_token_hash": nil,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark email verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Email verified successfully",
	})
}

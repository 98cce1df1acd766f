package api

import (
	"net/http"

	"stralshund/dog-api/validators"

	"github.com/gin-gonic/gin"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

// AuthForgotPassword answers the same way no matter whether the email
// is registered. The reset secret only travels by mail
func (a *API) AuthForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBindJSON(&data); err != nil || validators.EmailValidator(data.Email) != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Please provide a valid email address",
			"requestID": requestID,
		})
		return
	}

	if err := a.Auth.ForgotPassword(data.Email); err != nil {
		serviceError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "If that email is registered, a reset link has been sent",
	})
}

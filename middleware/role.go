package middleware

import (
	"net/http"

	"legalassist/utils"

	"github.com/gin-gonic/gin"
)

// RequireUserType must run after JWTAuthUserMiddleware.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "This action is only available to " + userType + " accounts"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	tokenRepo "legalassist/database/repository/token"
	userRepo "legalassist/database/repository/user"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthUserMiddleware.
const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
	ContextToken    = "token"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", true
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), true
}

// JWTAuthUserMiddleware authenticates the bearer token. With optional set,
// requests without an Authorization header pass through anonymously; a
// header that is present must still be valid.
func JWTAuthUserMiddleware(users userRepo.UserRepository, tokens tokenRepo.RevocationStore, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		tokenString, present := bearerToken(c)
		if !present {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Authentication required"})
			return
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid authorization header"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx := c.Request.Context()
		revoked, err := tokens.IsRevoked(ctx, utils.HashToken(tokenString))
		if err != nil {
			// Fail open when the revocation store is unreachable.
			logger.Warn("Token revocation check failed", zap.Error(err))
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Token has been revoked"})
			return
		}

		usr, err := users.GetByID(ctx, claims.Subject)
		if err != nil {
			logger.Error("Auth user lookup failed", zap.String("userID", claims.Subject), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Authentication error"})
			return
		}
		if usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "User not found"})
			return
		}

		c.Set(ContextUserID, usr.ID)
		c.Set(ContextUserType, usr.UserType)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" for anonymous requests.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

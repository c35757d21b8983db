package handlers

import (
	"legalassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the global logger tagged with the route being served.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(zap.String("route", c.FullPath()))
}

// userID returns the id set by the auth middleware, or "" for anonymous requests.
func userID(c *gin.Context) string {
	return c.GetString("userID")
}

package middlewares

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const HeaderAPIKey = "Api-Key"

// HasValidAPIKey guards service-to-service endpoints. Keys are compared in
// constant time.
func HasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			slog.Warn("API key missing", slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
			return
		}

		for _, validKey := range validKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
				c.Next()
				return
			}
		}

		slog.Warn("invalid API key used", slog.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
	}
}

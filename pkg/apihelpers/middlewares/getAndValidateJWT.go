package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	portaluserDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/portal-user"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAuthorization = "Authorization"
)

// GetAndValidatePortalUserJWT is a middleware that extracts the JWT from the request and validates it
func GetAndValidatePortalUserJWT(tokenSignKey string, allowedInstanceIDs []string, puDBService *portaluserDB.PortalUserDBService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// Parse and validate token
		parsedToken, ok, err := jwthandling.ValidatePortalUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}

		if !isInstanceAllowed(parsedToken.InstanceID, allowedInstanceIDs) {
			slog.Warn("instanceID not allowed", slog.String("instanceID", parsedToken.InstanceID), slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
			c.Abort()
			return
		}

		if puDBService.IsJwtBlocked(parsedToken.InstanceID, token) {
			slog.Warn("token logged out")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token logged out"})
			c.Abort()
			return
		}

		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

// GetAndValidatePortalUserJWTWithIgnoringExpiration accepts expired tokens,
// used by the token renew endpoint.
func GetAndValidatePortalUserJWTWithIgnoringExpiration(tokenSignKey string, allowedInstanceIDs []string, puDBService *portaluserDB.PortalUserDBService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, _, err := jwthandling.ValidatePortalUserToken(token, tokenSignKey)
		if err != nil && !strings.Contains(err.Error(), "token is expired") {
			slog.Warn("token validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		if parsedToken == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}

		if !isInstanceAllowed(parsedToken.InstanceID, allowedInstanceIDs) {
			slog.Warn("instanceID not allowed", slog.String("instanceID", parsedToken.InstanceID), slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
			c.Abort()
			return
		}

		if puDBService.IsJwtBlocked(parsedToken.InstanceID, token) {
			slog.Warn("token logged out")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token logged out"})
			c.Abort()
			return
		}

		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("No token found in Authorization header")
		}
	} else {
		return token, errors.New("No Authorization header found")
	}
	return token, nil
}

func isInstanceAllowed(instanceID string, allowedInstanceIDs []string) bool {
	return utils.ContainsString(allowedInstanceIDs, instanceID)
}

package apihandlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/pwhash"
	puUtils "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/utils"
	"github.com/gin-gonic/gin"

	userTypes "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/types"
)

const (
	loginFailedAttemptWindow = 5 * time.Minute
	allowedPasswordAttempts  = 10
)

func (h *HttpEndpoints) AddPortalAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.RequirePayload(), h.loginWithEmail)
		authGroup.POST("/token/renew", mw.RequirePayload(), mw.GetAndValidatePortalUserJWTWithIgnoringExpiration(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn), h.refreshToken)
		authGroup.GET("/token/validate", mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn), h.validateToken)
		authGroup.GET("/token/revoke", mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn), h.revokeRefreshTokens)
		authGroup.POST("/change-password", mw.RequirePayload(), mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn), h.changePassword)
		authGroup.POST("/logout", mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn), h.logout)
	}
}

type LoginWithEmailReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	InstanceID string `json:"instanceId"`
}

// generateSessionID creates a unique session ID using crypto/rand
func generateSessionID() (string, error) {
	bytes := make([]byte, 16) // 32 character hex string
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (h *HttpEndpoints) loginWithEmail(c *gin.Context) {
	var req LoginWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" || req.InstanceID == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if !h.isInstanceAllowed(req.InstanceID) {
		slog.Error("instance not allowed", slog.String("instanceID", req.InstanceID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid instance id"})
		return
	}

	req.Email = puUtils.SanitizeEmail(req.Email)

	user, err := h.portalUserDBConn.GetPortalUserByAccountID(req.InstanceID, req.Email)
	if err != nil {
		slog.Warn("login attempt with wrong email address", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID), slog.String("error", err.Error()))
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if user.FailedLoginAttemptsWithin(loginFailedAttemptWindow) >= allowedPasswordAttempts {
		slog.Warn("login attempt with too many failed attempts", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID))
		h.saveFailedLoginAttempt(req.InstanceID, user)
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Account.Password, req.Password)
	if err != nil || !match {
		if err == nil {
			err = errors.New("passwords do not match")
		}
		slog.Warn("login attempt with wrong password", slog.String("email", req.Email), slog.String("instanceID", req.InstanceID), slog.String("error", err.Error()))
		h.saveFailedLoginAttempt(req.InstanceID, user)
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	// generate jwt
	sessionID, err := generateSessionID()
	if err != nil {
		slog.Error("failed to generate session ID", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := jwthandling.GenerateNewPortalUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		req.InstanceID,
		sessionID,
		user.IsAdmin,
		map[string]string{},
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// generate refresh token
	renewToken, err := puUtils.GenerateUniqueTokenString()
	if err != nil {
		slog.Error("failed to generate renew token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	err = h.portalUserDBConn.CreateRenewToken(req.InstanceID, user.ID.Hex(), renewToken, 0, sessionID)
	if err != nil {
		slog.Error("failed to save renew token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// update timestamps and reset rate limiting
	user.Timestamps.LastLoginAt = time.Now().Unix()
	user.Account.FailedLoginAttempts = []int64{}
	if err := h.portalUserDBConn.ReplacePortalUser(req.InstanceID, user); err != nil {
		slog.Error("failed to update user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("login successful", slog.String("subject", user.ID.Hex()), slog.String("instanceID", req.InstanceID))

	user.Account.Password = ""

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  token,
			"refreshToken": renewToken,
			"expiresIn":    h.tokenExpiresIn.Seconds(),
		},
		"user": user,
	})
}

func (h *HttpEndpoints) saveFailedLoginAttempt(instanceID string, user userTypes.PortalUser) {
	user.AddFailedLoginAttempt(loginFailedAttemptWindow)
	if err := h.portalUserDBConn.ReplacePortalUser(instanceID, user); err != nil {
		slog.Error("failed to save failed login attempt", slog.String("error", err.Error()))
	}
}

type RefreshTokenReq struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *HttpEndpoints) refreshToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	var req RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// check if user still exists
	user, err := h.portalUserDBConn.GetPortalUserByID(token.InstanceID, token.Subject)
	if err != nil {
		slog.Warn("user not found", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	// generate new refresh token
	newRenewToken, err := puUtils.GenerateUniqueTokenString()
	if err != nil {
		slog.Error("failed to generate renew token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Check if previous token is still valid
	rt, err := h.portalUserDBConn.FindAndUpdateRenewToken(
		token.InstanceID,
		token.Subject,
		req.RefreshToken,
		newRenewToken,
	)
	if err != nil {
		slog.Error("failed to find and update renew token", slog.String("error", err.Error()), slog.String("instanceID", token.InstanceID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	if rt.NextToken == "" {
		// this is the first time the refresh token is used
		err = h.portalUserDBConn.CreateRenewToken(token.InstanceID, token.Subject, newRenewToken, 0, token.SessionID)
		if err != nil {
			slog.Error("failed to save renew token", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	} else {
		newRenewToken = rt.NextToken
	}

	// generate jwt
	newJwt, err := jwthandling.GenerateNewPortalUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		token.InstanceID,
		token.SessionID,
		user.IsAdmin,
		map[string]string{},
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// a successful renew counts as activity
	if err := h.portalUserDBConn.UpdateLastLoginAt(token.InstanceID, user.ID.Hex(), time.Now().Unix()); err != nil {
		slog.Error("failed to update last login timestamp", slog.String("error", err.Error()))
	}

	user.Account.Password = ""

	slog.Info("token refreshed", slog.String("subject", user.ID.Hex()), slog.String("instanceID", token.InstanceID))

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  newJwt,
			"refreshToken": newRenewToken,
			"expiresIn":    h.tokenExpiresIn.Seconds(),
		},
		"user": user,
	})
}

func (h *HttpEndpoints) validateToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	// check if user still exists
	_, err := h.portalUserDBConn.GetPortalUserByID(token.InstanceID, token.Subject)
	if err != nil {
		slog.Warn("user not found", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokenInfos": token})
}

func (h *HttpEndpoints) revokeRefreshTokens(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	count, err := h.portalUserDBConn.DeleteRenewTokensForUser(token.InstanceID, token.Subject)
	if err != nil {
		slog.Error("failed to delete renew tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	slog.Debug("deleted renew tokens", slog.Int64("count", count))
	c.JSON(http.StatusOK, gin.H{"message": "tokens revoked"})
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *HttpEndpoints) changePassword(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !puUtils.CheckPasswordFormat(req.NewPassword) {
		slog.Warn("new password does not fulfill password rules", slog.String("subject", token.Subject))
		c.JSON(http.StatusBadRequest, gin.H{"error": "password does not fulfill password rules"})
		return
	}

	user, err := h.portalUserDBConn.GetPortalUserByID(token.InstanceID, token.Subject)
	if err != nil {
		slog.Warn("user not found", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Account.Password, req.OldPassword)
	if err != nil || !match {
		slog.Warn("change password attempt with wrong password", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID))
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	newHash, err := pwhash.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.portalUserDBConn.UpdatePasswordHash(token.InstanceID, token.Subject, newHash, time.Now().Unix()); err != nil {
		slog.Error("failed to update password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// other sessions have to log in again
	if _, err := h.portalUserDBConn.DeleteRenewTokensForUser(token.InstanceID, token.Subject); err != nil {
		slog.Error("failed to delete renew tokens", slog.String("error", err.Error()))
	}

	slog.Info("password changed", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *HttpEndpoints) logout(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)
	tokenString := c.MustGet("token").(string)

	count, err := h.portalUserDBConn.DeleteRenewTokensForSession(token.InstanceID, token.Subject, token.SessionID)
	if err != nil {
		slog.Error("failed to delete renew tokens during logout", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	err = h.portalUserDBConn.AddBlockedJwt(
		token.InstanceID,
		tokenString,
		token.ExpiresAt.Time,
	)
	if err != nil {
		slog.Error("failed to add blocked JWT", slog.String("error", err.Error()))
	}

	slog.Info("user logged out", slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID), slog.Int64("tokensRevoked", count))
	c.JSON(http.StatusOK, gin.H{
		"message":       "logout successful",
		"tokensRevoked": count,
	})
}

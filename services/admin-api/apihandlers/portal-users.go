package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/pwhash"
	userTypes "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/types"
	puUtils "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/utils"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddPortalUserManagementAPI(rg *gin.RouterGroup) {
	umGroup := rg.Group("/portal-users")
	umGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn))
	umGroup.Use(mw.IsAdminUser())
	{
		umGroup.GET("", h.getAllPortalUsers)
		umGroup.POST("", mw.RequirePayload(), h.createPortalUser)
		umGroup.GET("/:userID", h.getPortalUser)
		umGroup.DELETE("/:userID", h.deletePortalUser)
		umGroup.POST("/:userID/reset-password", mw.RequirePayload(), h.resetPortalUserPassword)
	}
}

func (h *HttpEndpoints) getAllPortalUsers(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	users, err := h.portalUserDBConn.GetPortalUsers(token.InstanceID)
	if err != nil {
		slog.Error("error retrieving portal users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting users"})
		return
	}

	for i := range users {
		users[i].Account.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type CreatePortalUserReq struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Organisation string `json:"organisation"`
	IsAdmin      bool   `json:"isAdmin"`
}

func (h *HttpEndpoints) createPortalUser(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	var req CreatePortalUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Email = puUtils.SanitizeEmail(req.Email)
	if !puUtils.CheckEmailFormat(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if !puUtils.CheckPasswordFormat(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password does not fulfill password rules"})
		return
	}

	hash, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	newUser := userTypes.PortalUser{
		Account: userTypes.Account{
			Type:      userTypes.ACCOUNT_TYPE_EMAIL,
			AccountID: req.Email,
			Password:  hash,
		},
		Profile: userTypes.Profile{
			FullName:     req.FullName,
			Organisation: req.Organisation,
		},
		IsAdmin: req.IsAdmin,
		Timestamps: userTypes.Timestamps{
			CreatedAt: time.Now().Unix(),
		},
	}

	id, err := h.portalUserDBConn.CreatePortalUser(token.InstanceID, newUser)
	if err != nil {
		slog.Error("failed to create portal user", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("portal user created", slog.String("newUserID", id), slog.String("createdBy", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusCreated, gin.H{"userId": id})
}

func (h *HttpEndpoints) getPortalUser(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)
	userID := c.Param("userID")

	user, err := h.portalUserDBConn.GetPortalUserByID(token.InstanceID, userID)
	if err != nil {
		slog.Error("error retrieving portal user", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.Account.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *HttpEndpoints) deletePortalUser(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)
	userID := c.Param("userID")

	if token.Subject == userID {
		slog.Error("user cannot delete itself", slog.String("userID", token.Subject), slog.String("instanceID", token.InstanceID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "user cannot delete itself"})
		return
	}

	// delete sessions first so the user cannot renew afterwards
	if _, err := h.portalUserDBConn.DeleteRenewTokensForUser(token.InstanceID, userID); err != nil {
		slog.Error("error deleting renew tokens", slog.String("error", err.Error()))
	}

	if err := h.portalUserDBConn.DeletePortalUser(token.InstanceID, userID); err != nil {
		slog.Error("error deleting portal user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting user"})
		return
	}

	slog.Info("portal user deleted", slog.String("deletedUserID", userID), slog.String("deletedBy", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

type ResetPasswordReq struct {
	NewPassword string `json:"newPassword"`
}

func (h *HttpEndpoints) resetPortalUserPassword(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)
	userID := c.Param("userID")

	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !puUtils.CheckPasswordFormat(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password does not fulfill password rules"})
		return
	}

	hash, err := pwhash.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.portalUserDBConn.UpdatePasswordHash(token.InstanceID, userID, hash, time.Now().Unix()); err != nil {
		slog.Error("failed to reset password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error resetting password"})
		return
	}

	if _, err := h.portalUserDBConn.DeleteRenewTokensForUser(token.InstanceID, userID); err != nil {
		slog.Error("error deleting renew tokens", slog.String("error", err.Error()))
	}

	slog.Info("portal user password reset", slog.String("forUserID", userID), slog.String("resetBy", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

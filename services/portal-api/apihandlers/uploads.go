package apihandlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	caseDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/case"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedUploadTypes = []string{
	"image/png",
	"image/jpeg",
	"application/pdf",
}

func (h *HttpEndpoints) AddFilesAPI(rg *gin.RouterGroup) {
	filesGroup := rg.Group("/files")
	filesGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn))
	{
		filesGroup.POST("", h.uploadFile)
		filesGroup.GET("/:fileID", h.downloadFile)
		filesGroup.DELETE("/:fileID", h.deleteFile)
	}
}

// uploadFile stores a signature image (or attachment) under the filestore path
// with a random name; the original filename never reaches the disk.
func (h *HttpEndpoints) uploadFile(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Error("failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}

	contentType, err := utils.ValidateFileTypeFromContent(fileHeader, allowedUploadTypes)
	if err != nil {
		slog.Warn("upload with unsupported file type", slog.String("error", err.Error()), slog.String("subject", token.Subject))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	storedName := uuid.New().String() + utils.GetFileExtensionFromContentType(contentType)
	targetPath := filepath.Join(h.filestorePath, token.InstanceID, storedName)

	if err := c.SaveUploadedFile(fileHeader, targetPath); err != nil {
		slog.Error("failed to store uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	info, err := h.caseDBConn.SaveUploadedFileInfo(token.InstanceID, caseDB.UploadedFileInfo{
		FileName:    storedName,
		Path:        targetPath,
		ContentType: contentType,
		UploadedBy:  token.Subject,
	})
	if err != nil {
		slog.Error("failed to save file info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	slog.Info("file uploaded", slog.String("fileID", info.ID.Hex()), slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"fileDetails": gin.H{
				"id":  info.ID.Hex(),
				"url": "/v1/files/" + info.ID.Hex(),
			},
		},
	})
}

func (h *HttpEndpoints) downloadFile(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	info, err := h.caseDBConn.GetUploadedFileInfo(token.InstanceID, c.Param("fileID"))
	if err != nil {
		slog.Warn("file not found", slog.String("fileID", c.Param("fileID")), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Header("Content-Type", info.ContentType)
	c.File(info.Path)
}

func (h *HttpEndpoints) deleteFile(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	info, err := h.caseDBConn.GetUploadedFileInfo(token.InstanceID, c.Param("fileID"))
	if err != nil {
		slog.Warn("file not found", slog.String("fileID", c.Param("fileID")), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	if info.UploadedBy != token.Subject && !token.IsAdmin {
		slog.Warn("unauthorized file deletion attempt", slog.String("fileID", info.ID.Hex()), slog.String("subject", token.Subject))
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete this file"})
		return
	}

	if err := os.Remove(info.Path); err != nil {
		// the info document is still removed so the reference disappears
		slog.Error("failed to remove file from filestore", slog.String("path", info.Path), slog.String("error", err.Error()))
	}

	if err := h.caseDBConn.DeleteUploadedFileInfo(token.InstanceID, info.ID.Hex()); err != nil {
		slog.Error("failed to delete file info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}

	slog.Info("file deleted", slog.String("fileID", info.ID.Hex()), slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

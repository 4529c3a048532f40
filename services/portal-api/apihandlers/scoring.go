package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	printtemplates "github.com/Mentoons-github/Mentoons-website-sub002/pkg/print-templates"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/scoring"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) addScoringAPI(caseRecordsGroup *gin.RouterGroup) {
	scoringGroup := caseRecordsGroup.Group("/:caseID/scoring")
	{
		scoringGroup.GET("", h.getScoringSessions)
		scoringGroup.POST("", mw.RequirePayload(), h.createScoringSession)
		scoringGroup.GET("/:scoringID", h.getScoringSession)
		scoringGroup.PUT("/:scoringID", mw.RequirePayload(), h.updateScoringSession)
		scoringGroup.DELETE("/:scoringID", h.deleteScoringSession)
		scoringGroup.GET("/:scoringID/print", h.printScoringSession)
	}
}

// rebuildScoringPayload passes the submitted scores through a score sheet so
// heading sums and the total are always re-derived server side. Unknown
// sessions are an error, out-of-range indices are dropped.
func rebuildScoringPayload(req types.SessionScoring) (types.SessionScoring, error) {
	sheet, err := scoring.SheetFromSession(req)
	if err != nil {
		return types.SessionScoring{}, err
	}
	return sheet.BuildSubmissionPayload(), nil
}

func (h *HttpEndpoints) createScoringSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	var req types.SessionScoring
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := rebuildScoringPayload(req)
	if err != nil {
		slog.Warn("invalid scoring payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.CaseID = record.ID

	session, err := h.caseDBConn.CreateScoringSession(token.InstanceID, payload)
	if err != nil {
		slog.Error("failed to create scoring session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create scoring session"})
		return
	}

	// the record now carries a scoring system
	if !record.ScoringSystem {
		if err := h.caseDBConn.SetScoringSystemFlag(token.InstanceID, record.ID.Hex(), true); err != nil {
			slog.Error("failed to set scoring system flag", slog.String("error", err.Error()))
		}
	}

	slog.Info("scoring session created", slog.String("caseID", record.ID.Hex()), slog.String("scoringID", session.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusCreated, gin.H{"scoringSession": session})
}

func (h *HttpEndpoints) getScoringSessions(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	sessions, err := h.caseDBConn.GetScoringSessionsForCase(token.InstanceID, record.ID.Hex())
	if err != nil {
		slog.Error("failed to fetch scoring sessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch scoring sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scoringSessions": sessions})
}

// getScoringSession returns the stored scores joined with the rubric texts and
// point caps, ready for display.
func (h *HttpEndpoints) getScoringSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	session, err := h.caseDBConn.GetScoringSessionByID(token.InstanceID, c.Param("scoringID"))
	if err != nil || session.CaseID != record.ID {
		slog.Warn("scoring session not found", slog.String("scoringID", c.Param("scoringID")), slog.String("caseID", record.ID.Hex()))
		c.JSON(http.StatusNotFound, gin.H{"error": "scoring session not found"})
		return
	}

	rendered, err := scoring.JoinWithRubric(session)
	if err != nil {
		slog.Error("failed to join scoring session with rubric", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render scoring session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scoringSession": session,
		"rendered":       rendered,
	})
}

func (h *HttpEndpoints) updateScoringSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	existing, err := h.caseDBConn.GetScoringSessionByID(token.InstanceID, c.Param("scoringID"))
	if err != nil || existing.CaseID != record.ID {
		slog.Warn("scoring session not found", slog.String("scoringID", c.Param("scoringID")), slog.String("caseID", record.ID.Hex()))
		c.JSON(http.StatusNotFound, gin.H{"error": "scoring session not found"})
		return
	}

	var req types.SessionScoring
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := rebuildScoringPayload(req)
	if err != nil {
		slog.Warn("invalid scoring payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ID = existing.ID
	payload.CaseID = existing.CaseID
	payload.CreatedAt = existing.CreatedAt
	payload.UpdatedAt = time.Now().Unix()

	if err := h.caseDBConn.UpdateScoringSession(token.InstanceID, existing.ID.Hex(), payload); err != nil {
		slog.Error("failed to update scoring session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update scoring session"})
		return
	}

	slog.Info("scoring session updated", slog.String("scoringID", existing.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusOK, gin.H{"scoringSession": payload})
}

func (h *HttpEndpoints) deleteScoringSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	existing, err := h.caseDBConn.GetScoringSessionByID(token.InstanceID, c.Param("scoringID"))
	if err != nil || existing.CaseID != record.ID {
		slog.Warn("scoring session not found", slog.String("scoringID", c.Param("scoringID")), slog.String("caseID", record.ID.Hex()))
		c.JSON(http.StatusNotFound, gin.H{"error": "scoring session not found"})
		return
	}

	if err := h.caseDBConn.DeleteScoringSession(token.InstanceID, existing.ID.Hex()); err != nil {
		slog.Error("failed to delete scoring session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete scoring session"})
		return
	}

	// clear the record's scoring system flag when its last sheet is gone
	count, err := h.caseDBConn.CountScoringSessionsForCase(token.InstanceID, record.ID.Hex())
	if err != nil {
		slog.Error("failed to count scoring sessions", slog.String("error", err.Error()))
	} else if count == 0 && record.ScoringSystem {
		if err := h.caseDBConn.SetScoringSystemFlag(token.InstanceID, record.ID.Hex(), false); err != nil {
			slog.Error("failed to clear scoring system flag", slog.String("error", err.Error()))
		}
	}

	slog.Info("scoring session deleted", slog.String("scoringID", existing.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "scoring session deleted"})
}

func (h *HttpEndpoints) printScoringSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	session, err := h.caseDBConn.GetScoringSessionByID(token.InstanceID, c.Param("scoringID"))
	if err != nil || session.CaseID != record.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "scoring session not found"})
		return
	}

	html, err := printtemplates.RenderScoreSheetHTML(session)
	if err != nil {
		slog.Error("failed to render score sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render score sheet"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

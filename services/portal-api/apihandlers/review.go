package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	printtemplates "github.com/Mentoons-github/Mentoons-website-sub002/pkg/print-templates"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/review"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/validation"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) addReviewAPI(caseRecordsGroup *gin.RouterGroup) {
	reviewGroup := caseRecordsGroup.Group("/:caseID/review")
	{
		reviewGroup.GET("", h.getReview)
		reviewGroup.POST("", mw.RequirePayload(), h.submitReview)
		reviewGroup.PUT("", mw.RequirePayload(), h.updateReview)
		reviewGroup.GET("/print", h.printReview)
	}
}

func (h *HttpEndpoints) getReview(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	if record.ReviewMechanism == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not submitted yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviewMechanism": record.ReviewMechanism})
}

// submitReview performs the one-way first submission. Once a review exists,
// only updateReview can change it.
func (h *HttpEndpoints) submitReview(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	var req types.ReviewMechanism
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.ValidateReview(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       validation.AggregateMessage(errs),
			"fieldErrors": errs,
		})
		return
	}

	flow := review.FlowFor(record)
	stamped, err := flow.Submit(req)
	if err != nil {
		slog.Warn("review submission rejected", slog.String("caseID", record.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := h.caseDBConn.UpdateReviewMechanism(token.InstanceID, record.ID.Hex(), stamped); err != nil {
		slog.Error("failed to save review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}

	slog.Info("review submitted", slog.String("caseID", record.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusCreated, gin.H{"reviewMechanism": stamped})
}

// updateReview edits an already submitted review; the original submission
// timestamp is preserved.
func (h *HttpEndpoints) updateReview(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	var req types.ReviewMechanism
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.ValidateReview(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       validation.AggregateMessage(errs),
			"fieldErrors": errs,
		})
		return
	}

	flow := review.FlowFor(record)
	if err := flow.BeginEdit(); err != nil {
		slog.Warn("review update rejected", slog.String("caseID", record.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	updated, err := flow.Update(*record.ReviewMechanism, req)
	if err != nil {
		slog.Warn("review update rejected", slog.String("caseID", record.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := h.caseDBConn.UpdateReviewMechanism(token.InstanceID, record.ID.Hex(), updated); err != nil {
		slog.Error("failed to save review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}

	slog.Info("review updated", slog.String("caseID", record.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusOK, gin.H{"reviewMechanism": updated})
}

func (h *HttpEndpoints) printReview(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	html, err := printtemplates.RenderReviewHTML(record.ReviewMechanism)
	if err != nil {
		slog.Error("failed to render review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render review"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

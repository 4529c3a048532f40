package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers"
	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
	caseExporter "github.com/Mentoons-github/Mentoons-website-sub002/pkg/exporter/case-records"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	printtemplates "github.com/Mentoons-github/Mentoons-website-sub002/pkg/print-templates"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/validation"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *HttpEndpoints) AddCaseRecordsAPI(rg *gin.RouterGroup) {
	caseRecordsGroup := rg.Group("/case-records")
	caseRecordsGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn))
	{
		caseRecordsGroup.POST("", mw.RequirePayload(), h.createCaseRecord)
		caseRecordsGroup.GET("", h.getCaseRecords)
		caseRecordsGroup.GET("/export", h.exportCaseRecords)
		caseRecordsGroup.GET("/:caseID", h.getCaseRecord)
		caseRecordsGroup.PUT("/:caseID", mw.RequirePayload(), h.updateCaseRecord)
		caseRecordsGroup.DELETE("/:caseID", h.deleteCaseRecord)
		caseRecordsGroup.GET("/:caseID/print", h.printCaseRecord)
	}

	h.addScoringAPI(caseRecordsGroup)
	h.addReviewAPI(caseRecordsGroup)
}

// getCaseRecordWithAccessCheck loads the record and verifies that the
// requesting user owns it or is an admin. It writes the error response itself.
func (h *HttpEndpoints) getCaseRecordWithAccessCheck(c *gin.Context, token *jwthandling.PortalUserClaims) (types.Details, bool) {
	caseID := c.Param("caseID")

	record, err := h.caseDBConn.GetCaseRecordByID(token.InstanceID, caseID)
	if err != nil {
		slog.Warn("case record not found", slog.String("caseID", caseID), slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "case record not found"})
		return record, false
	}

	if record.Psychologist != token.Subject && !token.IsAdmin {
		slog.Warn("unauthorized access to case record", slog.String("caseID", caseID), slog.String("subject", token.Subject))
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to access this case record"})
		return record, false
	}
	return record, true
}

func (h *HttpEndpoints) createCaseRecord(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	var req types.Details
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req = casedata.NormalizeThreeSlots(req)

	// nothing is persisted for an invalid record
	if errs := validation.ValidateAll(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       validation.AggregateMessage(errs),
			"fieldErrors": errs,
		})
		return
	}

	req.Psychologist = token.Subject
	req.ScoringSystem = false
	req.ReviewMechanism = nil

	record, err := h.caseDBConn.CreateCaseRecord(token.InstanceID, req)
	if err != nil {
		slog.Error("failed to create case record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create case record"})
		return
	}

	slog.Info("case record created", slog.String("caseID", record.ID.Hex()), slog.String("subject", token.Subject), slog.String("instanceID", token.InstanceID))
	c.JSON(http.StatusCreated, gin.H{"caseRecord": record})
}

func (h *HttpEndpoints) getCaseRecords(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse paginated query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := query.Filter
	if filter == nil {
		filter = bson.M{}
	}
	// non-admins only see their own case records
	if !token.IsAdmin {
		filter["psychologist"] = token.Subject
	}

	sort := query.Sort
	if len(sort) == 0 {
		sort = bson.M{"createdAt": -1}
	}

	records, paginationInfo, err := h.caseDBConn.GetCaseRecords(token.InstanceID, filter, sort, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to fetch case records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch case records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"caseRecords": records,
		"pagination":  paginationInfo,
	})
}

func (h *HttpEndpoints) getCaseRecord(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	// pad the three-slot lists so edit forms are fully pre-populated
	record = casedata.NormalizeThreeSlots(record)

	c.JSON(http.StatusOK, gin.H{"caseRecord": record})
}

func (h *HttpEndpoints) updateCaseRecord(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	existing, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	var req types.Details
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req = casedata.NormalizeThreeSlots(req)

	if errs := validation.ValidateAll(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       validation.AggregateMessage(errs),
			"fieldErrors": errs,
		})
		return
	}

	// section edits never touch the review or scoring state
	req.ReviewMechanism = existing.ReviewMechanism
	req.ScoringSystem = existing.ScoringSystem

	record, err := h.caseDBConn.ReplaceCaseRecord(token.InstanceID, existing.ID.Hex(), req)
	if err != nil {
		slog.Error("failed to update case record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update case record"})
		return
	}

	slog.Info("case record updated", slog.String("caseID", record.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusOK, gin.H{"caseRecord": record})
}

func (h *HttpEndpoints) deleteCaseRecord(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	if err := h.caseDBConn.DeleteCaseRecord(token.InstanceID, record.ID.Hex()); err != nil {
		slog.Error("failed to delete case record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete case record"})
		return
	}

	slog.Info("case record deleted", slog.String("caseID", record.ID.Hex()), slog.String("subject", token.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "case record deleted"})
}

func (h *HttpEndpoints) printCaseRecord(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	record, ok := h.getCaseRecordWithAccessCheck(c, token)
	if !ok {
		return
	}

	html, err := printtemplates.RenderCaseRecordHTML(&record)
	if err != nil {
		slog.Error("failed to render case record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render case record"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *HttpEndpoints) exportCaseRecords(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	format := c.DefaultQuery("format", caseExporter.FormatCSV)

	filename := fmt.Sprintf("case-records_%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	switch format {
	case caseExporter.FormatCSV:
		c.Header("Content-Type", "text/csv")
	case caseExporter.FormatJSON:
		c.Header("Content-Type", "application/json")
	}

	exporter, err := caseExporter.NewCaseRecordExporter(c.Writer, format)
	if err != nil {
		slog.Error("failed to init exporter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.caseDBConn.FindAllCaseRecords(token.InstanceID, func(record types.Details) error {
		if !token.IsAdmin && record.Psychologist != token.Subject {
			return nil
		}
		return exporter.WriteRecord(record)
	})
	if err != nil {
		slog.Error("failed to export case records", slog.String("error", err.Error()))
		return
	}

	if err := exporter.Finish(); err != nil {
		slog.Error("failed to finish export", slog.String("error", err.Error()))
	}
}

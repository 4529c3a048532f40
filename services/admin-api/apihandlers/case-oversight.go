package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers"
	mw "github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers/middlewares"
	jwthandling "github.com/Mentoons-github/Mentoons-website-sub002/pkg/jwt-handling"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *HttpEndpoints) AddCaseOversightAPI(rg *gin.RouterGroup) {
	oversightGroup := rg.Group("/case-oversight")
	oversightGroup.Use(mw.GetAndValidatePortalUserJWT(h.tokenSignKey, h.allowedInstanceIDs, h.portalUserDBConn))
	oversightGroup.Use(mw.IsAdminUser())
	{
		oversightGroup.GET("/case-records", h.getAllCaseRecords)
		oversightGroup.GET("/stats", h.getCaseStats)
	}
}

// AddServiceAPI exposes read-only endpoints for other services, guarded by
// API key instead of a user JWT.
func (h *HttpEndpoints) AddServiceAPI(rg *gin.RouterGroup) {
	serviceGroup := rg.Group("/service")
	serviceGroup.Use(mw.HasValidAPIKey(h.apiKeys))
	{
		serviceGroup.GET("/:instanceID/case-record-count", h.getCaseRecordCountForService)
	}
}

// getAllCaseRecords lists case records across all psychologists of the
// instance; supports the same paginated query as the portal listing.
func (h *HttpEndpoints) getAllCaseRecords(c *gin.Context) {
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
	if psychologist := c.Query("psychologist"); psychologist != "" {
		filter["psychologist"] = psychologist
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

func (h *HttpEndpoints) getCaseStats(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.PortalUserClaims)

	total, err := h.caseDBConn.GetCaseRecordsCount(token.InstanceID, bson.M{})
	if err != nil {
		slog.Error("failed to count case records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count case records"})
		return
	}

	withScoring, err := h.caseDBConn.GetCaseRecordsCount(token.InstanceID, bson.M{"scoringSystem": true})
	if err != nil {
		slog.Error("failed to count case records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count case records"})
		return
	}

	withReview, err := h.caseDBConn.GetCaseRecordsCount(token.InstanceID, bson.M{"reviewMechanism": bson.M{"$ne": nil}})
	if err != nil {
		slog.Error("failed to count case records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count case records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"withScoring": withScoring,
		"withReview":  withReview,
	})
}

func (h *HttpEndpoints) getCaseRecordCountForService(c *gin.Context) {
	instanceID := c.Param("instanceID")

	if !utils.IsURLSafe(instanceID) || !utils.ContainsString(h.allowedInstanceIDs, instanceID) {
		slog.Warn("instanceID not allowed", slog.String("instanceID", instanceID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
		return
	}

	count, err := h.caseDBConn.GetCaseRecordsCount(instanceID, bson.M{})
	if err != nil {
		slog.Error("failed to count case records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count case records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

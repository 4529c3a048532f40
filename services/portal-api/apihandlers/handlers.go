package apihandlers

import (
	"net/http"
	"time"

	caseDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/case"
	portaluserDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/portal-user"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	caseDBConn         *caseDB.CaseDBService
	portalUserDBConn   *portaluserDB.PortalUserDBService
	tokenSignKey       string
	tokenExpiresIn     time.Duration
	allowedInstanceIDs []string
	filestorePath      string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	caseDBConn *caseDB.CaseDBService,
	portalUserDBConn *portaluserDB.PortalUserDBService,
	allowedInstanceIDs []string,
	filestorePath string,
) *HttpEndpoints {
	return &HttpEndpoints{
		caseDBConn:         caseDBConn,
		portalUserDBConn:   portalUserDBConn,
		tokenSignKey:       tokenSignKey,
		tokenExpiresIn:     tokenExpiresIn,
		allowedInstanceIDs: allowedInstanceIDs,
		filestorePath:      filestorePath,
	}
}

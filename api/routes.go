package api

import (
	"net/http"
	"time"

	"github.com/sixtosix/sixtosix-backend/usecases"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	router := r.Use(timeoutMiddleware(conf.DefaultTimeout))

	router.POST("/anamnesis/patients/:patient_id", handleCreateAnamnesis(uc))
	router.GET("/anamnesis/patients/:patient_id", handleGetAnamnesisForPatient(uc))

	router.POST("/anamnesis/:anamnesis_id/versions", handleAddAnamnesisVersion(uc))
	router.GET("/anamnesis/:anamnesis_id/versions", handleListAnamnesisVersions(uc))
	router.GET("/anamnesis/:anamnesis_id/versions/latest", handleGetLatestAnamnesisVersion(uc))
	router.GET("/anamnesis/:anamnesis_id/versions/:version_number", handleGetAnamnesisVersion(uc))
	router.PUT("/anamnesis/versions/:version_id/finalize", handleFinalizeAnamnesisVersion(uc))

	router.POST("/audit-logs", handleRecordAuditLog(uc))
	router.GET("/audit-logs", handleListAuditLogs(uc))
}

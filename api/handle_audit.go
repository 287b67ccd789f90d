package api

import (
	"net/http"

	"github.com/sixtosix/sixtosix-backend/dto"
	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/pure_utils"
	"github.com/sixtosix/sixtosix-backend/usecases"

	"github.com/gin-gonic/gin"
)

func handleRecordAuditLog(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateAuditLogBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentBindingError(c, err)
			return
		}

		usecase := uc.NewAuditLogUsecase()
		entry, err := usecase.RecordAction(ctx, models.CreateAuditLogAttributes{
			Entity:      body.Entity,
			EntityId:    body.EntityId,
			Action:      models.AuditAction(body.Action),
			PerformedBy: body.PerformedBy,
			Details:     body.Details,
		})
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"audit_log": dto.AdaptAuditLogDto(entry)})
	}
}

func handleListAuditLogs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input dto.AuditLogFiltersInput
		if err := c.ShouldBindQuery(&input); err != nil {
			presentBindingError(c, err)
			return
		}

		usecase := uc.NewAuditLogUsecase()
		entries, err := usecase.ListAuditLogs(ctx, dto.AdaptAuditLogFilters(input))
		if err != nil {
			presentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"audit_logs": pure_utils.Map(entries, dto.AdaptAuditLogDto),
		})
	}
}

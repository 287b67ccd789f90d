package api

import (
	"net/http"

	"github.com/sixtosix/sixtosix-backend/dto"
	"github.com/sixtosix/sixtosix-backend/models"
	"github.com/sixtosix/sixtosix-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// presentError translates usecase errors into HTTP responses. Checks go most
// specific first so that wrapped sentinels land on the right error code.
func presentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrAnamnesisAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.AnamnesisAlreadyExistsCode,
		})
	case errors.Is(err, models.ErrVersionAlreadyFinalized):
		ctx.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.VersionAlreadyFinalizedCode,
		})
	case errors.Is(err, models.ErrVersionNumberConflict):
		ctx.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.VersionNumberConflictCode,
		})
	case errors.Is(err, models.ConflictError):
		ctx.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.ConflictCode,
		})
	case errors.Is(err, models.BadParameterError):
		ctx.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.BadParameterCode,
		})
	case errors.Is(err, models.NotFoundError):
		ctx.JSON(http.StatusNotFound, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.NotFoundCode,
		})
	default:
		utils.LoggerFromContext(ctx.Request.Context()).
			ErrorContext(ctx.Request.Context(), "unexpected error handling request",
				"method", ctx.Request.Method,
				"url", ctx.Request.URL.String(),
				"error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.APIErrorResponse{
			Message:   "an unexpected error occurred",
			ErrorCode: dto.InternalErrorCode,
		})
	}
}

func presentBindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.APIErrorResponse{
		Message:   err.Error(),
		ErrorCode: dto.BadParameterCode,
	})
}

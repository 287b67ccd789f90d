package utils

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sixtosix/sixtosix-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		// better a default logger than a nil pointer panic deep in a handler
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		newContext := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}

func ValidateUuid(uuidParam string) error {
	_, err := uuid.Parse(uuidParam)
	if err != nil {
		err = fmt.Errorf("'%s' is not a valid UUID: %w", uuidParam, models.BadParameterError)
	}
	return err
}

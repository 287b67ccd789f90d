package cmd

import (
	"context"
	"fmt"

	"github.com/sixtosix/sixtosix-backend/infra"
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/utils"
)

func RunMigrations() error {
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "sixtosix"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := repositories.RunMigrations(pgConfig, logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}
	return nil
}

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sixtosix/sixtosix-backend/api"
	"github.com/sixtosix/sixtosix-backend/infra"
	"github.com/sixtosix/sixtosix-backend/repositories"
	"github.com/sixtosix/sixtosix-backend/usecases"
	"github.com/sixtosix/sixtosix-backend/utils"

	"github.com/cockroachdb/errors"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "sixtosix-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "sixtosix"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig)
	if err != nil {
		return errors.Wrap(err, "could not create connection pool")
	}
	defer pool.Close()

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}

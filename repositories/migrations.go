package repositories

import (
	"database/sql"
	"embed"
	"log/slog"

	"github.com/sixtosix/sixtosix-backend/infra"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(pgConfig infra.PgConfig, logger *slog.Logger) error {
	db, err := sql.Open("pgx", pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	logger.Info("migrations starting to set up the database")
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}
	return nil
}

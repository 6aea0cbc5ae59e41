package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shenikar/emergency_dispatch/migrations"
	"github.com/sirupsen/logrus"
)

// MigrationURL переводит postgres:// DSN в схему драйвера pgx/v5 для migrate
func MigrationURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "pgx5://") {
		return databaseURL
	}
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}

// Migrate применяет встроенные миграции. Повторный запуск ничего не меняет.
func Migrate(databaseURL string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrationURL(databaseURL))
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.WithFields(logrus.Fields{"source_error": srcErr, "db_error": dbErr}).Warn("Failed to close migrate instance")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/mytheresa/go-shop/config"
	"github.com/mytheresa/go-shop/database"
	"github.com/mytheresa/go-shop/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var embedded embed.FS

// Source returns the embedded SQL migrations.
func Source() (fs.FS, error) {
	return fs.Sub(embedded, "sql")
}

// Up brings the schema to the latest version. Postgres runs the versioned SQL
// migrations on a dedicated connection; sqlite is migrated from the model tags.
func Up(cfg config.DBConfig, db *gorm.DB, log *zap.Logger) error {
	switch cfg.Type {
	case "postgres":
		conn, err := sql.Open("postgres", database.PostgresDSN(cfg))
		if err != nil {
			return fmt.Errorf("open migration connection: %w", err)
		}
		defer conn.Close()
		return RunSQL(conn, log)
	case "sqlite":
		return AutoMigrate(db, log)
	default:
		return fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// RunSQL applies the embedded migrations through golang-migrate.
func RunSQL(conn *sql.DB, log *zap.Logger) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := Source()
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}

	return reportVersion(log, migrator)
}

type versioner interface {
	Version() (uint, bool, error)
}

// reportVersion logs the schema version left by Up.
func reportVersion(log *zap.Logger, m versioner) error {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info("migrations applied", zap.String("version", "none"))
	case err != nil:
		return fmt.Errorf("read migration version: %w", err)
	default:
		log.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	return nil
}

// AutoMigrate creates the tables, indexes and foreign keys declared on the models.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("schema migrated from models")
	return nil
}

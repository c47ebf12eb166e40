// Package migrations embeds the goose schema migrations for every storage backend.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/julianstephens/habitual/internal/logger"
)

const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// goose keeps its dialect and base filesystem in package state
var mu sync.Mutex

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

func setup(dialect string) (string, error) {
	dir, err := dirFor(dialect)
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("set dialect: %w", err)
	}
	return dir, nil
}

// Up applies every pending migration for dialect.
func Up(db *sql.DB, dialect string) error {
	mu.Lock()
	defer mu.Unlock()

	dir, err := setup(dialect)
	if err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Versions returns the schema version recorded in db and the latest embedded version.
func Versions(db *sql.DB, dialect string) (current, latest int64, err error) {
	mu.Lock()
	defer mu.Unlock()

	dir, err := setup(dialect)
	if err != nil {
		return 0, 0, err
	}
	current, err = goose.GetDBVersion(db)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get current version: %w", err)
	}
	all, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read migrations: %w", err)
	}
	last, err := all.Last()
	if err != nil {
		return current, 0, nil
	}
	return current, last.Version, nil
}

// Validate checks that db was migrated by this version of the application.
func Validate(db *sql.DB, dialect string) error {
	current, latest, err := Versions(db, dialect)
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade the application", current, latest)
	}
	if current < latest {
		return fmt.Errorf("database schema version (%d) is behind (%d), run 'habitual init' to migrate", current, latest)
	}
	return nil
}

type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logger.Debug(fmt.Sprintf(format, v...), "component", "migrations")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Error(fmt.Sprintf(format, v...), "component", "migrations")
}

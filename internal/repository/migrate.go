package repository

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var migrationDirs = map[Dialect]string{
	DialectPostgres: "migrations/postgres",
	DialectSQLite:   "migrations/sqlite",
}

// goose keeps dialect and filesystem in package state
var gooseMu sync.Mutex

func RunMigrations(db *sql.DB, dialect Dialect) error {
	dir, ok := migrationDirs[dialect]
	if !ok {
		return errors.New("no migrations for dialect " + string(dialect))
	}
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return errors.New("getting migrations directory error: " + err.Error())
	}
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err = goose.SetDialect(string(dialect)); err != nil {
		return errors.New("setting migrations dialect error: " + err.Error())
	}
	goose.SetBaseFS(sub)
	if err = goose.Up(db, "."); err != nil {
		return errors.New("running migrations error: " + err.Error())
	}
	slog.Info("migrations applied", slog.String("dialect", string(dialect)))
	return nil
}

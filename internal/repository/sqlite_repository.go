package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/entity"
	_ "modernc.org/sqlite"
)

type SQLiteIntakeRepository struct {
	db *sqlx.DB
}

// NewSQLiteIntakeRepo opens (creating if needed) the database file at path
// and applies migrations. ":memory:" gives a private in-memory database.
func NewSQLiteIntakeRepo(path string) (*SQLiteIntakeRepository, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.New("creating sqlite data directory error: " + err.Error())
		}
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, errors.New("opening sqlite database error: " + err.Error())
	}
	// single writer; also keeps an in-memory database on one connection
	db.SetMaxOpenConns(1)
	if err = RunMigrations(db.DB, DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}
	cleanup.Register("closing sqlite database", db.Close)
	return &SQLiteIntakeRepository{db: db}, nil
}

func (r *SQLiteIntakeRepository) Insert(ctx context.Context, userID string, amount int, timestamp string) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO water_intake (user_id, intake_ml, logged_at) VALUES (?, ?, ?);`,
		userID,
		amount,
		timestamp,
	)
	if err != nil {
		return errorvalues.NewStorageError("inserting intake", err)
	}
	return nil
}

func (r *SQLiteIntakeRepository) ListByUser(ctx context.Context, userID string) ([]entity.IntakeEvent, error) {
	events := make([]entity.IntakeEvent, 0, 8)
	err := r.db.SelectContext(
		ctx,
		&events,
		`SELECT intake_ml, logged_at FROM water_intake WHERE user_id = ? ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, errorvalues.NewStorageError("listing intakes", err)
	}
	return events, nil
}

func (r *SQLiteIntakeRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM water_intake WHERE user_id = ?;`, userID)
	if err != nil {
		return errorvalues.NewStorageError("deleting intakes", err)
	}
	return nil
}

func (r *SQLiteIntakeRepository) Close() error {
	return r.db.Close()
}

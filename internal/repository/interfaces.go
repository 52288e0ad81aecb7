package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/hydration/internal/repository IntakeRepositoryI

type IntakeRepositoryI interface {
	// Appends an intake event for user. Timestamp is stored as given
	Insert(ctx context.Context, userID string, amount int, timestamp string) error
	// Lists all events of user in insertion order. Empty slice if user has no history
	ListByUser(ctx context.Context, userID string) ([]entity.IntakeEvent, error)
	// Removes every event of user. Deleting an unknown user is not an error
	DeleteByUser(ctx context.Context, userID string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

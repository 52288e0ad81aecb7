package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/entity"
)

type IntakeRepository struct {
	conn PgConnection
}

// NewIntakeRepo opens a pool, applies migrations and registers the pool for
// closing on shutdown.
func NewIntakeRepo(ctx context.Context, cfg DBConfig) (*IntakeRepository, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for intakeRepo error: " + err.Error())
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for intakeRepo: " + err.Error())
	}
	db := stdlib.OpenDBFromPool(pool)
	err = RunMigrations(db, DialectPostgres)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}
	cleanup.Register("closing pgxpool", func() error {
		pool.Close()
		return nil
	})
	return &IntakeRepository{
		conn: pool,
	}, nil
}

func NewIntakeRepoWithConn(conn PgConnection) (*IntakeRepository, error) {
	err := conn.Ping(context.Background())
	if err != nil {
		return nil, errors.New("error while pinging connection for intakeRepo: " + err.Error())
	}
	return &IntakeRepository{
		conn: conn,
	}, nil
}

func (intakeRepo *IntakeRepository) Insert(ctx context.Context, userID string, amount int, timestamp string) error {
	_, err := intakeRepo.conn.Exec(
		ctx,
		`INSERT INTO water_intake (user_id, intake_ml, logged_at) VALUES ($1, $2, $3);`,
		userID,
		amount,
		timestamp,
	)
	if err != nil {
		return errorvalues.NewStorageError("inserting intake", err)
	}
	return nil
}

func (intakeRepo *IntakeRepository) ListByUser(ctx context.Context, userID string) ([]entity.IntakeEvent, error) {
	rows, err := intakeRepo.conn.Query(
		ctx,
		`SELECT intake_ml, logged_at FROM water_intake WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, errorvalues.NewStorageError("listing intakes", err)
	}
	defer rows.Close()
	result := make([]entity.IntakeEvent, 0, 8)
	for rows.Next() {
		event := entity.IntakeEvent{}
		err = rows.Scan(&event.Amount, &event.Timestamp)
		if err != nil {
			return nil, errorvalues.NewStorageError("intake row parsing", err)
		}
		result = append(result, event)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.NewStorageError("unexpected intake rows", err)
	}
	return result, nil
}

func (intakeRepo *IntakeRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := intakeRepo.conn.Exec(
		ctx,
		`DELETE FROM water_intake WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return errorvalues.NewStorageError("deleting intakes", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type StorageCfg struct {
	Driver     string
	Postgres   PGCfg
	SQLitePath string
}

// NewIntakeRepository builds the event store selected by cfg.Driver.
func NewIntakeRepository(ctx context.Context, cfg StorageCfg) (IntakeRepositoryI, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		repo, err := NewIntakeRepo(ctx, &cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "", DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "./data/hydration.db"
		}
		repo, err := NewSQLiteIntakeRepo(path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q: must be one of [%s %s]", cfg.Driver, DriverPostgres, DriverSQLite)
}

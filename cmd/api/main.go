package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/hydration/internal/api"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/config"
	"github.com/limbo/hydration/pkg/logger"
	"github.com/limbo/hydration/pkg/timestamp"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Init(cfg.GetStringOr("APP_ENV", "production") == "development", cfg.GetString("SENTRY_DSN"))

	strategy, err := timestamp.ParseStrategy(cfg.GetString("TIMESTAMP_STRATEGY"))
	if err != nil {
		log.Fatal("config error: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	repo, err := repository.NewIntakeRepository(initCtx, repository.StorageCfg{
		Driver: cfg.GetStringOr("STORAGE_DRIVER", repository.DriverSQLite),
		Postgres: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		},
		SQLitePath: cfg.GetString("SQLITE_DB_PATH"),
	})
	cancel()
	if err != nil {
		log.Fatal("storage init error: ", err)
	}

	serv := api.New(&api.ServicesList{
		IntakeService: service.NewIntakeService(repo, timestamp.NewParser(strategy)),
		DefaultGoal:   cfg.GetInt("DAILY_GOAL_ML", 7000),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err := cleanup.CleanUp(); err != nil {
		slog.Error("cleanup error", slog.String("error", err.Error()))
	}
}

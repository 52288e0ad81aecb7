package service

import (
	"context"
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/hydration/internal/service IntakeServiceI

type LogIntakeRequest struct {
	UserID string `validate:"required,user_key,max=100"`
	Amount int    `validate:"gt=0,max=1000"`
}

type IntakeServiceI interface {
	// Validates request, stores the intake stamped with current time and classifies the amount
	LogIntake(ctx context.Context, req *LogIntakeRequest) (*entity.Feedback, error)
	// Lists user's raw history with parsed timestamps. Fails on the first malformed timestamp
	History(ctx context.Context, userID string) ([]entity.HistoryEntry, error)
	// Aggregates user's history for the day of date. Zero date means today.
	// Returns errorvalues.ErrEmptyHistory when there is nothing to aggregate
	Summary(ctx context.Context, userID string, goal int, date time.Time) (*entity.Summary, error)
	DeleteHistory(ctx context.Context, userID string) error
}

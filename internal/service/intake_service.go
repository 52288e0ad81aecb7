package service

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/hydration/internal/analytics"
	"github.com/limbo/hydration/internal/feedback"
	"github.com/limbo/hydration/internal/observability"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/timestamp"
)

type IntakeService struct {
	repo       repository.IntakeRepositoryI
	parser     timestamp.Parser
	aggregator *analytics.Aggregator
	now        func() time.Time
}

func NewIntakeService(intakeRepo repository.IntakeRepositoryI, parser timestamp.Parser) *IntakeService {
	return NewIntakeServiceWithClock(intakeRepo, parser, time.Now)
}

func NewIntakeServiceWithClock(intakeRepo repository.IntakeRepositoryI, parser timestamp.Parser, now func() time.Time) *IntakeService {
	if intakeRepo == nil {
		log.Fatal("provided nil intakeRepo")
	}
	return &IntakeService{
		repo:       intakeRepo,
		parser:     parser,
		aggregator: analytics.New(parser),
		now:        now,
	}
}

func (is *IntakeService) LogIntake(ctx context.Context, req *LogIntakeRequest) (*entity.Feedback, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	err := is.repo.Insert(ctx, req.UserID, req.Amount, timestamp.Format(is.now()))
	if err != nil {
		return nil, err
	}
	fb := feedback.Classify(req.Amount)
	observability.RecordIntake(req.Amount, fb.Category)
	return &fb, nil
}

func (is *IntakeService) History(ctx context.Context, userID string) ([]entity.HistoryEntry, error) {
	if err := validateUserKey(userID); err != nil {
		return nil, err
	}
	events, err := is.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history := make([]entity.HistoryEntry, 0, len(events))
	for _, e := range events {
		loggedAt, err := is.parser.Parse(e.Timestamp)
		if err != nil {
			return nil, err
		}
		history = append(history, entity.HistoryEntry{
			LoggedAt: loggedAt,
			Raw:      e.Timestamp,
			Amount:   e.Amount,
		})
	}
	return history, nil
}

func (is *IntakeService) Summary(ctx context.Context, userID string, goal int, date time.Time) (*entity.Summary, error) {
	if err := validateUserKey(userID); err != nil {
		return nil, err
	}
	events, err := is.repo.ListByUser(ctx, userID)
	if err != nil {
		observability.RecordAggregationFailure(err)
		return nil, err
	}
	if date.IsZero() {
		date = is.now()
	}
	summary, err := is.aggregator.Aggregate(events, goal, date)
	if err != nil {
		observability.RecordAggregationFailure(err)
		slog.Debug("summary not computed", slog.String("uid", userID), slog.String("reason", observability.FailureReason(err)))
		return nil, err
	}
	return summary, nil
}

func (is *IntakeService) DeleteHistory(ctx context.Context, userID string) error {
	if err := validateUserKey(userID); err != nil {
		return err
	}
	return is.repo.DeleteByUser(ctx, userID)
}

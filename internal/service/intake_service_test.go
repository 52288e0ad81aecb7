package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository/mocks"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = "user_1"
	now    = time.Date(2025, time.January, 2, 18, 30, 0, 0, time.UTC)
	clock  = func() time.Time { return now }
)

func TestLogIntake(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	intakeRepo := mocks.NewMockIntakeRepositoryI(ctrl)
	serv := service.NewIntakeServiceWithClock(intakeRepo, timestamp.Default, clock)
	storageErr := errorvalues.NewStorageError("inserting intake", errors.New("db error"))
	testCases := []struct {
		Desc         string
		Error        error
		Request      service.LogIntakeRequest
		Category     entity.FeedbackCategory
		MockPrepFunc func()
	}{
		{
			Desc:     "success good",
			Request:  service.LogIntakeRequest{UserID: userID, Amount: 500},
			Category: entity.FeedbackGood,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().Insert(gomock.Any(), userID, 500, "02-01-25 18:30:00").Return(nil)
			},
		},
		{
			Desc:     "success needs more",
			Request:  service.LogIntakeRequest{UserID: userID, Amount: 50},
			Category: entity.FeedbackNeedsMore,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().Insert(gomock.Any(), userID, 50, "02-01-25 18:30:00").Return(nil)
			},
		},
		{
			Desc:         "zero amount rejected",
			Error:        errorvalues.ErrInvalidRequest,
			Request:      service.LogIntakeRequest{UserID: userID, Amount: 0},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "amount above limit rejected",
			Error:        errorvalues.ErrInvalidRequest,
			Request:      service.LogIntakeRequest{UserID: userID, Amount: 1001},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "empty user rejected",
			Error:        errorvalues.ErrInvalidRequest,
			Request:      service.LogIntakeRequest{UserID: "", Amount: 300},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "user key with spaces rejected",
			Error:        errorvalues.ErrInvalidRequest,
			Request:      service.LogIntakeRequest{UserID: "user 1", Amount: 300},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "storage error surfaced unchanged",
			Error:   storageErr,
			Request: service.LogIntakeRequest{UserID: userID, Amount: 300},
			MockPrepFunc: func() {
				intakeRepo.EXPECT().Insert(gomock.Any(), userID, 300, "02-01-25 18:30:00").Return(storageErr)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			fb, err := serv.LogIntake(ctx, &tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, fb)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Category, fb.Category)
			assert.NotEmpty(t, fb.Text)
		})
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	intakeRepo := mocks.NewMockIntakeRepositoryI(ctrl)
	serv := service.NewIntakeServiceWithClock(intakeRepo, timestamp.Default, clock)
	events := []entity.IntakeEvent{
		{Amount: 300, Timestamp: "01-01-25 08:00:00"},
		{Amount: 500, Timestamp: "01-01-25 12:00:00"},
		{Amount: 200, Timestamp: "02-01-25"},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Goal         int
		Date         time.Time
		TodayTotal   int
		Streak       int
		MockPrepFunc func()
	}{
		{
			Desc:       "today by clock",
			Goal:       1000,
			TodayTotal: 200,
			Streak:     2,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(events, nil)
			},
		},
		{
			Desc:       "explicit reference date",
			Goal:       1000,
			Date:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			TodayTotal: 800,
			Streak:     2,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(events, nil)
			},
		},
		{
			Desc:  "empty history",
			Error: errorvalues.ErrEmptyHistory,
			Goal:  1000,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]entity.IntakeEvent{}, nil)
			},
		},
		{
			Desc:  "invalid goal",
			Error: errorvalues.ErrInvalidGoal,
			Goal:  0,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(events, nil)
			},
		},
		{
			Desc:  "malformed stored timestamp",
			Error: errorvalues.ErrMalformedTimestamp,
			Goal:  1000,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(append([]entity.IntakeEvent{
					{Amount: 100, Timestamp: "2025/01/01"},
				}, events...), nil)
			},
		},
		{
			Desc:  "storage error",
			Error: errorvalues.ErrStorage,
			Goal:  1000,
			MockPrepFunc: func() {
				intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).
					Return(nil, errorvalues.NewStorageError("listing intakes", errors.New("db error")))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			summary, err := serv.Summary(ctx, userID, tc.Goal, tc.Date)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, summary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.TodayTotal, summary.TodayTotal)
			assert.Equal(t, tc.Streak, summary.Streak)
		})
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	intakeRepo := mocks.NewMockIntakeRepositoryI(ctrl)
	serv := service.NewIntakeServiceWithClock(intakeRepo, timestamp.Default, clock)
	ctx := context.Background()

	t.Run("normalized", func(t *testing.T) {
		intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]entity.IntakeEvent{
			{Amount: 300, Timestamp: "01-01-25 08:00:00"},
			{Amount: 200, Timestamp: "02-01-25"},
		}, nil)
		history, err := serv.History(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []entity.HistoryEntry{
			{LoggedAt: time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC), Raw: "01-01-25 08:00:00", Amount: 300},
			{LoggedAt: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), Raw: "02-01-25", Amount: 200},
		}, history)
	})
	t.Run("malformed", func(t *testing.T) {
		intakeRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]entity.IntakeEvent{
			{Amount: 300, Timestamp: "yesterday"},
		}, nil)
		history, err := serv.History(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrMalformedTimestamp)
		assert.Nil(t, history)
	})
	t.Run("invalid user", func(t *testing.T) {
		_, err := serv.History(ctx, "_hidden")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
}

func TestDeleteHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	intakeRepo := mocks.NewMockIntakeRepositoryI(ctrl)
	serv := service.NewIntakeServiceWithClock(intakeRepo, timestamp.Default, clock)
	ctx := context.Background()

	intakeRepo.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil).Times(2)
	assert.NoError(t, serv.DeleteHistory(ctx, userID))
	assert.NoError(t, serv.DeleteHistory(ctx, userID))

	storageErr := errorvalues.NewStorageError("deleting intakes", errors.New("db error"))
	intakeRepo.EXPECT().DeleteByUser(gomock.Any(), userID).Return(storageErr)
	assert.Equal(t, storageErr, serv.DeleteHistory(ctx, userID))

	assert.ErrorIs(t, serv.DeleteHistory(ctx, ""), errorvalues.ErrInvalidRequest)
}

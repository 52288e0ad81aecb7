// Package analytics derives daily totals, goal progress and the current streak
// from a user's raw intake events.
package analytics

import (
	"sort"
	"time"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/timestamp"
)

const (
	AchievementStreak = 5
	almostThreshold   = 0.75
	day               = 24 * time.Hour
)

var progressMessages = map[entity.ProgressStatus]string{
	entity.ProgressReached: "You've reached your hydration goal!",
	entity.ProgressAlmost:  "Almost there, keep it up!",
	entity.ProgressBehind:  "Drink more water to reach your goal.",
}

type Aggregator struct {
	parser timestamp.Parser
}

func New(parser timestamp.Parser) *Aggregator {
	return &Aggregator{parser: parser}
}

var defaultAggregator = New(timestamp.Default)

func Aggregate(events []entity.IntakeEvent, goal int, referenceDate time.Time) (*entity.Summary, error) {
	return defaultAggregator.Aggregate(events, goal, referenceDate)
}

// Aggregate computes the summary for referenceDate. Any event with a
// malformed timestamp fails the whole call. The result does not depend on
// the order of events.
func (a *Aggregator) Aggregate(events []entity.IntakeEvent, goal int, referenceDate time.Time) (*entity.Summary, error) {
	if goal <= 0 {
		return nil, errorvalues.ErrInvalidGoal
	}
	if len(events) == 0 {
		return nil, errorvalues.ErrEmptyHistory
	}
	totals, err := a.DailyTotals(events)
	if err != nil {
		return nil, err
	}
	ref := timestamp.DateOf(referenceDate)
	today := 0
	dates := make([]time.Time, 0, len(totals))
	for _, t := range totals {
		if t.Date.Equal(ref) {
			today = t.Amount
		}
		dates = append(dates, t.Date)
	}
	streak := Streak(dates)
	return &entity.Summary{
		ReferenceDate: ref,
		TodayTotal:    today,
		Progress:      Progress(today, goal),
		Streak:        streak,
		Achievement:   streak >= AchievementStreak,
		DailyTotals:   totals,
	}, nil
}

// DailyTotals sums amounts per calendar date, ascending by date.
func (a *Aggregator) DailyTotals(events []entity.IntakeEvent) ([]entity.DailyTotal, error) {
	sums := make(map[time.Time]int)
	for _, e := range events {
		t, err := a.parser.Parse(e.Timestamp)
		if err != nil {
			return nil, err
		}
		sums[timestamp.DateOf(t)] += e.Amount
	}
	totals := make([]entity.DailyTotal, 0, len(sums))
	for d, amount := range sums {
		totals = append(totals, entity.DailyTotal{Date: d, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals, nil
}

// Streak returns the length of the run of consecutive days that ends at the
// latest date. Dates must be calendar dates (see timestamp.DateOf); duplicates
// are ignored. Zero for no dates.
func Streak(dates []time.Time) int {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})
	streak := 0
	var prev time.Time
	for i, d := range sorted {
		switch {
		case i == 0:
			streak = 1
		case d.Equal(prev):
			continue
		case d.Sub(prev) == day:
			streak++
		default:
			streak = 1
		}
		prev = d
	}
	return streak
}

// Progress assumes goal > 0.
func Progress(todayTotal, goal int) entity.GoalProgress {
	completion := float64(todayTotal) / float64(goal)
	if completion > 1 {
		completion = 1
	}
	if completion < 0 {
		completion = 0
	}
	status := entity.ProgressBehind
	switch {
	case completion == 1:
		status = entity.ProgressReached
	case completion >= almostThreshold:
		status = entity.ProgressAlmost
	}
	return entity.GoalProgress{
		TodayTotal: todayTotal,
		Goal:       goal,
		Completion: completion,
		Percent:    todayTotal * 100 / goal,
		Status:     status,
		Message:    progressMessages[status],
	}
}

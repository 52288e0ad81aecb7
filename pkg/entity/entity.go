package entity

import (
	"time"
)

// IntakeEvent is one logged reading as the store keeps it.
type IntakeEvent struct {
	Amount    int    `json:"amount" db:"intake_ml"`
	Timestamp string `json:"timestamp" db:"logged_at"`
}

type HistoryEntry struct {
	LoggedAt time.Time `json:"logged_at"`
	Raw      string    `json:"raw"`
	Amount   int       `json:"amount"`
}

type DailyTotal struct {
	Date   time.Time `json:"date"`
	Amount int       `json:"amount"`
}

type GoalProgress struct {
	TodayTotal int     `json:"today_total"`
	Goal       int     `json:"goal"`
	Completion float64 `json:"completion"`
	// Percent is not clamped, so it can exceed 100.
	Percent int            `json:"percent"`
	Status  ProgressStatus `json:"status"`
	Message string         `json:"message"`
}

type ProgressStatus string

const (
	ProgressReached ProgressStatus = "reached"
	ProgressAlmost  ProgressStatus = "almost"
	ProgressBehind  ProgressStatus = "behind"
)

type Summary struct {
	ReferenceDate time.Time    `json:"reference_date"`
	TodayTotal    int          `json:"today_total"`
	Progress      GoalProgress `json:"progress"`
	Streak        int          `json:"streak"`
	Achievement   bool         `json:"achievement"`
	DailyTotals   []DailyTotal `json:"daily_totals"`
}

type FeedbackCategory string

const (
	FeedbackGood      FeedbackCategory = "good"
	FeedbackNeedsMore FeedbackCategory = "needs_more"
	FeedbackNeutral   FeedbackCategory = "neutral"
)

// Feedback is the reaction to a single logged amount. Clients branch on
// Category; Text is for display only.
type Feedback struct {
	Category FeedbackCategory `json:"category"`
	Text     string           `json:"text"`
}

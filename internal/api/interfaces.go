package api

import "github.com/limbo/hydration/pkg/entity"

type LogIntakeRequest struct {
	Amount int `json:"amount"`
}

type LogIntakeResponse struct {
	UserID   string          `json:"uid"`
	Amount   int             `json:"amount"`
	Feedback entity.Feedback `json:"feedback"`
}

type GetHistoryResponse struct {
	UserID  string                `json:"uid"`
	History []entity.HistoryEntry `json:"history"`
}

// SummaryResponse carries either a summary or the no data marker.
type SummaryResponse struct {
	UserID  string          `json:"uid"`
	Goal    int             `json:"goal"`
	NoData  bool            `json:"no_data"`
	Summary *entity.Summary `json:"summary,omitempty"`
}

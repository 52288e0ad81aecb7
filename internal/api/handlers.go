package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/export"
	"github.com/limbo/hydration/pkg/httputil"
	"github.com/limbo/hydration/pkg/timestamp"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) LogIntake(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid := chi.URLParam(r, "uid")
	var req LogIntakeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log intake error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	fb, err := s.intakeService.LogIntake(ctx, &service.LogIntakeRequest{
		UserID: uid,
		Amount: req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidRequest):
			logger.Error("log intake error: invalid request", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid intake", err)
		default:
			logger.Error("log intake error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging intake", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, LogIntakeResponse{
		UserID:   uid,
		Amount:   req.Amount,
		Feedback: *fb,
	})
	logger.Info("intake logged", slog.Int("amount", req.Amount), slog.String("category", string(fb.Category)))
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid := chi.URLParam(r, "uid")
	history, ok := s.history(w, r, "get history")
	if !ok {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHistoryResponse{
		UserID:  uid,
		History: history,
	})
	logger.Info("history provided", slog.Int("entries", len(history)))
}

func (s *Server) ExportHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	history, ok := s.history(w, r, "export history")
	if !ok {
		return
	}
	err := httputil.WriteAttachment(w, "text/csv", export.FileName, func(out io.Writer) error {
		return export.WriteHistoryCSV(out, history)
	})
	if err != nil {
		logger.Error("export history error: rendering csv", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while exporting history", nil)
		return
	}
	logger.Info("history exported", slog.Int("entries", len(history)))
}

func (s *Server) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid := chi.URLParam(r, "uid")
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.intakeService.DeleteHistory(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidRequest):
			logger.Error("history deletion error: invalid user key")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user key", err)
		default:
			logger.Error("history deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting history", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("history deleted")
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid := chi.URLParam(r, "uid")
	goal := s.defaultGoal
	if raw := r.URL.Query().Get("goal"); raw != "" {
		var err error
		goal, err = strconv.Atoi(raw)
		if err != nil || goal < MinGoal || goal > MaxGoal {
			logger.Error("summary error: invalid goal", slog.String("goal", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest,
				"goal must be an integer between "+strconv.Itoa(MinGoal)+" and "+strconv.Itoa(MaxGoal), nil)
			return
		}
	}
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		var err error
		date, err = timestamp.ParseDate(raw)
		if err != nil {
			logger.Error("summary error: invalid date", slog.String("date", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be in DD-MM-YY format", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	summary, err := s.intakeService.Summary(ctx, uid, goal, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyHistory):
			httputil.WriteJSONResponse(w, http.StatusOK, SummaryResponse{
				UserID: uid,
				Goal:   goal,
				NoData: true,
			})
			logger.Info("summary provided: no data")
		case errors.Is(err, errorvalues.ErrInvalidRequest):
			logger.Error("summary error: invalid user key")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user key", err)
		case errors.Is(err, errorvalues.ErrInvalidGoal):
			logger.Error("summary error: invalid goal")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal", nil)
		case errors.Is(err, errorvalues.ErrMalformedTimestamp):
			logger.Error("summary error: malformed stored timestamp", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "stored history contains a malformed timestamp", err)
		default:
			logger.Error("summary error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing summary", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SummaryResponse{
		UserID:  uid,
		Goal:    goal,
		Summary: summary,
	})
	logger.Info("summary provided", slog.Int("today_total", summary.TodayTotal), slog.Int("streak", summary.Streak))
}

// history loads parsed history and writes the error response itself when it fails.
func (s *Server) history(w http.ResponseWriter, r *http.Request, op string) ([]entity.HistoryEntry, bool) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	history, err := s.intakeService.History(ctx, chi.URLParam(r, "uid"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidRequest):
			logger.Error(op + " error: invalid user key")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user key", err)
		case errors.Is(err, errorvalues.ErrMalformedTimestamp):
			logger.Error(op+" error: malformed stored timestamp", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "stored history contains a malformed timestamp", err)
		default:
			logger.Error(op+" error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading history", nil)
		}
		return nil, false
	}
	return history, true
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/hydration/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MinGoal = 1
	MaxGoal = 20000
)

type Server struct {
	mx            *chi.Mux
	intakeService service.IntakeServiceI
	defaultGoal   int
}

type ServicesList struct {
	IntakeService service.IntakeServiceI
	DefaultGoal   int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:            chi.NewMux(),
		intakeService: servicesOptions.IntakeService,
		defaultGoal:   servicesOptions.DefaultGoal,
	}
	if s.defaultGoal < MinGoal || s.defaultGoal > MaxGoal {
		slog.Warn("default goal out of range, using 7000", slog.Int("goal", s.defaultGoal))
		s.defaultGoal = 7000
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1/users/{uid}", func(r chi.Router) {
		r.Use(s.UserKeyMiddleware)
		r.Route("/intakes", func(r chi.Router) {
			r.Post("/", s.LogIntake)
			r.Get("/", s.GetHistory)
			r.Delete("/", s.DeleteHistory)
			r.Get("/export", s.ExportHistory)
		})
		r.Get("/summary", s.GetSummary)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}

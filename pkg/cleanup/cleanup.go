package cleanup

import (
	"errors"
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(name string, f func() error) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, &Job{Name: name, F: f})
}

// CleanUp runs registered jobs in reverse order of registration and forgets
// them. Every job runs even if an earlier one fails.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
			errs = append(errs, errors.New(j.Name+": "+err.Error()))
		}
	}
	return errors.Join(errs...)
}

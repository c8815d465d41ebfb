package cleanup

import (
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/multierr"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse order of registration and returns all their failures combined.
func CleanUp() error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()

	var err error
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if jobErr := j.F(); jobErr != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", jobErr.Error()))
			err = multierr.Append(err, fmt.Errorf("%s: %w", j.Name, jobErr))
			continue
		}
		slog.Info("cleaned", slog.String("job", j.Name))
	}
	return err
}

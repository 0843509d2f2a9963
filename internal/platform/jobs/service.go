package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const JobSessionSweep = "session_sweep"

const historySize = 32

type Run struct {
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Details   any       `json:"details,omitempty"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"startedAt"`
	Duration  string    `json:"duration"`
}

type Service struct {
	queue chan job

	mu      sync.Mutex
	history []Run
	now     func() time.Time
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New() *Service {
	return &Service{
		queue: make(chan job, 128),
		now:   time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

// Schedule enqueues run every interval until ctx is done. A non-positive
// interval disables the job.
func (s *Service) Schedule(ctx context.Context, jobType string, interval time.Duration, run func(context.Context) (any, error)) {
	if interval <= 0 {
		slog.Info("job disabled", "jobType", jobType)
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Enqueue(jobType, run)
			}
		}
	}()
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// History returns the most recent runs, oldest first.
func (s *Service) History() []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Run(nil), s.history...)
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	started := s.now()
	details, err := j.Run(ctx)
	run := Run{
		Type:      j.Type,
		Status:    "completed",
		Details:   details,
		StartedAt: started,
		Duration:  s.now().Sub(started).String(),
	}
	if err != nil {
		run.Status = "failed"
		run.Error = err.Error()
	}

	s.mu.Lock()
	s.history = append(s.history, run)
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
	s.mu.Unlock()

	slog.Debug("job run finished", "jobType", j.Type, "status", run.Status)
	return details, err
}

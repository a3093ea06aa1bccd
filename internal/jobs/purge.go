package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

// Purger removes blocked dates that are already in the past.
type Purger interface {
	PurgePast(ctx context.Context) (int64, error)
}

type PurgeJob struct {
	purger  Purger
	metrics *metrics.Metrics
	log     *slog.Logger
	timeout time.Duration
}

func NewPurgeJob(p Purger, m *metrics.Metrics, log *slog.Logger) *PurgeJob {
	return &PurgeJob{
		purger:  p,
		metrics: m,
		log:     log,
		timeout: 30 * time.Second,
	}
}

// Run satisfies cron.Job.
func (j *PurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.purger.PurgePast(ctx)
	if err != nil {
		j.log.Error("purge blocked dates failed", "err", err)
		return
	}

	j.metrics.Purged(n)
	j.log.Info("purged past blocked dates", "count", n)
}

// Scheduler runs maintenance jobs on the shop's clock.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

func (s *Scheduler) Add(spec string, job cron.Job) error {
	_, err := s.cron.AddJob(spec, job)
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs or ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

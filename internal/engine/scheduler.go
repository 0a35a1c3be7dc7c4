package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/marketping/marketping/internal/store"
)

// JobNameReconcile is the job_runs name for the polling cycle.
const JobNameReconcile = "reconcile"

// staleRunMultiplier determines how old a "running" job_runs row must be,
// relative to the poll interval, before startup recovery marks it crashed.
const staleRunMultiplier = 3

// Scheduler runs reconciliation cycles on a fixed interval. Cycles never
// overlap: a cycle still in flight when the next tick fires causes the tick
// to be skipped. Each run is recorded in job_runs.
type Scheduler struct {
	cron         *cron.Cron
	rec          *Reconciler
	store        store.Store
	log          *slog.Logger
	pollInterval time.Duration
}

// NewScheduler creates a Scheduler that runs the reconciler every
// pollInterval.
func NewScheduler(
	rec *Reconciler,
	st store.Store,
	pollInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	s := &Scheduler{
		cron:         c,
		rec:          rec,
		store:        st,
		log:          log,
		pollInterval: pollInterval,
	}

	if _, err := c.AddFunc(
		"@every "+pollInterval.String(),
		s.runReconcile,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start recovers stale job runs from a previous crash and begins running
// scheduled cycles.
func (s *Scheduler) Start(ctx context.Context) {
	recovered, err := s.store.RecoverStaleJobRuns(ctx, staleRunMultiplier*s.pollInterval)
	if err != nil {
		s.log.Error("stale job run recovery failed", "error", err)
	} else if recovered > 0 {
		s.log.Warn("recovered stale job runs", "count", recovered)
	}

	s.log.Info("scheduler started", "poll_interval", s.pollInterval)
	s.cron.Start()
}

// Stop gracefully stops the scheduler. The returned context is done once any
// in-flight cycle has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runReconcile() {
	ctx := context.Background()

	runID, err := s.store.InsertJobRun(ctx, JobNameReconcile)
	if err != nil {
		// Bookkeeping must not block the cycle itself.
		s.log.Error("inserting job run failed", "error", err)
	}

	res, cycleErr := s.rec.RunCycle(ctx)

	if runID == "" {
		return
	}

	status, errText := "succeeded", ""
	if cycleErr != nil {
		status, errText = "failed", cycleErr.Error()
	}
	var changes int
	if res != nil {
		changes = res.Changes
	}
	if err := s.store.CompleteJobRun(ctx, runID, status, errText, changes); err != nil {
		s.log.Error("completing job run failed", "run_id", runID, "error", err)
	}
}

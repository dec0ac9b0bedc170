package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// Config holds the job schedules in robfig/cron syntax ("@every 1h", "0 * * * *")
type Config struct {
	ReconcileSchedule  string
	GuardPurgeSchedule string
	JobTimeout         time.Duration
}

// Scheduler runs the periodic maintenance jobs
type Scheduler struct {
	cron        *cron.Cron
	maintenance usecase.MaintenanceUseCase
	config      Config
	logger      coreport.Logger
}

// New creates a scheduler in UTC. Overlapping runs of the same job are skipped.
func New(maintenance usecase.MaintenanceUseCase, config Config, logger coreport.Logger) *Scheduler {
	if config.JobTimeout <= 0 {
		config.JobTimeout = 5 * time.Minute
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		maintenance: maintenance,
		config:      config,
		logger:      logger,
	}
}

// Register adds the jobs whose schedule is set
func (s *Scheduler) Register() error {
	if s.config.ReconcileSchedule != "" {
		if _, err := s.cron.AddFunc(s.config.ReconcileSchedule, s.reconcile); err != nil {
			return fmt.Errorf("invalid reconciliation schedule %q: %w", s.config.ReconcileSchedule, err)
		}
	}
	if s.config.GuardPurgeSchedule != "" {
		if _, err := s.cron.AddFunc(s.config.GuardPurgeSchedule, s.purgeGuards); err != nil {
			return fmt.Errorf("invalid guard purge schedule %q: %w", s.config.GuardPurgeSchedule, err)
		}
	}
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{
		"jobs": len(s.cron.Entries()),
	})
}

// Stop stops scheduling and waits for running jobs until ctx ends
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped", nil)
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out with jobs still running", nil)
	}
}

func (s *Scheduler) reconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	found, err := s.maintenance.ReconcileBalances(ctx)
	if err != nil {
		s.logger.Error("Ledger reconciliation failed", map[string]any{"error": err.Error()})
		return
	}
	s.logger.Info("Ledger reconciliation finished", map[string]any{"discrepancies": len(found)})
}

func (s *Scheduler) purgeGuards() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	purged, err := s.maintenance.PurgeExpiredGuards(ctx)
	if err != nil {
		s.logger.Error("Request guard purge failed", map[string]any{"error": err.Error()})
		return
	}
	if purged > 0 {
		s.logger.Info("Expired request guards purged", map[string]any{"purged": purged})
	}
}

// cronLogger adapts core.Logger to cron.Logger
type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, kvFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := kvFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error(msg, fields)
}

func kvFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

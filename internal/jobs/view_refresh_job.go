package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"fleetops/internal/core/application/reconciliation"

	"github.com/robfig/cron/v3"
)

// defaultRefreshSpec runs the pull refresh every 30 seconds.
const defaultRefreshSpec = "*/30 * * * * *"

// ViewRefreshJob periodically invalidates the reconciler's view so the pull
// path catches anything the push notifications missed. The trigger only
// arms the reconciler: the actual fetch coalesces with any push-triggered
// refresh already in flight.
type ViewRefreshJob struct {
	reconciler *reconciliation.Reconciler
	cron       *cron.Cron
	spec       string
	logger     *slog.Logger
}

// NewViewRefreshJob creates the periodic pull-refresh job. An empty spec
// falls back to the 30-second default.
func NewViewRefreshJob(reconciler *reconciliation.Reconciler, spec string, logger *slog.Logger) *ViewRefreshJob {
	if spec == "" {
		spec = defaultRefreshSpec
	}
	return &ViewRefreshJob{
		reconciler: reconciler,
		cron:       cron.New(cron.WithSeconds()),
		spec:       spec,
		logger:     logger.With("component", "view_refresh_job"),
	}
}

// Start schedules the job and triggers one immediate refresh so the view is
// populated right after startup.
func (j *ViewRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.reconciler.Invalidate()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule view refresh: %w", err)
	}

	j.reconciler.Invalidate()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "View refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the job.
func (j *ViewRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "View refresh job stopped")
}

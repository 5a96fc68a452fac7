// Package jobs provides scheduled background tasks.
//
// The single job, ViewRefreshJob, uses github.com/robfig/cron/v3 to
// periodically invalidate the reconciliation view. Push notifications
// handle the fast path; this pull covers missed or dropped notifications.
//
// Usage:
//
//	job := jobs.NewViewRefreshJob(reconciler, "", logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("failed to start view refresh job:", err)
//	}
//	defer job.Stop()
package jobs

// Package jobs provides scheduled background tasks for the order system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(repairHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// TotalRepairJob runs every minute, finds orders whose stored total drifted
// from the sum of their line totals, and repairs each one in its own
// transaction. Orders that lose the optimistic version race are left for the
// next sweep.
package jobs

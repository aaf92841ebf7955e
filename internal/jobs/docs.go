// Package jobs provides scheduled background tasks for the accounting
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoBackupJob - Periodically captures a labeled backup of the order
// collection, skipping runs where nothing changed since the last capture.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderStore, backupService, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed backup run is logged and retried on the next tick; it never
// interrupts request handling.
package jobs

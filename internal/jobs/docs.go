// Package jobs provides scheduled background tasks for the simulation server.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to advance the simulation while the HTTP server is running.
//
// # Available Jobs
//
// 1. SimulationTickJob - Runs every second to advance the simulation by one tick
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stepSimulationHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tick job uses the cron expression "* * * * * *" which means it runs
// every second. One cron firing equals exactly one simulation tick, so wall
// clock seconds map directly onto simulation time in server mode.
//
// # Error Handling
//
// The tick job logs every handler error. A failed tick never stops the
// schedule; the next firing runs normally.
package jobs

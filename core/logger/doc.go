// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Job Correlation
//
// Every sync job invocation gets a run id. The WithJob helper attaches the
// job name and run id to a logger so all entries of one run can be
// correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Scheduler started")
//
//	// In a job:
//	l := logger.WithJob(log, "sync_servers", runID)
//	l.Error("Job failed", zap.Error(err))
package logger

// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) and integrates with the Fiber
// gateway for request-scoped logging.
//
// All informational and error notices emitted by the object operations
// (empty-bucket notices, transfer progress, deletion warnings) go through
// this logger. They are a side channel only: never part of a return
// contract, and tests replace the logger with zap.NewNop().
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches
// it to the log entry, ensuring that all logs related to a specific request
// can be correlated.
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
//	log.Info("Ready")
package logger

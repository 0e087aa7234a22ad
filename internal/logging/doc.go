// Package logging provides structured logging utilities for the meetslots application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (email and calendar ID anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "calendar.freebusy")
//	logger.Info("fetched busy periods",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("slot search",
//	    logging.Calendar(calendarID))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Attendee emails and calendar IDs are hashed to prevent PII leakage
//     while allowing correlation
//   - Tokens are never logged directly
package logging

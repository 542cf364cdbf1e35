// Package logging provides structured logging utilities for forge components.
//
// # Overview
//
// This package wraps the standard library slog package with forge-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("forge", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("simulation complete", "items", 3)
//	    slog.Debug("queue state", "pending", queueLen)
//	    slog.Error("catalog load failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("forge", "v2.0.0", "debug")
//	logger.Info("catalog loaded", "recipes", cat.Len())
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug forge simulate --catalog recipes.yaml --item "Cake=5"
package logging

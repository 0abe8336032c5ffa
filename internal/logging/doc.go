// Package logging provides structured logging for the inquire toolkit.
//
// This package wraps zap with package-level convenience functions. Logging
// is silent by default: interactive prompts own the terminal, and stray
// log lines would corrupt their output. Set the INQUIRE_LOG_LEVEL
// environment variable to "debug", "info", "warn", or "error" to enable
// output, which goes to stderr so it can be redirected away from the
// prompt UI.
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// All log functions use structured fields:
//
//	logging.Debug("range selection committed",
//	    zap.String("input", "0,2-4"),
//	    zap.Int("options", 6),
//	)
//
// All logging functions are safe for concurrent use.
package logging

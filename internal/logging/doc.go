// Package logging provides structured logging for lightmixer.
//
// This package wraps a global zap logger with convenience functions for the
// few events worth recording: controller discovery and brightness writes.
//
// # Silent by Default
//
// lightmixer is an interactive tool, so the logger is a no-op unless a level
// is requested through --log-level or the LIGHTMIXER_LOG_LEVEL environment
// variable. Output goes to stderr, or to the file named by
// LIGHTMIXER_LOG_FILE. Use the file when debugging the dashboard, which owns
// the terminal while it runs:
//
//	LIGHTMIXER_LOG_LEVEL=debug LIGHTMIXER_LOG_FILE=/tmp/lightmixer.log lightmixer tui
//
// # Usage
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogBrightnessWrite(path, 120, nil)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging

// Package logging assembles structured slog loggers and formatting helpers used
// across forestsim.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so shell code can tag log lines
// with the session identifier. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Diagnostics go to the log file configured under [paths]; the interactive
// shell keeps stdout for the menu and forest listings.
package logging

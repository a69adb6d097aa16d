// Package logging assembles the structured slog loggers used across relink.
//
// It owns the console and JSON handlers, centralizes level plumbing
// (including the counted -v verbosity mapping), and exposes small attribute
// helpers so every stage emits log lines with the same shape. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging

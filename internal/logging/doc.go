// Package logging assembles the slog loggers used by folderize.
//
// It owns the console and JSON handlers and the level parsing, and exposes a
// no-op logger for tests. Logs are operator diagnostics written to stderr;
// the per-file action lines a user reads are produced by the report package
// and never pass through here.
package logging

// Package history persists completed check/sanitize runs in SQLite.
//
// The store records one row per run plus the failed files and their
// diagnostics, so past results stay inspectable after the terminal output
// is gone. The database is an archive, not coordination state; deleting it
// only loses history.
package history

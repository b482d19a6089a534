// Package output reports what a notes-cli command produced, either as a
// human-readable line or as JSON for scripts.
package output

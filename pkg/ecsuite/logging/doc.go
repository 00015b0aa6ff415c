// Package logging provides slog-backed helpers for applications embedding
// the suite library. The suite operations themselves are pure and never
// log; these helpers exist so callers can instrument their own signing
// flows without accidentally recording key material.
package logging

// Package internalcheck holds repository policy checks that run as tests.
//
// The checks walk the source of the public packages and fail on patterns
// that are dangerous around key material: hex-formatting of secrets into
// log or error strings, and non-constant-time comparison of byte slices.
// It is part of the internal test infrastructure and is not meant to be
// imported by applications; use pkg/ecsuite instead.
package internalcheck

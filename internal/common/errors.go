// Package common defines shared sentinel errors used across the filolog
// service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Request validation errors. Reported to the caller with a corrective
	// message, never logged as a system fault.
	ErrInputRejected = errors.New("input rejected")

	// ErrRateLimited means the per-user request ceiling was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrOracleUnavailable means a linguistic backend (morphology dictionary,
	// spelling dictionary, example generator) is unreachable or failed.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrPersistence wraps ledger write/delete failures. Read failures are
	// not wrapped in it: history counting and listing degrade to safe
	// defaults instead of propagating.
	ErrPersistence = errors.New("persistence failure")
)

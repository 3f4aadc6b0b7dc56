// Package ratelimit derives per-user admission decisions from the query
// ledger's windowed record count.
package ratelimit

import (
	"context"
	"time"

	"github.com/filologbot/filolog/internal/logging"
)

// Counter provides the windowed query count the limiter decides on.
// Satisfied by the ledger repository.
type Counter interface {
	CountSince(ctx context.Context, userID int64, since time.Time) (int, error)
}

// Limiter admits or denies requests against a fixed ceiling within a
// sliding time window. It keeps no state of its own: every decision is a
// fresh read of the ledger.
//
// The enforcement is advisory. The count is taken before the current
// request is recorded, so the ceiling effectively permits one request
// beyond the nominal limit, and two concurrent requests from the same user
// can both pass before either is recorded. Both behaviors are accepted.
type Limiter struct {
	counter Counter
	ceiling int
	window  time.Duration
	log     logging.Logger
}

func New(counter Counter, ceiling int, window time.Duration, log logging.Logger) *Limiter {
	return &Limiter{counter: counter, ceiling: ceiling, window: window, log: log}
}

// Ceiling returns the configured request ceiling, for user-facing messages.
func (l *Limiter) Ceiling() int { return l.ceiling }

// Admit reports whether the user's request may proceed. A failing count
// degrades to zero, so ledger errors admit rather than deny: history
// subsystem health must not block the primary response.
func (l *Limiter) Admit(ctx context.Context, userID int64) bool {
	since := time.Now().UTC().Add(-l.window)

	n, err := l.counter.CountSince(ctx, userID, since)
	if err != nil {
		l.log.Warn(ctx, "rate count failed, admitting", "user_id", userID, "error", err)
		return true
	}

	// Inclusive boundary: a user at exactly the ceiling is still admitted.
	return n <= l.ceiling
}

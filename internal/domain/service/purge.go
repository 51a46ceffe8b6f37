package service

import (
	"context"
	"log/slog"
	"time"
)

// SessionPurger is implemented by storages that do not expire keys on their own.
type SessionPurger interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// PurgeExpiredSessions deletes expired sessions every interval until ctx is done.
func PurgeExpiredSessions(ctx context.Context, purger SessionPurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := purger.DeleteExpiredSessions(ctx, time.Now())
			if err != nil {
				slog.Error("failed to purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("purged expired sessions", "count", n)
			}
		}
	}
}

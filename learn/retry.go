package learn

import (
	"context"
	"log/slog"
	"time"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// fetchFunc is the signature shared by fetchers.
type fetchFunc func(ctx context.Context, source string) (string, error)

// defaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func defaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with backoff. Invalid and not-found
// results are returned immediately; only transient failures retry.
func fetchWithRetry(ctx context.Context, source string, fetch fetchFunc, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := fetch(ctx, source)
		if err == nil {
			return content, nil
		}
		lastErr = err

		switch clawdoc.ErrorCode(err) {
		case clawdoc.ENOTFOUND, clawdoc.EINVALID:
			return "", err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retrying fetch",
				slog.String("source", source),
				slog.Int("attempt", attempt+2),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

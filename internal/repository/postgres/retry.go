package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"confcompanion/internal/domain"
	"confcompanion/internal/metrics"
)

// RetryPolicy bounds the retries of a storage operation. The delay before
// attempt n+1 is BaseDelay*n.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *slog.Logger
	// Sleep waits for d or until ctx is done. Nil uses a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy makes 3 attempts with 1s, then 2s, between them.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   time.Second,
}

// connectionVocabulary is matched against lower-cased error text when the
// error carries no structured code.
var connectionVocabulary = []string{
	"connection",
	"timeout",
	"refused",
	"econnrefused",
	"enotfound",
	"no such host",
	"network",
	"socket",
	"unavailable",
	"too many clients",
	"connection terminated",
}

// IsTransientConnectionFailure reports whether err is a connection-level
// failure worth retrying. Structured driver codes win over message text.
func IsTransientConnectionFailure(err error) bool {
	if err == nil {
		return false
	}

	var se *domain.StorageError
	if errors.As(err, &se) {
		return se.IsConnectionError
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, context.Canceled) || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return transientSQLState(string(pqErr.Code))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return transientSQLState(pgErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, word := range connectionVocabulary {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}

// sqlState returns the SQLSTATE carried by a lib/pq or pgx error, or "".
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// transientSQLState classifies a SQLSTATE code.
func transientSQLState(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "53300", // too_many_connections
		"57P01", // admin_shutdown
		"57P02", // crash_shutdown
		"57P03", // cannot_connect_now
		"57014": // query_canceled (statement timeout)
		return true
	}
	return false
}

// ExecuteWithRetry runs fn until it succeeds, fails permanently, or the
// policy's attempts are used up. Permanent errors are returned unchanged
// without delay. Exhausted retries escalate as a connection StorageError
// wrapping the last failure.
func ExecuteWithRetry[T any](ctx context.Context, policy RetryPolicy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if !IsTransientConnectionFailure(err) {
			return zero, err
		}
		lastErr = err
		if attempt == attempts {
			break
		}

		delay := policy.BaseDelay * time.Duration(attempt)
		metrics.StorageRetries.WithLabelValues(op).Inc()
		if policy.Logger != nil {
			policy.Logger.WarnContext(ctx, "storage operation failed, retrying",
				"op", op, "attempt", attempt, "max_attempts", attempts, "delay", delay, "err", err)
		}
		if err := sleep(ctx, delay); err != nil {
			return zero, domain.NewStorageError(op,
				fmt.Sprintf("database operation cancelled during %s", op), err, true)
		}
	}
	return zero, domain.NewStorageError(op,
		fmt.Sprintf("database operation failed after %d attempts", attempts), lastErr, true)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

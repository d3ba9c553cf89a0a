package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confcompanion/internal/domain"
	"confcompanion/internal/metrics"
)

func TestIsTransientConnectionFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection", errors.New("Connection reset by peer"), true},
		{"timeout", errors.New("query TIMEOUT expired"), true},
		{"refused", errors.New("dial tcp 10.0.0.1:5432: connect: refused"), true},
		{"econnrefused", errors.New("ECONNREFUSED"), true},
		{"enotfound", errors.New("getaddrinfo ENOTFOUND db"), true},
		{"no such host", errors.New("lookup db: no such host"), true},
		{"network", errors.New("network is unreachable"), true},
		{"socket", errors.New("socket hang up"), true},
		{"unavailable", errors.New("service Unavailable"), true},
		{"too many clients", errors.New("sorry, too many clients already"), true},
		{"connection terminated", errors.New("Connection terminated unexpectedly"), true},
		{"syntax error", errors.New(`syntax error at or near "FORM"`), false},
		{"duplicate key", errors.New("duplicate key value violates unique constraint"), false},
		{"plain not found", domain.ErrNotFound, false},
		{"no rows", sql.ErrNoRows, false},
		{"bad conn", driver.ErrBadConn, true},
		{"conn done", fmt.Errorf("exec: %w", sql.ErrConnDone), true},
		{"wrapped eof", fmt.Errorf("read: %w", io.EOF), true},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("boom")}, true},
		{"pq connection failure", &pq.Error{Code: "08006", Message: "server closed"}, true},
		{"pq admin shutdown", &pq.Error{Code: "57P01"}, true},
		{"pq too many connections", &pq.Error{Code: "53300"}, true},
		{"pq syntax error mentioning connection", &pq.Error{Code: "42601", Message: "bad connection clause"}, false},
		{"pgx cannot connect now", &pgconn.PgError{Code: "57P03"}, true},
		{"pgx unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate"}, false},
		{"storage connection error", domain.NewStorageError("op", "msg", nil, true), true},
		{"storage hard error", domain.NewStorageError("op", "connection lost", nil, false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransientConnectionFailure(tt.err))
		})
	}
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return r.err
}

func testPolicy(s *recordingSleeper) RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, Sleep: s.sleep}
}

func TestExecuteWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	sleeper := &recordingSleeper{}
	before := testutil.ToFloat64(metrics.StorageRetries.WithLabelValues("retry-success"))

	calls := 0
	got, err := ExecuteWithRetry(context.Background(), testPolicy(sleeper), "retry-success", func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.delays)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.StorageRetries.WithLabelValues("retry-success")))
}

func TestExecuteWithRetry_ExhaustsAttempts(t *testing.T) {
	sleeper := &recordingSleeper{}
	last := errors.New("connection terminated unexpectedly")

	calls := 0
	_, err := ExecuteWithRetry(context.Background(), testPolicy(sleeper), "exhaust", func(ctx context.Context) (int, error) {
		calls++
		return 0, last
	})

	require.Error(t, err)
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.IsConnectionError)
	assert.True(t, se.Retryable())
	assert.Equal(t, "database operation failed after 3 attempts", se.Message)
	assert.ErrorIs(t, err, last)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.delays)
}

func TestExecuteWithRetry_PermanentErrorNotRetried(t *testing.T) {
	sleeper := &recordingSleeper{}
	permanent := &pq.Error{Code: "42P01", Message: `relation "nope" does not exist`}

	calls := 0
	_, err := ExecuteWithRetry(context.Background(), testPolicy(sleeper), "permanent", func(ctx context.Context) (int, error) {
		calls++
		return 0, permanent
	})

	require.Error(t, err)
	assert.Same(t, permanent, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.delays)
}

func TestExecuteWithRetry_CancelledDuringBackoff(t *testing.T) {
	sleeper := &recordingSleeper{err: context.Canceled}

	calls := 0
	_, err := ExecuteWithRetry(context.Background(), testPolicy(sleeper), "cancel", func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("network is unreachable")
	})

	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.IsConnectionError)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestExecuteWithRetry_AtLeastOneAttempt(t *testing.T) {
	sleeper := &recordingSleeper{}
	policy := RetryPolicy{Sleep: sleeper.sleep}

	calls := 0
	_, err := ExecuteWithRetry(context.Background(), policy, "zero", func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.delays)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

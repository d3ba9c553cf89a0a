package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"confcompanion/internal/domain"
	"confcompanion/internal/metrics"
)

// Storage is the conference-scoped PostgreSQL store. Every query runs
// through the retry policy and escalates a *domain.StorageError.
type Storage struct {
	db     *sqlx.DB
	retry  RetryPolicy
	logger *slog.Logger
	now    func() time.Time
}

// NewStorage returns a Storage over db. A zero policy uses DefaultRetryPolicy.
func NewStorage(db *sqlx.DB, policy RetryPolicy, logger *slog.Logger) *Storage {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if policy.BaseDelay == 0 {
		policy.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if policy.Logger == nil {
		policy.Logger = logger
	}
	return &Storage{db: db, retry: policy, logger: logger, now: time.Now}
}

var _ domain.Storage = (*Storage)(nil)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer = sqlx.ExtContext

// run executes fn under the retry policy and normalizes the escalated error.
func run[T any](ctx context.Context, s *Storage, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := ExecuteWithRetry(ctx, s.retry, op, fn)
	if err != nil {
		return v, s.escalate(ctx, op, err)
	}
	return v, nil
}

// exec is run for operations without a result.
func exec(ctx context.Context, s *Storage, op string, fn func(ctx context.Context) error) error {
	_, err := run(ctx, s, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (s *Storage) escalate(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}

	var se *domain.StorageError
	if !errors.As(err, &se) {
		conn := IsTransientConnectionFailure(err)
		msg := "database error during " + op
		if conn {
			msg = "database temporarily unavailable during " + op
		}
		se = domain.NewStorageError(op, msg, err, conn)
		err = se
	}

	kind := "error"
	if se.IsConnectionError {
		kind = "connection"
	}
	metrics.StorageErrors.WithLabelValues(op, kind).Inc()
	s.logger.ErrorContext(ctx, "storage operation failed", "op", op, "connection", se.IsConnectionError, "err", err)
	return err
}

// notFound maps sql.ErrNoRows to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// CheckConnection runs a single trivial query. Errors are logged, never returned.
func (s *Storage) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var one int
	if err := s.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		s.logger.WarnContext(ctx, "database connection check failed", "err", err)
		metrics.DBUp.Set(0)
		return false
	}
	metrics.DBUp.Set(1)
	return true
}

// where accumulates AND-ed equality predicates with positional parameters.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column string, value any) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

// eqIf adds the predicate only when value is non-empty.
func (w *where) eqIf(column, value string) {
	if value != "" {
		w.eq(column, value)
	}
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// scoped selects rows of a conference, or all rows when conferenceID is empty.
func scoped(conferenceID string) *where {
	w := &where{}
	w.eqIf("conference_id", conferenceID)
	return w
}

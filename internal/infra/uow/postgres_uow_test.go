//go:build unit

package uow

import (
	"testing"
	"time"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: serialization, want: true},
		{name: "deadlock", err: deadlock, want: true},
		{name: "deadlock wrapped by a repository", err: infra.WrapRepoErr("failed to lock owner schedule", deadlock), want: true},
		{name: "deadlock marked on commit", err: errs.Mark(deadlock, errTransactionCommit), want: true},
		{name: "schedule lock timed out", err: infra.WrapRepoErr("failed to lock owner schedule", &pgconn.PgError{Code: pgErrCodeLockNotAvailable}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, Base: time.Millisecond}
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, p.shouldRetry(retryable, 0))
	assert.True(t, p.shouldRetry(retryable, 2))
	assert.False(t, p.shouldRetry(retryable, 3), "budget exhausted")
	assert.False(t, p.shouldRetry(assert.AnError, 0), "not retryable")
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

	for attempt := 0; attempt < 3; attempt++ {
		want := p.Base << attempt
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5)
	}

	assert.Equal(t, time.Duration(0), RetryPolicy{}.backoff(2))
}

//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"groomer-crm/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		override []infra.RepositoryErrorKind
		want     infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection refused"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows affected"), override: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("operation failed", tc.err, tc.override...)

			assert.True(t, infra.IsKind(wrapped, tc.want), "got %v", wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
			assert.Contains(t, wrapped.Error(), "operation failed")
		})
	}

	t.Run("nil cause keeps the message", func(t *testing.T) {
		wrapped := infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
		assert.EqualError(t, wrapped, "NOT_FOUND: appointment not found")
	})
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
)

func TestClassifyStoreErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, classifyStoreErr(nil))
	})

	t.Run("network failure becomes store unavailable", func(t *testing.T) {
		netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		err := classifyStoreErr(netErr)
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("deadline becomes store unavailable", func(t *testing.T) {
		err := classifyStoreErr(fmt.Errorf("acquire: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	})

	t.Run("query-level errors pass through unchanged", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: uniqueViolationCode}
		err := classifyStoreErr(pgErr)
		assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
		var got *pgconn.PgError
		assert.ErrorAs(t, err, &got)
	})
}

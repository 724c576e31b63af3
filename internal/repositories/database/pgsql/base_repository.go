package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// classifyStoreErr tags transport-level failures as ErrStoreUnavailable so
// handlers can answer 503 instead of a generic 500. Query-level errors
// (bad SQL, constraint violations) pass through unchanged.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	var connErr *pgconn.ConnectError
	if errors.As(err, &netErr) || errors.As(err, &connErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%v: %w", err, apperrors.ErrStoreUnavailable)
	}
	return err
}

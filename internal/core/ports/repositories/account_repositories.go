package repositories

import (
	"context"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// AccountRepository persists staff accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate when
	// the username is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID returns apperrors.ErrNotFound when no account matches.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByUsername matches the username exactly.
	// Returns apperrors.ErrNotFound when no account matches.
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindAccountByDisplayName returns the oldest account with the given
	// display name, or apperrors.ErrNotFound. Display names are not unique.
	FindAccountByDisplayName(ctx context.Context, displayName string) (*domain.Account, error)
}

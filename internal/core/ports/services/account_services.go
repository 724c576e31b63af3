package services

import (
	"context"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	"github.com/salestrackhq/salestrack_app/internal/dto"
)

// AccountProvisionerSvc resolves free-text display names to accounts,
// creating one when none exists. Used by batch entry.
type AccountProvisionerSvc interface {
	// ResolveByDisplayName returns the account with the given display name,
	// auto-provisioning one (generated username and password,
	// MustChangePassword set) when none exists. The second return value
	// reports whether an account was created.
	ResolveByDisplayName(ctx context.Context, displayName string, creatorID string) (*domain.Account, bool, error)
}

// AccountSvcFacade is the account service surface used by handlers.
type AccountSvcFacade interface {
	AccountProvisionerSvc

	// Register creates a new staff account with a hashed password.
	// Fails with apperrors.ErrValidation on empty fields or weak passwords
	// and apperrors.ErrDuplicate on taken usernames.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// Authenticate verifies credentials against the per-session attempt
	// state. Once attempts reach the configured maximum it fails with
	// apperrors.ErrRateLimited without consulting the store; credential
	// failures return apperrors.ErrUnauthorized and increment the counter;
	// success resets it.
	Authenticate(ctx context.Context, username, password string, attempts *domain.LoginAttempts) (*domain.Account, error)

	// GetAccountByID fetches an account, e.g. to resolve the JWT subject.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

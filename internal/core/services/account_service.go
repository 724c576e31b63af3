package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
	"github.com/salestrackhq/salestrack_app/internal/utils"
)

// defaultPasswordBytes sizes the generated password for auto-provisioned
// accounts (hex encoded, so twice as many characters).
const defaultPasswordBytes = 8

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	maxAttempts int
}

// NewAccountService creates the account service. maxAttempts bounds
// consecutive failed logins per session before lockout.
func NewAccountService(accountRepo portsrepo.AccountRepository, maxAttempts int) portssvc.AccountSvcFacade {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &accountService{
		accountRepo: accountRepo,
		maxAttempts: maxAttempts,
	}
}

// Ensure accountService implements the facade
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	username := strings.TrimSpace(req.Username)
	displayName := strings.TrimSpace(req.DisplayName)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required: %w", apperrors.ErrValidation)
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	accountID := uuid.NewString()
	account := domain.Account{
		AccountID:    accountID,
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		IsAdmin:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID, // self-registration
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("username", username))
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	s.LogInfo(ctx, "Account registered", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string, attempts *domain.LoginAttempts) (*domain.Account, error) {
	if attempts.Failures >= s.maxAttempts {
		// Locked out: the store is not even consulted, so correct
		// credentials on the 6th try still fail until the state resets.
		return nil, fmt.Errorf("login locked after %d failures: %w", attempts.Failures, apperrors.ErrRateLimited)
	}

	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure path as a wrong password: username existence
			// must not leak.
			attempts.Failures++
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up account for login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		attempts.Failures++
		return nil, apperrors.ErrUnauthorized
	}

	attempts.Failures = 0
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

func (s *accountService) ResolveByDisplayName(ctx context.Context, displayName string, creatorID string) (*domain.Account, bool, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, false, fmt.Errorf("display name is required: %w", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByDisplayName(ctx, displayName)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to resolve display name: %w", err)
	}

	account, err = s.provisionAccount(ctx, displayName, creatorID)
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}

// provisionAccount creates an account for a batch-entry name that has no
// account yet. The password is generated per account, never a shared
// default, and the account is flagged to change it on first login.
func (s *accountService) provisionAccount(ctx context.Context, displayName string, creatorID string) (*domain.Account, error) {
	password, err := utils.GenerateSecureRandomString(defaultPasswordBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate default password: %w", err)
	}
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	base := utils.DeriveUsername(displayName)
	now := time.Now()

	// Usernames are unique; suffix the derived base until an insert lands.
	username := base
	for attempt := 0; attempt < 5; attempt++ {
		if attempt > 0 {
			suffix, err := utils.GenerateSecureRandomString(2)
			if err != nil {
				return nil, fmt.Errorf("failed to generate username suffix: %w", err)
			}
			username = base + suffix
		}

		accountID := uuid.NewString()
		account := domain.Account{
			AccountID:          accountID,
			Username:           username,
			PasswordHash:       passwordHash,
			DisplayName:        displayName,
			IsAdmin:            false,
			MustChangePassword: true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorID,
			},
		}

		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			s.LogInfo(ctx, "Auto-provisioned account for batch entry",
				slog.String("account_id", account.AccountID),
				slog.String("username", username))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to provision account", slog.String("display_name", displayName))
			return nil, fmt.Errorf("failed to provision account: %w", err)
		}
	}

	return nil, fmt.Errorf("could not find a free username for %q: %w", displayName, apperrors.ErrDuplicate)
}

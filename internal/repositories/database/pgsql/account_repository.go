package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
	"github.com/salestrackhq/salestrack_app/internal/models"
)

const uniqueViolationCode = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		Username:           d.Username,
		PasswordHash:       d.PasswordHash,
		DisplayName:        d.DisplayName,
		IsAdmin:            d.IsAdmin,
		MustChangePassword: d.MustChangePassword,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		Username:           m.Username,
		PasswordHash:       m.PasswordHash,
		DisplayName:        m.DisplayName,
		IsAdmin:            m.IsAdmin,
		MustChangePassword: m.MustChangePassword,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const accountColumns = `account_id, username, password_hash, display_name, is_admin, must_change_password, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAccount := toModelAccount(account)
	query := `
        INSERT INTO accounts (account_id, username, password_hash, display_name, is_admin, must_change_password, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelAccount.AccountID,
		modelAccount.Username,
		modelAccount.PasswordHash,
		modelAccount.DisplayName,
		modelAccount.IsAdmin,
		modelAccount.MustChangePassword,
		modelAccount.CreatedAt,
		modelAccount.CreatedBy,
		modelAccount.LastUpdatedAt,
		modelAccount.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("username %q already taken: %w", account.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account: %w", classifyStoreErr(err))
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, accountID), accountID)
}

func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1;`
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, username), username)
}

func (r *PgxAccountRepository) FindAccountByDisplayName(ctx context.Context, displayName string) (*domain.Account, error) {
	// Display names are not unique; the oldest account wins so batch entry
	// resolves consistently across calls.
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE display_name = $1 ORDER BY created_at ASC LIMIT 1;`
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, displayName), displayName)
}

func (r *PgxAccountRepository) scanAccountRow(row pgx.Row, key string) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Username,
		&m.PasswordHash,
		&m.DisplayName,
		&m.IsAdmin,
		&m.MustChangePassword,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", key, classifyStoreErr(err))
	}
	domainAccount := toDomainAccount(m)
	return &domainAccount, nil
}

package models

import "time"

// Account is the DB-shaped representation of an account row.
type Account struct {
	AccountID          string `db:"account_id"`
	Username           string `db:"username"`
	PasswordHash       string `db:"password_hash"`
	DisplayName        string `db:"display_name"`
	IsAdmin            bool   `db:"is_admin"`
	MustChangePassword bool   `db:"must_change_password"`
	AuditFields
}

// AuditFields mirrors the audit columns shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

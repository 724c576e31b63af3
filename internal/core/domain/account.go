package domain

// Account represents a staff account that can log in and own sales records.
type Account struct {
	AccountID    string `json:"accountID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"displayName"`
	IsAdmin      bool   `json:"isAdmin"`
	// MustChangePassword is set on accounts auto-provisioned by batch entry,
	// which start out with a generated password.
	MustChangePassword bool `json:"mustChangePassword"`
	AuditFields
}

// LoginAttempts tracks consecutive failed logins for one session.
// It is mutated by the account service: incremented on failure, zeroed on
// success. The caller owns the state and its lifetime.
type LoginAttempts struct {
	Failures int
}

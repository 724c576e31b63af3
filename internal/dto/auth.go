package dto

import (
	"time"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
)

// RegisterRequest carries a new staff registration.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token after a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountID          string `json:"accountID"`
	Username           string `json:"username"`
	DisplayName        string `json:"displayName"`
	IsAdmin            bool   `json:"isAdmin"`
	MustChangePassword bool   `json:"mustChangePassword"`
}

// ToAccountResponse converts a domain.Account to its public view.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          account.AccountID,
		Username:           account.Username,
		DisplayName:        account.DisplayName,
		IsAdmin:            account.IsAdmin,
		MustChangePassword: account.MustChangePassword,
	}
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// currentAccount resolves the authenticated account from the JWT subject in
// the request context. Aborts the request when the subject cannot be
// resolved.
func currentAccount(c *gin.Context, accounts portssvc.AccountSvcFacade) (*domain.Account, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Account ID not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	account, err := accounts.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Token subject has no account", slog.String("account_id", accountID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return nil, false
		}
		logger.Error("Failed to resolve account", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "System error, retry later"})
		return nil, false
	}
	return account, true
}

// parseRecordFilter builds a RecordFilter from the shared ownerID /
// startDate / endDate query parameters. Date bounds are inclusive.
func parseRecordFilter(ownerID, startDate, endDate string) (domain.RecordFilter, error) {
	filter := domain.RecordFilter{}
	if ownerID != "" {
		filter.OwnerID = &ownerID
	}
	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return filter, errors.New("invalid startDate format, use YYYY-MM-DD")
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return filter, errors.New("invalid endDate format, use YYYY-MM-DD")
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, errors.New("startDate must be before or equal to endDate")
	}
	return filter, nil
}

// respondServiceError maps service errors to HTTP statuses. Unexpected
// errors are logged and surfaced as a generic retryable failure.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, apperrors.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many failed attempts. Please try again later."})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to perform this action"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Already exists"})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Store unavailable, retry later"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "System error, retry later"})
	}
}

package middleware

import "context"

// accountIDKey is the key used to store the authenticated account's ID in
// the request context.
const accountIDKey = contextKey("accountID")

// GetAccountIDFromCtx retrieves the authenticated account ID from the
// context. It returns the ID and a boolean indicating if it was found.
func GetAccountIDFromCtx(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	if !ok || accountID == "" {
		return "", false
	}
	return accountID, true
}

// WithAccountID returns a context carrying the authenticated account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

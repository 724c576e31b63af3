package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Deletes of records owned by someone else surface this same error, so
// callers cannot probe for foreign record IDs.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates failed authentication. The message is generic
// on purpose: it must not reveal whether the username exists.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrRateLimited indicates too many consecutive failed login attempts.
var ErrRateLimited = errors.New("too many failed attempts")

// ErrForbidden indicates the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrStoreUnavailable indicates the record store could not be reached.
// Operations failing with this error performed no partial writes.
var ErrStoreUnavailable = errors.New("store unavailable")

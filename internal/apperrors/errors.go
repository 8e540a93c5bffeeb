package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found or is inactive.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadySettled indicates a settlement attempt on an entry that is already settled.
var ErrAlreadySettled = errors.New("entry already settled")

// ErrUnknownCategory indicates a category code that is not present in the registry.
var ErrUnknownCategory = errors.New("unknown category")

// ErrInvalidRange indicates a report date range whose start is after its end.
var ErrInvalidRange = errors.New("invalid date range")

// ErrStorage indicates an I/O failure or malformed content in the backing store.
var ErrStorage = errors.New("storage error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the acting user lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

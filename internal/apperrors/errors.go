package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a failed name/PIN check or a missing session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrParseFailure indicates that an external extraction/parsing collaborator
// failed or returned output we could not use.
var ErrParseFailure = errors.New("document parse failure")

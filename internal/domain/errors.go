package domain

import "errors"

// Sentinel errors surfaced across datasource and command boundaries.
// Callers classify with errors.Is; wrapping preserves the chain.
var (
	ErrContentNotFound        = errors.New("content not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrDependencyUnavailable  = errors.New("dependency unavailable")
)

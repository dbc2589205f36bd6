package datasources

import "context"

// UserExistenceChecker reports whether a user account exists.
// Used to validate interaction events before any weight is recorded.
type UserExistenceChecker interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

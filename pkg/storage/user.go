package storage

import (
	"context"

	"landlordheaven/pkg/domain"
)

// UserUpdates describes a set of optional fields that can be applied to an
// existing user during an update. Only non-nil fields are changed.
type UserUpdates struct {
	// Name, when provided, replaces the display name.
	Name *string
	// PasswordHash, when provided, replaces the stored password hash.
	PasswordHash *string
	// StripeCustomerID, when provided, links the user to a Stripe customer.
	StripeCustomerID *string
}

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row as it exists in the
	// database. The email column is unique; inserting a duplicate returns an
	// error satisfying errors.Is(err, ErrDuplicate).
	StoreUser(ctx context.Context, u domain.User) (*domain.User, error)
	// UserByID fetches a user by ID, excluding soft-deleted rows. Returns nil
	// when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email, case-insensitively. Returns nil
	// when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUserByID updates a single user and returns the updated row.
	// Returns nil when no row matched.
	UpdateUserByID(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
}

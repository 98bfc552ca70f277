package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// IsZero reports whether the ID is unset. A zero UserID on a case or order
// means the record is anonymous (not yet claimed by an account).
func (id UserID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID as its canonical UUID string.
func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the ID from its canonical UUID string.
func (id *UserID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = UserID(u)

	return nil
}

// SessionID identifies an anonymous browser session. Cases created before
// signup are bound to a session until they are claimed by a user.
type SessionID uuid.UUID

// IsZero reports whether the session ID is unset.
func (id SessionID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id SessionID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID as its canonical UUID string.
func (id SessionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the ID from its canonical UUID string.
func (id *SessionID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = SessionID(u)

	return nil
}

// User represents a registered landlord account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Email is the unique login identifier, stored lowercased.
	Email string `json:"email"`
	// Name is the display name used in correspondence and generated documents.
	Name string `json:"name"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`
	// StripeCustomerID links the account to its Stripe customer, if one has
	// been created by a checkout.
	StripeCustomerID string `json:"-"`

	// CreatedAt is the time when the account was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the account was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the account was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

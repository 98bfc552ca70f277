package auth

import (
	"context"

	"landlordheaven/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Auth interface {
	// Signup creates an account and returns the user together with a signed
	// access token.
	Signup(ctx context.Context, email, name, password string) (*domain.User, string, error)
	// Login verifies the credentials and returns the user together with a
	// signed access token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// User fetches the profile of an authenticated user.
	User(ctx context.Context, userID domain.UserID) (*domain.User, error)
}

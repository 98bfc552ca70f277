// Package auth implements account signup, login and access-token issuance.
// Passwords are stored as bcrypt hashes; tokens are RS256 JWTs whose subject
// is the user ID.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"landlordheaven/internal/config"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes, so longer passwords are
	// rejected instead of silently truncated.
	maxPasswordLength = 72
)

// Options configure token signing and password hashing. These settings are
// typically derived from application configuration.
type Options struct {
	// PrivateKey is the PEM-encoded RSA key used to sign access tokens.
	PrivateKey string
	// TTL is how long issued tokens stay valid.
	TTL time.Duration
	// BcryptCost is the bcrypt cost factor for new password hashes.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey: cfg.JWT.PrivateKey,
		TTL:        cfg.JWT.TTL,
		BcryptCost: cfg.Auth.BcryptCost,
	}
}

// auth is the concrete implementation of the Auth interface.
type auth struct {
	options Options
	// key is the parsed signing key; parsed once at construction.
	key     *rsa.PrivateKey
	storage storage.Storage
}

// Signup creates an account for the given email. The email is normalized to
// lower case and must be unique; the password is hashed with bcrypt before it
// is stored.
func (s auth) Signup(ctx context.Context, email, name, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid email address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", serrors.With(serrors.ErrBadRequest, "a name is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", serrors.With(serrors.ErrBadRequest,
			"password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return nil, "", serrors.With(serrors.ErrBadRequest,
			"password must be at most %d characters", maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.options.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("could not hash password: %w", err)
	}

	stored, err := s.storage.StoreUser(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, "", serrors.With(serrors.ErrConflict,
				"an account with this email already exists")
		}

		return nil, "", fmt.Errorf("could not store user: %w", err)
	}

	token, err := s.signToken(stored.ID)
	if err != nil {
		return nil, "", err
	}

	return stored, token, nil
}

// Login verifies the credentials. Unknown emails and wrong passwords produce
// the same error so the response does not reveal which accounts exist.
func (s auth) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, "", invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", invalidCredentials()
	}

	token, err := s.signToken(u.ID)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// User returns the profile of the given user.
func (s auth) User(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	u, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return u, nil
}

// signToken mints an RS256 JWT whose subject is the user ID.
func (s auth) signToken(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.options.TTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

func invalidCredentials() error {
	return serrors.With(serrors.ErrUnauthorized, "invalid email or password")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// New creates a new Auth instance backed by the provided storage. The
// configured private key is parsed once here.
func New(storage storage.Storage, options Options) (Auth, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &auth{
		options: options,
		key:     key,
		storage: storage,
	}, nil
}

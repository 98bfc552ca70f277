package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"landlordheaven/internal/auth"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	mockstorage "landlordheaven/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*mockstorage.MockStorage, auth.Auth, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc, err := auth.New(st, auth.Options{
		PrivateKey: string(keyPEM),
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)

	return st, svc, key
}

// parseSubject verifies the token against the test key pair and returns its
// subject.
func parseSubject(t *testing.T, token string, key *rsa.PrivateKey) string {
	t.Helper()

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return &key.PublicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	require.NoError(t, err)

	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)

	return subject
}

func TestAuth_Signup(t *testing.T) {
	st, svc, key := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, "alice@example.com", u.Email, "email must be normalized")
			require.Equal(t, "Alice", u.Name)
			require.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(u.PasswordHash), []byte("landlord heaven")))
			u.ID = domain.UserID(uuid.New())

			return &u, nil
		})

	user, token, err := svc.Signup(context.Background(),
		"  Alice@Example.com ", "Alice", "landlord heaven")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, user.ID.String(), parseSubject(t, token, key))
}

func TestAuth_Signup_Validation(t *testing.T) {
	_, svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "not-an-email", "Alice", "landlord heaven")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = svc.Signup(ctx, "alice@example.com", "  ", "landlord heaven")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = svc.Signup(ctx, "alice@example.com", "Alice", "short")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAuth_Signup_DuplicateEmail(t *testing.T) {
	st, svc, _ := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, _, err := svc.Signup(context.Background(),
		"alice@example.com", "Alice", "landlord heaven")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAuth_Login(t *testing.T) {
	st, svc, key := newTestAuth(t)
	userID := domain.UserID(uuid.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("landlord heaven"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hash)}

	st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&stored, nil).Times(2)

	user, token, err := svc.Login(context.Background(), "Alice@Example.com", "landlord heaven")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.Equal(t, userID.String(), parseSubject(t, token, key))

	// wrong password reads the same as an unknown account
	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong password")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	st, svc, _ := newTestAuth(t)

	st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "landlord heaven")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuth_User(t *testing.T) {
	st, svc, _ := newTestAuth(t)
	userID := domain.UserID(uuid.New())

	st.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	u, err := svc.User(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, u.ID)

	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, nil)
	_, err = svc.User(context.Background(), userID)
	require.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestAuth_New_BadKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	_, err := auth.New(st, auth.Options{PrivateKey: "not a key"})
	require.Error(t, err)
}

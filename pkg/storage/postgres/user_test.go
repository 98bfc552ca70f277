package postgres_test

import (
	"context"
	"strings"
	"testing"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email := uuid.NewString() + "@example.test"
	u, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        email,
		Name:         "Sam Holt",
		PasswordHash: "bcrypt-hash",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEqual(t, domain.UserID(uuid.Nil), u.ID)
	require.Equal(t, email, u.Email)
	require.False(t, u.CreatedAt.IsZero())

	// the unique index on lower(email) catches duplicates in any casing
	_, err = pgSQL.StoreUser(ctx, domain.User{
		Email:        strings.ToUpper(email),
		Name:         "Someone Else",
		PasswordHash: "other-hash",
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_UserByEmail(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email := uuid.NewString() + "@example.test"
	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        email,
		Name:         "Robin Vale",
		PasswordHash: "bcrypt-hash",
	})
	require.NoError(t, err)

	got, err := pgSQL.UserByEmail(ctx, "nobody@example.test")
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = pgSQL.UserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)

	// lookups are case-insensitive
	upper, err := pgSQL.UserByEmail(ctx, strings.ToUpper(email))
	require.NoError(t, err)
	require.NotNil(t, upper)
	require.Equal(t, stored.ID, upper.ID)
}

func TestPgSQL_UserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeTestUser(t, ctx, pgSQL)

	got, err := pgSQL.UserByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.Email, got.Email)

	got2, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got2)
}

func TestPgSQL_UpdateUserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := storeTestUser(t, ctx, pgSQL)

	name := "Renamed Landlord"
	customer := "cus_" + uuid.NewString()
	updated, err := pgSQL.UpdateUserByID(ctx, stored.ID, storage.UserUpdates{
		Name:             &name,
		StripeCustomerID: &customer,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, name, updated.Name)
	require.Equal(t, customer, updated.StripeCustomerID)
	require.False(t, updated.UpdatedAt.IsZero())
	// untouched fields survive
	require.Equal(t, stored.Email, updated.Email)
	require.Equal(t, stored.PasswordHash, updated.PasswordHash)

	// unknown id
	missing, err := pgSQL.UpdateUserByID(ctx, domain.UserID(uuid.New()), storage.UserUpdates{
		Name: &name,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

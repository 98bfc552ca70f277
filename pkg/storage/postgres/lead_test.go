package postgres_test

import (
	"context"
	"testing"

	"landlordheaven/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertLead(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	email := uuid.NewString() + "@example.test"

	first, err := pgSQL.UpsertLead(ctx, domain.Lead{
		Email:  email,
		Source: "exit_popup",
		Topic:  "section-21-guide",
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotEqual(t, domain.LeadID(uuid.Nil), first.ID)
	require.Equal(t, email, first.Email)
	require.Equal(t, "exit_popup", first.Source)
	require.False(t, first.CreatedAt.IsZero())

	// repeat capture refreshes source and topic, keeps identity
	second, err := pgSQL.UpsertLead(ctx, domain.Lead{
		Email:  email,
		Source: "footer_form",
		Topic:  "arrears-guide",
	})
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "footer_form", second.Source)
	require.Equal(t, "arrears-guide", second.Topic)
	require.False(t, second.UpdatedAt.IsZero())
	require.True(t, first.CreatedAt.Equal(second.CreatedAt))
}

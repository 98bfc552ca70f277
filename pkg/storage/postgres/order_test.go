package postgres_test

import (
	"context"
	"testing"
	"time"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/storage"
	"landlordheaven/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeTestOrder(t *testing.T, ctx context.Context, pgSQL *postgres.PgSQL, caseID domain.CaseID, userID domain.UserID) *domain.Order {
	t.Helper()

	o, err := pgSQL.StoreOrder(ctx, domain.Order{
		CaseID:            caseID,
		UserID:            userID,
		Product:           domain.ProductSection8Notice,
		AmountPence:       3999,
		Currency:          "gbp",
		PaymentStatus:     domain.PaymentStatusPending,
		FulfillmentStatus: domain.FulfillmentStatusUnfulfilled,
	})
	require.NoError(t, err)
	require.NotNil(t, o)

	return o
}

func TestPgSQL_StoreOrder(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	c := storeUserCase(t, ctx, pgSQL, user.ID)

	o := storeTestOrder(t, ctx, pgSQL, c.ID, user.ID)
	require.NotEqual(t, domain.OrderID(uuid.Nil), o.ID)
	require.Equal(t, c.ID, o.CaseID)
	require.Equal(t, user.ID, o.UserID)
	require.EqualValues(t, 3999, o.AmountPence)
	require.Equal(t, "gbp", o.Currency)
	require.Equal(t, domain.PaymentStatusPending, o.PaymentStatus)
	require.Equal(t, domain.FulfillmentStatusUnfulfilled, o.FulfillmentStatus)
	require.True(t, o.PaidAt.IsZero())
	require.False(t, o.CreatedAt.IsZero())
}

func TestPgSQL_UpdateOrderByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	c := storeUserCase(t, ctx, pgSQL, user.ID)
	o := storeTestOrder(t, ctx, pgSQL, c.ID, user.ID)

	// attach the provider session after checkout creation
	sessionID := "cs_test_" + uuid.NewString()
	updated, err := pgSQL.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
		CheckoutSessionID: &sessionID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, sessionID, updated.CheckoutSessionID)
	require.False(t, updated.UpdatedAt.IsZero())

	// marking paid stamps paid_at
	intentID := "pi_test_" + uuid.NewString()
	paid, err := pgSQL.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentIntentID: &intentID,
	})
	require.NoError(t, err)
	require.NotNil(t, paid)
	require.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
	require.Equal(t, intentID, paid.PaymentIntentID)
	require.False(t, paid.PaidAt.IsZero())

	// completing fulfillment stamps fulfilled_at and clears the last error
	empty := ""
	done, err := pgSQL.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
		FulfillmentStatus: domain.FulfillmentStatusCompleted,
		LastError:         &empty,
	})
	require.NoError(t, err)
	require.NotNil(t, done)
	require.Equal(t, domain.FulfillmentStatusCompleted, done.FulfillmentStatus)
	require.False(t, done.FulfilledAt.IsZero())
	require.Empty(t, done.LastError)

	// recording a failure keeps the error text
	failure := "render failed"
	failed, err := pgSQL.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
		FulfillmentStatus: domain.FulfillmentStatusFailed,
		LastError:         &failure,
	})
	require.NoError(t, err)
	require.NotNil(t, failed)
	require.Equal(t, failure, failed.LastError)

	// unknown id
	missing, err := pgSQL.UpdateOrderByID(ctx, domain.OrderID(uuid.New()), storage.OrderUpdates{
		PaymentStatus: domain.PaymentStatusCanceled,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_OrderByCheckoutSession(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	c := storeUserCase(t, ctx, pgSQL, user.ID)
	o := storeTestOrder(t, ctx, pgSQL, c.ID, user.ID)

	sessionID := "cs_test_" + uuid.NewString()
	_, err := pgSQL.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
		CheckoutSessionID: &sessionID,
	})
	require.NoError(t, err)

	got, err := pgSQL.OrderByCheckoutSession(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, o.ID, got.ID)

	got2, err := pgSQL.OrderByCheckoutSession(ctx, "cs_test_unknown")
	require.NoError(t, err)
	require.Nil(t, got2)
}

func TestPgSQL_CaseOrders(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	c1 := storeUserCase(t, ctx, pgSQL, user.ID)
	c2 := storeUserCase(t, ctx, pgSQL, user.ID)

	o1 := storeTestOrder(t, ctx, pgSQL, c1.ID, user.ID)
	o2 := storeTestOrder(t, ctx, pgSQL, c1.ID, user.ID)
	storeTestOrder(t, ctx, pgSQL, c2.ID, user.ID)

	orders, err := pgSQL.CaseOrders(ctx, c1.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	ids := map[domain.OrderID]bool{}
	for _, o := range orders {
		ids[o.ID] = true
	}
	require.True(t, ids[o1.ID])
	require.True(t, ids[o2.ID])
}

func TestPgSQL_UserOrders_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	c := storeUserCase(t, ctx, pgSQL, user.ID)

	stored := make([]*domain.Order, 0, 3)
	for range 3 {
		stored = append(stored, storeTestOrder(t, ctx, pgSQL, c.ID, user.ID))
	}

	now := time.Now().UTC()
	for i, o := range stored {
		created := now.Add(-time.Duration(2-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE orders SET created_at = $1 WHERE id = $2", created, uuid.UUID(o.ID))
		require.NoError(t, err)
	}

	p1, err := pgSQL.UserOrders(ctx, user.ID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Orders, 2)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.UserOrders(ctx, user.ID, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Orders, 1)
	require.Nil(t, p2.NextCursor)
}

func TestPgSQL_SessionOrders(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	sessionID := domain.SessionID(uuid.New())
	anonCase := storeAnonCase(t, ctx, pgSQL, sessionID)
	o := storeTestOrder(t, ctx, pgSQL, anonCase.ID, domain.UserID{})

	// another session's order must stay invisible
	otherCase := storeAnonCase(t, ctx, pgSQL, domain.SessionID(uuid.New()))
	storeTestOrder(t, ctx, pgSQL, otherCase.ID, domain.UserID{})

	page, err := pgSQL.SessionOrders(ctx, sessionID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	require.Equal(t, o.ID, page.Orders[0].ID)
	require.Nil(t, page.NextCursor)

	empty, err := pgSQL.SessionOrders(ctx, domain.SessionID(uuid.New()), time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, empty.Orders)
}

func TestPgSQL_LinkSessionOrders(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeTestUser(t, ctx, pgSQL)
	sessionID := domain.SessionID(uuid.New())
	anonCase := storeAnonCase(t, ctx, pgSQL, sessionID)

	// an order placed while the case was anonymous has no user
	o := storeTestOrder(t, ctx, pgSQL, anonCase.ID, domain.UserID{})
	require.True(t, o.UserID.IsZero())

	// an unrelated session's order must not be touched
	otherSession := domain.SessionID(uuid.New())
	otherCase := storeAnonCase(t, ctx, pgSQL, otherSession)
	otherOrder := storeTestOrder(t, ctx, pgSQL, otherCase.ID, domain.UserID{})

	linkedCases, err := pgSQL.LinkSessionCases(ctx, sessionID, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, linkedCases)

	linkedOrders, err := pgSQL.LinkSessionOrders(ctx, sessionID, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, linkedOrders)

	got, err := pgSQL.OrderByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)

	gotOther, err := pgSQL.OrderByID(ctx, otherOrder.ID)
	require.NoError(t, err)
	require.True(t, gotOther.UserID.IsZero())

	// linking again is a no-op
	linkedAgain, err := pgSQL.LinkSessionOrders(ctx, sessionID, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, linkedAgain)
}

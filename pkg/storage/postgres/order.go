package postgres

import (
	"context"
	"fmt"
	"time"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	ordersTable = "orders"
)

func (p *PgSQL) StoreOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	var pgOrder PgOrder
	pgOrder.FromDomain(o)

	var row PgOrder
	if _, err := p.Builder.Insert(ordersTable).
		Rows(pgOrder).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store order into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// OrderByID returns an order by its ID, excluding soft-deleted rows.
func (p *PgSQL) OrderByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// OrderByCheckoutSession returns the order holding the given provider
// checkout session ID. Session IDs are unique, so at most one row matches.
func (p *PgSQL) OrderByCheckoutSession(ctx context.Context, sessionID string) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(
			goqu.I("checkout_session_id").Eq(sessionID),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order by checkout session: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CaseOrders returns all live orders of a case, newest first.
func (p *PgSQL) CaseOrders(ctx context.Context, caseID domain.CaseID) ([]domain.Order, error) {
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(
			goqu.I("case_id").Eq(uuid.UUID(caseID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch case orders from pg: %w", err)
	}

	return pgOrdersToDomain(rows), nil
}

// UserOrders returns a page of orders for a user filtered by optional cursor
// and limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserOrders(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserOrders, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(ordersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgOrder
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserOrders{}, fmt.Errorf("could not fetch user orders from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserOrders{
		Orders:     pgOrdersToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// SessionOrders returns a page of unclaimed orders whose case is bound to the
// given session. The join mirrors LinkSessionOrders so a session sees exactly
// the orders a claim would link.
func (p *PgSQL) SessionOrders(ctx context.Context,
	sessionID domain.SessionID,
	cursor time.Time,
	limit uint) (storage.UserOrders, error) {
	sessionCases := p.Builder.From(casesTable).
		Select("id").
		Where(
			goqu.I("anon_session_id").Eq(uuid.UUID(sessionID)),
			goqu.I("deleted_at").IsNull(),
		)

	w := []goqu.Expression{
		goqu.I("user_id").IsNull(),
		goqu.I("deleted_at").IsNull(),
		goqu.I("case_id").In(sessionCases),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserOrders{}, fmt.Errorf("could not fetch session orders from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserOrders{
		Orders:     pgOrdersToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// UpdateOrderByID updates a single order with the provided fields and returns
// the updated row. Transitioning payment_status to paid stamps paid_at;
// transitioning fulfillment_status to completed stamps fulfilled_at.
// updated_at is always set; soft-deleted rows are ignored.
func (p *PgSQL) UpdateOrderByID(ctx context.Context,
	id domain.OrderID,
	updates storage.OrderUpdates) (*domain.Order, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.PaymentStatus != "" {
		rec["payment_status"] = string(updates.PaymentStatus)
		if updates.PaymentStatus == domain.PaymentStatusPaid {
			rec["paid_at"] = goqu.L("CURRENT_TIMESTAMP")
		}
	}
	if updates.FulfillmentStatus != "" {
		rec["fulfillment_status"] = string(updates.FulfillmentStatus)
		if updates.FulfillmentStatus == domain.FulfillmentStatusCompleted {
			rec["fulfilled_at"] = goqu.L("CURRENT_TIMESTAMP")
		}
	}
	if updates.CheckoutSessionID != nil {
		rec["checkout_session_id"] = *updates.CheckoutSessionID
	}
	if updates.PaymentIntentID != nil {
		rec["payment_intent_id"] = *updates.PaymentIntentID
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgOrder
	found, err := p.Builder.Update(ordersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgOrder{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update order in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LinkSessionOrders stamps the user onto unclaimed orders whose case belongs
// to the given session. Runs alongside LinkSessionCases when a session is
// claimed, so purchases made anonymously follow the cases into the account.
func (p *PgSQL) LinkSessionOrders(ctx context.Context,
	sessionID domain.SessionID,
	userID domain.UserID) (int64, error) {
	sessionCases := p.Builder.From(casesTable).
		Select("id").
		Where(
			goqu.I("anon_session_id").Eq(uuid.UUID(sessionID)),
			goqu.I("deleted_at").IsNull(),
		)

	res, err := p.Builder.Update(ordersTable).
		Set(goqu.Record{
			"user_id":    uuid.UUID(userID),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("user_id").IsNull(),
		goqu.I("deleted_at").IsNull(),
		goqu.I("case_id").In(sessionCases),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not link session orders in pg: %w", err)
	}

	linked, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count linked orders: %w", err)
	}

	return linked, nil
}

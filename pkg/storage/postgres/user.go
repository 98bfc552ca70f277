package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	usersTable = "users"
)

// StoreUser inserts a user. A unique-violation on the email index is reported
// as storage.ErrDuplicate so callers can map it to a semantic conflict.
func (p *PgSQL) StoreUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(u)

	var row PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("could not store user into pg: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// UserByID returns a user by ID, excluding soft-deleted rows.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByEmail returns a user by email, case-insensitively.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.Func("lower", goqu.I("email")).Eq(strings.ToLower(email)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUserByID updates a single user with the provided fields and returns
// the updated row. updated_at is set automatically.
func (p *PgSQL) UpdateUserByID(ctx context.Context,
	id domain.UserID,
	updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.StripeCustomerID != nil {
		rec["stripe_customer_id"] = *updates.StripeCustomerID
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

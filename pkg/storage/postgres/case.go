package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	casesTable = "cases"
)

func (p *PgSQL) StoreCase(ctx context.Context, c domain.Case) (*domain.Case, error) {
	var pgCase PgCase
	if err := pgCase.FromDomain(c); err != nil {
		return nil, err
	}

	var row PgCase
	if _, err := p.Builder.Insert(casesTable).
		Rows(pgCase).
		Returning(&PgCase{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store case into pg: %w", err)
	}

	return row.ToDomain()
}

// CaseByID returns a case by its ID, excluding soft-deleted rows. Ownership is
// not checked here; callers decide who may see the row.
func (p *PgSQL) CaseByID(ctx context.Context, id domain.CaseID) (*domain.Case, error) {
	var row PgCase
	found, err := p.Builder.From(casesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch case by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// listCases runs the shared pagination query for UserCases and SessionCases.
// Results are ordered by created_at DESC, id DESC; one extra row is fetched to
// detect whether a next page exists.
func (p *PgSQL) listCases(ctx context.Context,
	where []goqu.Expression,
	status domain.CaseStatus,
	cursor time.Time,
	limit uint) (storage.UserCases, error) {
	if status != "" {
		where = append(where, goqu.I("status").Eq(string(status)))
	} else {
		// archived cases are only listed when asked for explicitly
		where = append(where, goqu.I("status").Neq(string(domain.CaseStatusArchived)))
	}
	if !cursor.IsZero() {
		where = append(where, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(casesTable).
		Where(where...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgCase
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserCases{}, fmt.Errorf("could not fetch cases from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgCasesToDomain(rows)
	if err != nil {
		return storage.UserCases{}, err
	}

	return storage.UserCases{
		Cases:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// UserCases returns a page of cases owned by the given user.
func (p *PgSQL) UserCases(ctx context.Context,
	userID domain.UserID,
	status domain.CaseStatus,
	cursor time.Time,
	limit uint) (storage.UserCases, error) {
	return p.listCases(ctx, []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}, status, cursor, limit)
}

// SessionCases returns a page of unclaimed cases bound to the given session.
func (p *PgSQL) SessionCases(ctx context.Context,
	sessionID domain.SessionID,
	status domain.CaseStatus,
	cursor time.Time,
	limit uint) (storage.UserCases, error) {
	return p.listCases(ctx, []goqu.Expression{
		goqu.I("anon_session_id").Eq(uuid.UUID(sessionID)),
		goqu.I("user_id").IsNull(),
		goqu.I("deleted_at").IsNull(),
	}, status, cursor, limit)
}

// UpdateCaseByID updates a single case with the provided fields and returns
// the updated row. updated_at is set automatically; soft-deleted rows are
// ignored.
func (p *PgSQL) UpdateCaseByID(ctx context.Context,
	id domain.CaseID,
	updates storage.CaseUpdates) (*domain.Case, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Facts != nil {
		b, err := json.Marshal(updates.Facts)
		if err != nil {
			return nil, fmt.Errorf("could not marshal case facts: %w", err)
		}

		rec["facts"] = b
	}
	if updates.Progress != nil {
		b, err := json.Marshal(updates.Progress)
		if err != nil {
			return nil, fmt.Errorf("could not marshal wizard progress: %w", err)
		}

		rec["progress"] = b
	}
	if updates.Assessment != nil {
		b, err := json.Marshal(updates.Assessment)
		if err != nil {
			return nil, fmt.Errorf("could not marshal assessment: %w", err)
		}

		rec["assessment"] = b
	}

	var row PgCase
	found, err := p.Builder.Update(casesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgCase{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update case in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LinkSessionCases claims all anonymous cases of a session for a user. The
// user_id IS NULL guard makes the claim idempotent and prevents re-claiming
// rows that already belong to an account.
func (p *PgSQL) LinkSessionCases(ctx context.Context,
	sessionID domain.SessionID,
	userID domain.UserID) (int64, error) {
	res, err := p.Builder.Update(casesTable).
		Set(goqu.Record{
			"user_id":    uuid.UUID(userID),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("anon_session_id").Eq(uuid.UUID(sessionID)),
		goqu.I("user_id").IsNull(),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not link session cases in pg: %w", err)
	}

	linked, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count linked cases: %w", err)
	}

	return linked, nil
}

// ArchiveStaleAnonymousCases archives every anonymous in-progress case created
// before the given time, returning the IDs of the rows touched so the caller
// can clean up their previews.
func (p *PgSQL) ArchiveStaleAnonymousCases(ctx context.Context, before time.Time) ([]domain.CaseID, error) {
	var rows []struct {
		ID uuid.UUID `db:"id"`
	}
	if err := p.Builder.Update(casesTable).
		Set(goqu.Record{
			"status":     string(domain.CaseStatusArchived),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("user_id").IsNull(),
		goqu.I("status").Eq(string(domain.CaseStatusInProgress)),
		goqu.I("created_at").Lt(before),
		goqu.I("deleted_at").IsNull(),
	).Returning("id").Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not archive stale anonymous cases in pg: %w", err)
	}

	out := make([]domain.CaseID, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CaseID(r.ID))
	}

	return out, nil
}

// DeleteCase performs a soft delete by setting deleted_at for the given case
// ID, returning the deleted record.
func (p *PgSQL) DeleteCase(ctx context.Context, id domain.CaseID) (*domain.Case, error) {
	var row PgCase
	found, err := p.Builder.Update(casesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgCase{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete case in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

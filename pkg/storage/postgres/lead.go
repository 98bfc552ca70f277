package postgres

import (
	"context"
	"fmt"

	"landlordheaven/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	leadsTable = "leads"
)

// UpsertLead inserts a lead or refreshes an existing one keyed by email.
// Emails are stored lowercased by the service layer, so the plain unique
// index on email is the conflict target.
func (p *PgSQL) UpsertLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	var pgLead PgLead
	pgLead.FromDomain(lead)

	var row PgLead
	if _, err := p.Builder.Insert(leadsTable).
		Rows(pgLead).
		OnConflict(goqu.DoUpdate("email", goqu.Record{
			"source":     pgLead.Source,
			"topic":      pgLead.Topic,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert lead into pg: %w", err)
	}

	return row.ToDomain(), nil
}

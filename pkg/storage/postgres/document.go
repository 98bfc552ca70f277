package postgres

import (
	"context"
	"fmt"

	"landlordheaven/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	documentsTable = "documents"
)

func (p *PgSQL) StoreDocuments(ctx context.Context, docs ...domain.Document) ([]domain.Document, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	pgDocs := domainDocumentsToPg(docs)

	var result []PgDocument
	if err := p.Builder.Insert(documentsTable).
		Rows(pgDocs).
		Returning(&PgDocument{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store documents into pg: %w", err)
	}

	return pgDocumentsToDomain(result), nil
}

// DocumentByID returns a document by its ID, excluding soft-deleted rows.
func (p *PgSQL) DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CaseDocuments returns all live documents of a case, newest first.
func (p *PgSQL) CaseDocuments(ctx context.Context, caseID domain.CaseID) ([]domain.Document, error) {
	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Where(
			goqu.I("case_id").Eq(uuid.UUID(caseID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch case documents from pg: %w", err)
	}

	return pgDocumentsToDomain(rows), nil
}

// DeleteCasePreviews soft-deletes the live previews of a case, optionally
// narrowed to one document type. Final documents are never touched.
func (p *PgSQL) DeleteCasePreviews(ctx context.Context,
	caseID domain.CaseID,
	docType domain.DocumentType) (int64, error) {
	w := []goqu.Expression{
		goqu.I("case_id").Eq(uuid.UUID(caseID)),
		goqu.I("is_preview").IsTrue(),
		goqu.I("deleted_at").IsNull(),
	}
	if docType != "" {
		w = append(w, goqu.I("document_type").Eq(string(docType)))
	}

	res, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(w...).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete case previews in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted previews: %w", err)
	}

	return deleted, nil
}

// DeleteOrderDocuments soft-deletes the live documents fulfilled for an
// order. Used when fulfillment runs again after a fact edit so the fresh
// documents replace the stale ones.
func (p *PgSQL) DeleteOrderDocuments(ctx context.Context, orderID domain.OrderID) (int64, error) {
	res, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("order_id").Eq(uuid.UUID(orderID)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete order documents in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted order documents: %w", err)
	}

	return deleted, nil
}

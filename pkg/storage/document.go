package storage

import (
	"context"

	"landlordheaven/pkg/domain"
)

// DocumentStorage defines persistence operations for generated documents.
type DocumentStorage interface {
	// StoreDocuments inserts one or more documents and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreDocuments(ctx context.Context, docs ...domain.Document) ([]domain.Document, error)
	// DocumentByID fetches a document by its ID, excluding soft-deleted rows.
	// Returns nil when not found.
	DocumentByID(ctx context.Context, ID domain.DocumentID) (*domain.Document, error)
	// CaseDocuments returns all live documents of a case, newest first.
	CaseDocuments(ctx context.Context, caseID domain.CaseID) ([]domain.Document, error)
	// DeleteCasePreviews soft-deletes the previews of a case so a regenerated
	// preview replaces its predecessor. When docType is non-empty only
	// previews of that type are removed. Returns the number of rows deleted.
	DeleteCasePreviews(ctx context.Context, caseID domain.CaseID, docType domain.DocumentType) (int64, error)
	// DeleteOrderDocuments soft-deletes the documents fulfilled for an order so
	// regenerated documents replace their predecessors. Returns the number of
	// rows deleted.
	DeleteOrderDocuments(ctx context.Context, orderID domain.OrderID) (int64, error)
}

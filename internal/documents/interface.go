package documents

import (
	"context"

	"landlordheaven/pkg/domain"
)

//go:generate mockgen -package mockdocuments -source=interface.go -destination=mock/mockdocuments.go *
type Documents interface {
	Preview(ctx context.Context,
		actor domain.Actor,
		caseID domain.CaseID,
		docType domain.DocumentType) (*domain.Document, error)
	Generate(ctx context.Context,
		caseID domain.CaseID,
		orderID domain.OrderID,
		types []domain.DocumentType) ([]domain.Document, error)
	List(ctx context.Context, actor domain.Actor, caseID domain.CaseID) ([]domain.Document, error)
	Get(ctx context.Context, actor domain.Actor, docID domain.DocumentID) (*domain.Document, error)
	DownloadURL(ctx context.Context, actor domain.Actor, docID domain.DocumentID) (string, error)
}

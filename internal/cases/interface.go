package cases

import (
	"context"

	"landlordheaven/pkg/domain"
)

// FactsUpdate carries the optional pieces of a facts edit. Nil fields are
// left untouched; provided facts are merged into the stored ones rather than
// replacing them wholesale.
type FactsUpdate struct {
	Facts    *domain.CaseFacts
	Progress *domain.WizardProgress
}

//go:generate mockgen -package mockcases -source=interface.go -destination=mock/mockcases.go *
type Cases interface {
	Create(ctx context.Context, actor domain.Actor, caseType domain.CaseType) (*domain.Case, error)
	Get(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error)
	List(ctx context.Context,
		actor domain.Actor,
		status domain.CaseStatus,
		cursor string,
		limit uint) ([]domain.Case, string, error)
	UpdateFacts(ctx context.Context,
		actor domain.Actor,
		caseID domain.CaseID,
		update FactsUpdate) (*domain.Case, error)
	Claim(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (int64, error)
	Archive(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error)
	Restore(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error)
	Delete(ctx context.Context, actor domain.Actor, caseID domain.CaseID) error
}

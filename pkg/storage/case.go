package storage

import (
	"context"
	"time"

	"landlordheaven/pkg/domain"
)

// CaseUpdates describes a set of optional fields that can be applied to an
// existing case during an update. Only provided fields are changed.
type CaseUpdates struct {
	// Status is the new lifecycle status to set. Empty means unchanged.
	Status domain.CaseStatus
	// Facts, when provided, replaces the stored facts blob.
	Facts *domain.CaseFacts
	// Progress, when provided, replaces the stored wizard progress.
	Progress *domain.WizardProgress
	// Assessment, when provided, replaces the stored assessment.
	Assessment *domain.Assessment
}

// UserCases groups a page of cases together with an optional NextCursor used
// for pagination.
type UserCases struct {
	// Cases contains the current page of case records.
	Cases []domain.Case
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// CaseStorage defines CRUD and query operations related to cases.
// Implementations must apply soft-delete filtering everywhere.
type CaseStorage interface {
	// StoreCase inserts a case and returns the stored row as it exists in the
	// database (including generated fields).
	StoreCase(ctx context.Context, c domain.Case) (*domain.Case, error)
	// CaseByID fetches a case by its ID regardless of owner. Access control is
	// the caller's responsibility. Returns nil when not found or soft-deleted.
	CaseByID(ctx context.Context, ID domain.CaseID) (*domain.Case, error)
	// UserCases returns a page of a user's cases created before the optional
	// cursor time, newest first. If status is non-empty, results are filtered
	// to that status; otherwise archived cases are excluded.
	UserCases(ctx context.Context,
		userID domain.UserID,
		status domain.CaseStatus,
		cursor time.Time,
		limit uint) (UserCases, error)
	// SessionCases is UserCases for anonymous sessions: it returns unclaimed
	// cases bound to the given session.
	SessionCases(ctx context.Context,
		sessionID domain.SessionID,
		status domain.CaseStatus,
		cursor time.Time,
		limit uint) (UserCases, error)
	// UpdateCaseByID updates a single case and returns the updated row. The
	// update ignores soft-deleted rows and sets updated_at automatically.
	// Returns nil when no row matched.
	UpdateCaseByID(ctx context.Context, ID domain.CaseID, updates CaseUpdates) (*domain.Case, error)
	// LinkSessionCases claims all anonymous cases of a session for the given
	// user. Only rows whose user_id is NULL are touched, so a session can
	// never steal cases that already belong to someone. Returns the number of
	// cases linked.
	LinkSessionCases(ctx context.Context, sessionID domain.SessionID, userID domain.UserID) (int64, error)
	// DeleteCase performs a soft delete and returns the deleted case, or nil
	// if it was not found.
	DeleteCase(ctx context.Context, ID domain.CaseID) (*domain.Case, error)
	// ArchiveStaleAnonymousCases archives all anonymous in-progress cases
	// created before the given time and returns the IDs of the cases touched.
	// Used by the retention sweep.
	ArchiveStaleAnonymousCases(ctx context.Context, before time.Time) ([]domain.CaseID, error)
}

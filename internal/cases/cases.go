package cases

import (
	"context"
	"fmt"
	"time"

	"landlordheaven/internal/config"
	"landlordheaven/internal/orders"
	"landlordheaven/internal/wizard"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Options configure the case lifecycle rules. These settings are typically
// derived from application configuration.
type Options struct {
	// EditWindow is how long after the latest fulfillment a case's facts may
	// still be edited. Edits inside the window requeue fulfillment so the
	// purchased documents are regenerated from the new facts.
	EditWindow time.Duration
	// FulfillMaxAttempts is the maximum number of attempts for requeued
	// fulfillment jobs.
	FulfillMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		EditWindow:         cfg.Cases.EditWindow,
		FulfillMaxAttempts: cfg.Worker.FulfillMaxAttempts,
	}
}

// cases is the concrete implementation of the Cases interface. It coordinates
// persistence with the storage layer and reruns the decision engine whenever
// facts change.
type cases struct {
	// options holds runtime configuration for lifecycle rules.
	options Options
	// storage is the persistence layer used to store cases and manage jobs.
	storage storage.Storage
}

// Create opens a new case of the given type for the actor. Anonymous actors
// must carry a session ID; the case stays bound to that session until it is
// claimed by an account.
func (s cases) Create(ctx context.Context, actor domain.Actor, caseType domain.CaseType) (*domain.Case, error) {
	if !caseType.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown case type %q", caseType)
	}
	if !actor.Authenticated() && actor.SessionID.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "a session is required to create a case")
	}

	stored, err := s.storage.StoreCase(ctx, domain.Case{
		UserID:        actor.UserID,
		AnonSessionID: actor.SessionID,
		Type:          caseType,
		Status:        domain.CaseStatusInProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store case: %w", err)
	}

	return stored, nil
}

// Get fetches a single case. Cases the actor does not own are reported as
// not found so that IDs cannot be probed for existence.
func (s cases) Get(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error) {
	return s.caseForActor(ctx, s.storage, actor, caseID)
}

// List returns a page of the actor's cases filtered by status. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s cases) List(ctx context.Context,
	actor domain.Actor,
	status domain.CaseStatus,
	cursor string,
	limit uint) ([]domain.Case, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}
	limit = clampPageSize(limit)

	var (
		page storage.UserCases
		err  error
	)
	switch {
	case actor.Authenticated():
		page, err = s.storage.UserCases(ctx, actor.UserID, status, cursorTime, limit)
	case !actor.SessionID.IsZero():
		page, err = s.storage.SessionCases(ctx, actor.SessionID, status, cursorTime, limit)
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "a session is required to list cases")
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not get cases: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Cases, next, nil
}

// UpdateFacts merges the submitted fact groups into the case, reruns the
// decision engine and advances the lifecycle when the wizard completes.
// Edits to a fulfilled case are only allowed inside the edit window and
// requeue fulfillment so the purchased documents are regenerated.
func (s cases) UpdateFacts(ctx context.Context,
	actor domain.Actor,
	caseID domain.CaseID,
	update FactsUpdate) (*domain.Case, error) {
	var updated *domain.Case
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		c, err := s.caseForActor(ctx, tx, actor, caseID)
		if err != nil {
			return err
		}
		if c.Status == domain.CaseStatusArchived {
			return serrors.With(serrors.ErrConflict, "case is archived")
		}

		caseOrders, err := tx.CaseOrders(ctx, caseID)
		if err != nil {
			return fmt.Errorf("could not get case orders: %w", err)
		}
		stale := fulfilledOrders(caseOrders)
		if deadline, ok := latestFulfillment(stale); ok && time.Now().After(deadline.Add(s.options.EditWindow)) {
			return serrors.With(serrors.ErrForbidden, "the editing window for this case has closed")
		}

		facts := c.Facts
		if update.Facts != nil {
			facts = facts.Merge(*update.Facts)
		}
		// the stored assessment always reflects the stored facts
		assessment := wizard.Analyze(c.Type, facts, time.Now())

		updates := storage.CaseUpdates{
			Facts:      &facts,
			Progress:   update.Progress,
			Assessment: &assessment,
		}
		if update.Progress != nil && update.Progress.Complete && c.Status == domain.CaseStatusInProgress {
			updates.Status = domain.CaseStatusCompleted
		}

		updated, err = tx.UpdateCaseByID(ctx, caseID, updates)
		if err != nil {
			return fmt.Errorf("could not update case: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "case not found")
		}

		if update.Facts != nil {
			for _, o := range stale {
				if _, err := tx.UpdateOrderByID(ctx, o.ID, storage.OrderUpdates{
					FulfillmentStatus: domain.FulfillmentStatusUnfulfilled,
				}); err != nil {
					return fmt.Errorf("could not reset order fulfillment: %w", err)
				}
				if _, err := tx.AddJob(ctx,
					orders.NewFulfillmentJobArgs(o.ID, s.options.FulfillMaxAttempts), nil); err != nil {
					return fmt.Errorf("could not add fulfillment job: %w", err)
				}
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update facts: %w", err)
	}

	return updated, nil
}

// Claim links all unclaimed cases and orders of the session to the user.
// Cases already owned by someone are never touched, so the operation is safe
// to repeat on every login. It returns the number of cases linked.
func (s cases) Claim(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (int64, error) {
	if sessionID.IsZero() {
		return 0, nil
	}

	var linked int64
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.LinkSessionCases(ctx, sessionID, userID)
		if err != nil {
			return fmt.Errorf("could not link cases: %w", err)
		}
		linked = n

		if _, err := tx.LinkSessionOrders(ctx, sessionID, userID); err != nil {
			return fmt.Errorf("could not link orders: %w", err)
		}

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not claim session: %w", err)
	}

	return linked, nil
}

// Archive puts a case away. Archived cases are read-only and hidden from
// default listings. Archiving an already archived case is a no-op.
func (s cases) Archive(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error) {
	c, err := s.caseForActor(ctx, s.storage, actor, caseID)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CaseStatusArchived {
		return c, nil
	}

	updated, err := s.storage.UpdateCaseByID(ctx, caseID, storage.CaseUpdates{
		Status: domain.CaseStatusArchived,
	})
	if err != nil {
		return nil, fmt.Errorf("could not archive case: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	return updated, nil
}

// Restore brings an archived case back. The restored status is derived from
// the wizard progress rather than remembered, so a case completed before
// archiving comes back as completed.
func (s cases) Restore(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error) {
	c, err := s.caseForActor(ctx, s.storage, actor, caseID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CaseStatusArchived {
		return c, nil
	}

	status := domain.CaseStatusInProgress
	if c.Progress.Complete {
		status = domain.CaseStatusCompleted
	}

	updated, err := s.storage.UpdateCaseByID(ctx, caseID, storage.CaseUpdates{Status: status})
	if err != nil {
		return nil, fmt.Errorf("could not restore case: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	return updated, nil
}

// Delete soft-deletes a case. Cases with a paid order cannot be deleted, only
// archived, because the purchased documents must stay reachable.
func (s cases) Delete(ctx context.Context, actor domain.Actor, caseID domain.CaseID) error {
	if _, err := s.caseForActor(ctx, s.storage, actor, caseID); err != nil {
		return err
	}

	caseOrders, err := s.storage.CaseOrders(ctx, caseID)
	if err != nil {
		return fmt.Errorf("could not get case orders: %w", err)
	}
	for _, o := range caseOrders {
		if o.PaymentStatus == domain.PaymentStatusPaid {
			return serrors.With(serrors.ErrConflict, "cases with a paid order can only be archived")
		}
	}

	deleted, err := s.storage.DeleteCase(ctx, caseID)
	if err != nil {
		return fmt.Errorf("could not delete case: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "case not found")
	}

	return nil
}

// caseForActor fetches a case and checks the actor may act on it. Missing and
// foreign cases are both reported as not found.
func (s cases) caseForActor(ctx context.Context,
	store storage.AllStorage,
	actor domain.Actor,
	caseID domain.CaseID) (*domain.Case, error) {
	c, err := store.CaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case: %w", err)
	}
	if c == nil || !actor.Owns(c) {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	return c, nil
}

// fulfilledOrders returns the orders whose final documents have been
// generated at least once.
func fulfilledOrders(all []domain.Order) []domain.Order {
	var out []domain.Order
	for _, o := range all {
		if o.PaymentStatus == domain.PaymentStatusPaid && !o.FulfilledAt.IsZero() {
			out = append(out, o)
		}
	}

	return out
}

// latestFulfillment returns the most recent fulfillment time among the given
// orders, reporting false when none have been fulfilled.
func latestFulfillment(fulfilled []domain.Order) (time.Time, bool) {
	var latest time.Time
	for _, o := range fulfilled {
		if o.FulfilledAt.After(latest) {
			latest = o.FulfilledAt
		}
	}

	return latest, !latest.IsZero()
}

// clampPageSize bounds a requested page size, defaulting when unset.
func clampPageSize(limit uint) uint {
	if limit == 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

// New creates a new Cases instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Cases {
	return &cases{
		options: options,
		storage: storage,
	}
}

package storage

import (
	"context"

	"landlordheaven/pkg/domain"
)

// LeadStorage defines persistence operations for captured leads.
type LeadStorage interface {
	// UpsertLead inserts a lead or, when the email is already known, refreshes
	// its source and topic. Returns the stored row either way.
	UpsertLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
}

package leads

import (
	"context"

	"landlordheaven/pkg/domain"
)

//go:generate mockgen -package mockleads -source=interface.go -destination=mock/mockleads.go *
type Leads interface {
	// Capture records a marketing lead. Captures are idempotent per email;
	// repeat captures refresh the source and topic of the existing lead.
	Capture(ctx context.Context, email, source, topic string) (*domain.Lead, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadID uniquely identifies a captured lead.
type LeadID uuid.UUID

func (id LeadID) String() string {
	return uuid.UUID(id).String()
}

// Lead is an email address captured by a marketing surface before (or
// instead of) signup. Leads are deduplicated by email; repeat captures
// refresh the source and topic.
type Lead struct {
	ID    LeadID `json:"id"`
	Email string `json:"email"`
	// Source is the surface that captured the lead, e.g. "exit_popup".
	Source string `json:"source,omitempty"`
	// Topic is the guide or subject that prompted the capture.
	Topic string `json:"topic,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

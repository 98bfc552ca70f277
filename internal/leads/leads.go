// Package leads captures marketing email leads from public surfaces such as
// exit popups and guide downloads.
package leads

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var capturedLeads = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "leads_captured_total",
	Help: "Number of marketing leads captured, labeled by source.",
}, []string{"source"})

// leads is the concrete implementation of the Leads interface.
type leads struct {
	storage storage.Storage
}

// Capture validates and stores a lead. The email is normalized to lower case;
// source and topic are free-form strings chosen by the capturing surface.
func (s leads) Capture(ctx context.Context, email, source, topic string) (*domain.Lead, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	lead, err := s.storage.UpsertLead(ctx, domain.Lead{
		Email:  email,
		Source: strings.TrimSpace(source),
		Topic:  strings.TrimSpace(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store lead: %w", err)
	}

	capturedLeads.WithLabelValues(lead.Source).Inc()

	return lead, nil
}

// New creates a new Leads instance backed by the provided storage.
func New(storage storage.Storage) Leads {
	return &leads{
		storage: storage,
	}
}

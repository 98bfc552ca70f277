package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseID uniquely identifies a case.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CaseID uuid.UUID

func (id CaseID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID as its canonical UUID string.
func (id CaseID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the ID from its canonical UUID string.
func (id *CaseID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = CaseID(u)

	return nil
}

// CaseType categorizes what the landlord is trying to achieve with a case.
type CaseType string

const (
	// CaseTypeEviction covers possession proceedings: Section 8 and/or
	// Section 21 notices and the wizard that picks between them.
	CaseTypeEviction CaseType = "eviction"
	// CaseTypeMoneyClaim covers recovery of rent arrears without possession,
	// starting with a letter before claim.
	CaseTypeMoneyClaim CaseType = "money_claim"
	// CaseTypeTenancyAgreement covers drafting a new assured shorthold
	// tenancy agreement.
	CaseTypeTenancyAgreement CaseType = "tenancy_agreement"
)

// Valid reports whether t is one of the known case types.
func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeEviction, CaseTypeMoneyClaim, CaseTypeTenancyAgreement:
		return true
	}

	return false
}

// CaseStatus represents the lifecycle state of a case.
type CaseStatus string

const (
	// CaseStatusInProgress indicates the wizard has not been completed yet.
	CaseStatusInProgress CaseStatus = "in_progress"
	// CaseStatusCompleted indicates all wizard steps are done and the case is
	// ready for checkout.
	CaseStatusCompleted CaseStatus = "completed"
	// CaseStatusArchived indicates the user has put the case away. Archived
	// cases are read-only and hidden from default listings.
	CaseStatusArchived CaseStatus = "archived"
)

// Valid reports whether s is one of the known case statuses.
func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusInProgress, CaseStatusCompleted, CaseStatusArchived:
		return true
	}

	return false
}

// WizardProgress records how far through the intake wizard a case has
// progressed. The frontend owns the step vocabulary; the backend only cares
// about Complete, which gates checkout.
type WizardProgress struct {
	// Step is the wizard step the user is currently on.
	Step string `json:"step,omitempty"`
	// CompletedSteps lists the steps the user has finished, in order.
	CompletedSteps []string `json:"completedSteps,omitempty"`
	// Complete is set once the final step has been submitted.
	Complete bool `json:"complete,omitempty"`
}

// Case represents a single matter a landlord is working on: an eviction, a
// money claim, or a tenancy agreement. Facts are collected incrementally by
// the wizard and the latest assessment is kept alongside them.
type Case struct {
	// ID is the unique identifier of the case.
	ID CaseID `json:"id"`
	// UserID is the owning user. It is zero for anonymous cases and may be set
	// exactly once, when the session that created the case is claimed.
	UserID UserID `json:"userId,omitzero"`
	// AnonSessionID is the browser session that created the case. It is kept
	// after claiming for provenance.
	AnonSessionID SessionID `json:"-"`

	// Type says what the case is for. It is fixed at creation.
	Type CaseType `json:"type"`
	// Status is the current lifecycle state of the case.
	Status CaseStatus `json:"status"`
	// Facts is everything the wizard has collected so far.
	Facts CaseFacts `json:"facts"`
	// Progress tracks the wizard position.
	Progress WizardProgress `json:"progress"`
	// Assessment is the decision engine's latest output for Facts. Nil until
	// the wizard has run at least once.
	Assessment *Assessment `json:"assessment,omitempty"`

	// CreatedAt is the time when the case was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the case was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the case was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Anonymous reports whether the case has not been claimed by a user yet.
func (c *Case) Anonymous() bool {
	return c.UserID.IsZero()
}

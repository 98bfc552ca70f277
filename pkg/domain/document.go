package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies a generated document.
type DocumentID uuid.UUID

func (id DocumentID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID as its canonical UUID string.
func (id DocumentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the ID from its canonical UUID string.
func (id *DocumentID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = DocumentID(u)

	return nil
}

// DocumentType identifies what kind of document was generated.
type DocumentType string

const (
	// DocumentTypeSection8Notice is Form 3, the notice seeking possession
	// under Housing Act 1988 section 8.
	DocumentTypeSection8Notice DocumentType = "section8_notice"
	// DocumentTypeSection21Notice is Form 6A, the notice under section 21.
	DocumentTypeSection21Notice DocumentType = "section21_notice"
	// DocumentTypeLetterBeforeClaim is the pre-action letter for rent
	// arrears, including the arrears schedule.
	DocumentTypeLetterBeforeClaim DocumentType = "letter_before_claim"
	// DocumentTypeTenancyAgreement is a drafted assured shorthold tenancy
	// agreement.
	DocumentTypeTenancyAgreement DocumentType = "tenancy_agreement"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeSection8Notice, DocumentTypeSection21Notice,
		DocumentTypeLetterBeforeClaim, DocumentTypeTenancyAgreement:
		return true
	}

	return false
}

// Document is a rendered PDF belonging to a case. Previews carry a watermark
// and no order; final documents are produced by fulfillment and reference the
// order that paid for them.
type Document struct {
	// ID is the unique identifier of the document.
	ID DocumentID `json:"id"`
	// CaseID is the case the document belongs to.
	CaseID CaseID `json:"caseId"`
	// OrderID is the order that paid for the document. Zero for previews.
	OrderID OrderID `json:"orderId,omitzero"`

	// Type says which document this is.
	Type DocumentType `json:"type"`
	// IsPreview marks watermarked previews generated before purchase.
	IsPreview bool `json:"isPreview"`

	// ObjectKey locates the PDF in object storage. Download URLs are signed
	// on demand; the key itself is not a URL.
	ObjectKey string `json:"-"`
	// SizeBytes is the size of the stored PDF.
	SizeBytes int64 `json:"sizeBytes"`
	// ContentSHA256 is the hex digest of the stored PDF.
	ContentSHA256 string `json:"-"`

	// CreatedAt is the time when the document was generated.
	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks when the document was superseded or removed; zero value
	// means live.
	DeletedAt time.Time `json:"-"`
}

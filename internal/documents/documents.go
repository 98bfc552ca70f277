// Package documents renders the legal documents sold by the catalog and keeps
// the rendered PDFs in object storage. Previews are watermarked and free;
// final documents are produced by the fulfillment worker after payment.
package documents

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"landlordheaven/internal/config"
	"landlordheaven/internal/wizard"
	"landlordheaven/pkg/blobstore"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
	"landlordheaven/pkg/storage"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var documentsRendered = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "documents_rendered_total",
	Help: "Number of PDF documents rendered, labeled by document type and kind.",
}, []string{"type", "kind"})

// Options configure document delivery. These settings are typically derived
// from application configuration.
type Options struct {
	// PresignTTL is how long generated download links stay valid.
	PresignTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PresignTTL: cfg.ObjectStore.PresignTTL,
	}
}

// documents is the concrete implementation of the Documents interface. It
// coordinates rendering, object storage and the document rows.
type documents struct {
	options Options
	storage storage.Storage
	blobs   blobstore.Store
}

// Preview renders a watermarked preview of the given document type, replacing
// any earlier preview of that type on the case. Previews are free, so they
// carry no order and stay visible to the case owner.
func (s documents) Preview(ctx context.Context,
	actor domain.Actor,
	caseID domain.CaseID,
	docType domain.DocumentType) (*domain.Document, error) {
	c, err := s.caseForActor(ctx, actor, caseID)
	if err != nil {
		return nil, err
	}

	body, err := render(c, docType, time.Now(), true)
	if err != nil {
		return nil, err
	}

	doc, err := s.upload(ctx, c.ID, domain.OrderID{}, docType, true, body)
	if err != nil {
		return nil, err
	}

	var stored domain.Document
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.DeleteCasePreviews(ctx, caseID, docType); err != nil {
			return fmt.Errorf("could not delete superseded previews: %w", err)
		}

		rows, err := tx.StoreDocuments(ctx, doc)
		if err != nil {
			return fmt.Errorf("could not store document: %w", err)
		}
		stored = rows[0]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not save preview: %w", err)
	}

	return &stored, nil
}

// Generate renders the final documents for a paid order. It is called by the
// fulfillment worker, so there is no actor; the order has already been
// validated. Regeneration replaces the order's earlier documents.
func (s documents) Generate(ctx context.Context,
	caseID domain.CaseID,
	orderID domain.OrderID,
	types []domain.DocumentType) ([]domain.Document, error) {
	c, err := s.storage.CaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	now := time.Now()
	docs := make([]domain.Document, 0, len(types))
	for _, docType := range types {
		body, err := render(c, docType, now, false)
		if err != nil {
			return nil, err
		}

		doc, err := s.upload(ctx, caseID, orderID, docType, false, body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	var stored []domain.Document
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.DeleteOrderDocuments(ctx, orderID); err != nil {
			return fmt.Errorf("could not delete superseded documents: %w", err)
		}

		rows, err := tx.StoreDocuments(ctx, docs...)
		if err != nil {
			return fmt.Errorf("could not store documents: %w", err)
		}
		stored = rows

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not save documents: %w", err)
	}

	return stored, nil
}

// List returns the case's documents visible to the actor: all previews, plus
// final documents whose order has been paid. Unpaid finals stay hidden so a
// webhook race never leaks a purchased document early.
func (s documents) List(ctx context.Context, actor domain.Actor, caseID domain.CaseID) ([]domain.Document, error) {
	if _, err := s.caseForActor(ctx, actor, caseID); err != nil {
		return nil, err
	}

	docs, err := s.storage.CaseDocuments(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case documents: %w", err)
	}

	paid, err := s.paidOrders(ctx, caseID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if d.IsPreview || paid[d.OrderID] {
			visible = append(visible, d)
		}
	}

	return visible, nil
}

// Get fetches a single document. Foreign and unpaid-final documents both read
// as not found.
func (s documents) Get(ctx context.Context, actor domain.Actor, docID domain.DocumentID) (*domain.Document, error) {
	doc, err := s.documentForActor(ctx, actor, docID)
	if err != nil {
		return nil, err
	}

	if !doc.IsPreview {
		if err := s.requirePaid(ctx, doc.OrderID); err != nil {
			return nil, serrors.With(serrors.ErrNotFound, "document not found")
		}
	}

	return doc, nil
}

// DownloadURL returns a presigned link for the document's PDF. Final
// documents require their order to be paid; previews are always downloadable
// by the case owner.
func (s documents) DownloadURL(ctx context.Context, actor domain.Actor, docID domain.DocumentID) (string, error) {
	doc, err := s.documentForActor(ctx, actor, docID)
	if err != nil {
		return "", err
	}

	if !doc.IsPreview {
		if err := s.requirePaid(ctx, doc.OrderID); err != nil {
			return "", err
		}
	}

	url, err := s.blobs.PresignGet(ctx, doc.ObjectKey, downloadName(doc), s.options.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("could not presign download: %w", err)
	}

	return url, nil
}

// upload renders a document row around the given PDF bytes and pushes them to
// object storage.
func (s documents) upload(ctx context.Context,
	caseID domain.CaseID,
	orderID domain.OrderID,
	docType domain.DocumentType,
	preview bool,
	body []byte) (domain.Document, error) {
	key := objectKey(caseID, docType, preview)
	if err := s.blobs.Put(ctx, key, contentTypePDF, body); err != nil {
		return domain.Document{}, fmt.Errorf("could not upload document: %w", err)
	}

	sum := sha256.Sum256(body)

	return domain.Document{
		CaseID:        caseID,
		OrderID:       orderID,
		Type:          docType,
		IsPreview:     preview,
		ObjectKey:     key,
		SizeBytes:     int64(len(body)),
		ContentSHA256: hex.EncodeToString(sum[:]),
	}, nil
}

// requirePaid reports ErrPaymentRequired unless the order exists and is paid.
func (s documents) requirePaid(ctx context.Context, orderID domain.OrderID) error {
	order, err := s.storage.OrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("could not get order: %w", err)
	}
	if order == nil || order.PaymentStatus != domain.PaymentStatusPaid {
		return serrors.With(serrors.ErrPaymentRequired, "this document has not been paid for")
	}

	return nil
}

// paidOrders returns the set of paid order IDs of a case.
func (s documents) paidOrders(ctx context.Context, caseID domain.CaseID) (map[domain.OrderID]bool, error) {
	caseOrders, err := s.storage.CaseOrders(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case orders: %w", err)
	}

	paid := make(map[domain.OrderID]bool, len(caseOrders))
	for _, o := range caseOrders {
		if o.PaymentStatus == domain.PaymentStatusPaid {
			paid[o.ID] = true
		}
	}

	return paid, nil
}

// documentForActor fetches a document and checks the actor owns its case.
// Missing and foreign documents are both reported as not found.
func (s documents) documentForActor(ctx context.Context,
	actor domain.Actor,
	docID domain.DocumentID) (*domain.Document, error) {
	doc, err := s.storage.DocumentByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	if _, err := s.caseForActor(ctx, actor, doc.CaseID); err != nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return doc, nil
}

// caseForActor fetches a case and checks the actor may act on it. Missing and
// foreign cases are both reported as not found.
func (s documents) caseForActor(ctx context.Context, actor domain.Actor, caseID domain.CaseID) (*domain.Case, error) {
	c, err := s.storage.CaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("could not get case: %w", err)
	}
	if c == nil || !actor.Owns(c) {
		return nil, serrors.With(serrors.ErrNotFound, "case not found")
	}

	return c, nil
}

// render dispatches to the renderer for the document type after checking the
// facts it needs have been collected.
func render(c *domain.Case, docType domain.DocumentType, now time.Time, preview bool) ([]byte, error) {
	if !docType.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown document type %q", docType)
	}
	if missing := missingFacts(c.Facts, docType); len(missing) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest,
			"facts required for %s are missing: %v", docType, missing)
	}

	kind := "final"
	if preview {
		kind = "preview"
	}
	documentsRendered.WithLabelValues(string(docType), kind).Inc()

	switch docType {
	case domain.DocumentTypeSection8Notice:
		assessment := wizard.Analyze(c.Type, c.Facts, now)
		if !assessment.Section8.Eligible {
			return nil, serrors.With(serrors.ErrBadRequest,
				"no section 8 grounds are supported by the facts provided")
		}

		return renderSection8(c.Facts, assessment, now, preview)
	case domain.DocumentTypeSection21Notice:
		return renderSection21(c.Facts, now, preview)
	case domain.DocumentTypeLetterBeforeClaim:
		return renderLetterBeforeClaim(c.Facts, now, preview)
	case domain.DocumentTypeTenancyAgreement:
		return renderTenancyAgreement(c.Facts, now, preview)
	}

	return nil, serrors.With(serrors.ErrBadRequest, "unknown document type %q", docType)
}

// missingFacts lists the wizard fact groups a document type cannot be
// rendered without.
func missingFacts(facts domain.CaseFacts, docType domain.DocumentType) []string {
	var missing []string
	need := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}

	need("landlord", facts.Landlord != nil && facts.Landlord.Name != "")
	need("property", facts.Property != nil && len(facts.Property.AddressLines) > 0)

	switch docType {
	case domain.DocumentTypeSection8Notice, domain.DocumentTypeSection21Notice:
		need("tenant", facts.Tenant != nil && len(facts.Tenant.Names) > 0)
		need("tenancy", facts.Tenancy != nil)
	case domain.DocumentTypeLetterBeforeClaim:
		need("tenant", facts.Tenant != nil && len(facts.Tenant.Names) > 0)
		need("arrears", facts.Arrears != nil && facts.Arrears.TotalPence > 0)
	case domain.DocumentTypeTenancyAgreement:
		need("tenant", facts.Tenant != nil && len(facts.Tenant.Names) > 0)
		need("tenancy", facts.Tenancy != nil && facts.Tenancy.RentPence > 0)
	}

	return missing
}

// objectKey builds the storage key for a rendered PDF. A fresh suffix keeps
// regenerated documents from overwriting the object a signed URL may still
// point at.
func objectKey(caseID domain.CaseID, docType domain.DocumentType, preview bool) string {
	kind := "final"
	if preview {
		kind = "preview"
	}

	return fmt.Sprintf("cases/%s/%s/%s-%s.pdf", caseID, kind, docType, uuid.NewString())
}

// downloadName is the filename forced onto the browser download.
func downloadName(doc *domain.Document) string {
	name := string(doc.Type)
	if doc.IsPreview {
		name += "-preview"
	}

	return name + ".pdf"
}

// New creates a new Documents instance backed by the provided storage and
// blob store.
func New(storage storage.Storage, blobs blobstore.Store, options Options) Documents {
	return &documents{
		options: options,
		storage: storage,
		blobs:   blobs,
	}
}

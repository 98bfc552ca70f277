package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"landlordheaven/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email            string         `db:"email"`
	Name             string         `db:"name"`
	PasswordHash     string         `db:"password_hash"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:               domain.UserID(p.ID),
		Email:            p.Email,
		Name:             p.Name,
		PasswordHash:     p.PasswordHash,
		StripeCustomerID: p.StripeCustomerID.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(u.ID),
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		StripeCustomerID: sql.NullString{
			String: u.StripeCustomerID,
			Valid:  u.StripeCustomerID != "",
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: sql.NullTime{Time: u.UpdatedAt, Valid: !u.UpdatedAt.IsZero()},
		DeletedAt: sql.NullTime{Time: u.DeletedAt, Valid: !u.DeletedAt.IsZero()},
	}
}

type PgCase struct {
	ID            uuid.UUID     `db:"id" goqu:"skipinsert"`
	UserID        uuid.NullUUID `db:"user_id"`
	AnonSessionID uuid.NullUUID `db:"anon_session_id"`

	CaseType   string          `db:"case_type"`
	Status     string          `db:"status"`
	Facts      json.RawMessage `db:"facts"`
	Progress   json.RawMessage `db:"progress"`
	Assessment json.RawMessage `db:"assessment" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgCase) ToDomain() (*domain.Case, error) {
	var facts domain.CaseFacts
	if len(p.Facts) > 0 {
		if err := json.Unmarshal(p.Facts, &facts); err != nil {
			return nil, fmt.Errorf("could not unmarshal case facts: %w", err)
		}
	}

	var progress domain.WizardProgress
	if len(p.Progress) > 0 {
		if err := json.Unmarshal(p.Progress, &progress); err != nil {
			return nil, fmt.Errorf("could not unmarshal wizard progress: %w", err)
		}
	}

	var assessment *domain.Assessment
	if len(p.Assessment) > 0 {
		assessment = &domain.Assessment{}
		if err := json.Unmarshal(p.Assessment, assessment); err != nil {
			return nil, fmt.Errorf("could not unmarshal assessment: %w", err)
		}
	}

	return &domain.Case{
		ID:            domain.CaseID(p.ID),
		UserID:        domain.UserID(p.UserID.UUID),
		AnonSessionID: domain.SessionID(p.AnonSessionID.UUID),
		Type:          domain.CaseType(p.CaseType),
		Status:        domain.CaseStatus(p.Status),
		Facts:         facts,
		Progress:      progress,
		Assessment:    assessment,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}, nil
}

func (p *PgCase) FromDomain(c domain.Case) error {
	facts, err := json.Marshal(c.Facts)
	if err != nil {
		return fmt.Errorf("could not marshal case facts: %w", err)
	}

	progress, err := json.Marshal(c.Progress)
	if err != nil {
		return fmt.Errorf("could not marshal wizard progress: %w", err)
	}

	var assessment json.RawMessage
	if c.Assessment != nil {
		assessment, err = json.Marshal(c.Assessment)
		if err != nil {
			return fmt.Errorf("could not marshal assessment: %w", err)
		}
	}

	*p = PgCase{
		ID: uuid.UUID(c.ID),
		UserID: uuid.NullUUID{
			UUID:  uuid.UUID(c.UserID),
			Valid: !c.UserID.IsZero(),
		},
		AnonSessionID: uuid.NullUUID{
			UUID:  uuid.UUID(c.AnonSessionID),
			Valid: !c.AnonSessionID.IsZero(),
		},
		CaseType:   string(c.Type),
		Status:     string(c.Status),
		Facts:      facts,
		Progress:   progress,
		Assessment: assessment,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  sql.NullTime{Time: c.UpdatedAt, Valid: !c.UpdatedAt.IsZero()},
		DeletedAt:  sql.NullTime{Time: c.DeletedAt, Valid: !c.DeletedAt.IsZero()},
	}

	return nil
}

func pgCasesToDomain(cases []PgCase) ([]domain.Case, error) {
	out := make([]domain.Case, 0, len(cases))
	for _, c := range cases {
		d, err := c.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgDocument struct {
	ID      uuid.UUID     `db:"id" goqu:"skipinsert"`
	CaseID  uuid.UUID     `db:"case_id"`
	OrderID uuid.NullUUID `db:"order_id"`

	DocumentType  string `db:"document_type"`
	IsPreview     bool   `db:"is_preview"`
	ObjectKey     string `db:"object_key"`
	SizeBytes     int64  `db:"size_bytes"`
	ContentSHA256 string `db:"content_sha256"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgDocument) ToDomain() *domain.Document {
	return &domain.Document{
		ID:            domain.DocumentID(p.ID),
		CaseID:        domain.CaseID(p.CaseID),
		OrderID:       domain.OrderID(p.OrderID.UUID),
		Type:          domain.DocumentType(p.DocumentType),
		IsPreview:     p.IsPreview,
		ObjectKey:     p.ObjectKey,
		SizeBytes:     p.SizeBytes,
		ContentSHA256: p.ContentSHA256,
		CreatedAt:     p.CreatedAt,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgDocument) FromDomain(d domain.Document) {
	*p = PgDocument{
		ID:     uuid.UUID(d.ID),
		CaseID: uuid.UUID(d.CaseID),
		OrderID: uuid.NullUUID{
			UUID:  uuid.UUID(d.OrderID),
			Valid: !d.OrderID.IsZero(),
		},
		DocumentType:  string(d.Type),
		IsPreview:     d.IsPreview,
		ObjectKey:     d.ObjectKey,
		SizeBytes:     d.SizeBytes,
		ContentSHA256: d.ContentSHA256,
		CreatedAt:     d.CreatedAt,
		DeletedAt:     sql.NullTime{Time: d.DeletedAt, Valid: !d.DeletedAt.IsZero()},
	}
}

func domainDocumentsToPg(docs []domain.Document) []PgDocument {
	out := make([]PgDocument, len(docs))
	for i := range out {
		out[i].FromDomain(docs[i])
	}

	return out
}

func pgDocumentsToDomain(docs []PgDocument) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.ToDomain())
	}

	return out
}

type PgOrder struct {
	ID     uuid.UUID     `db:"id" goqu:"skipinsert"`
	CaseID uuid.UUID     `db:"case_id"`
	UserID uuid.NullUUID `db:"user_id"`

	Product     string `db:"product"`
	AmountPence int64  `db:"amount_pence"`
	Currency    string `db:"currency"`

	PaymentStatus     string `db:"payment_status"`
	FulfillmentStatus string `db:"fulfillment_status"`

	CheckoutSessionID sql.NullString `db:"checkout_session_id" goqu:"skipinsert"`
	PaymentIntentID   sql.NullString `db:"payment_intent_id" goqu:"skipinsert"`

	PaidAt      sql.NullTime   `db:"paid_at" goqu:"skipinsert"`
	FulfilledAt sql.NullTime   `db:"fulfilled_at" goqu:"skipinsert"`
	LastError   sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgOrder) ToDomain() *domain.Order {
	return &domain.Order{
		ID:                domain.OrderID(p.ID),
		CaseID:            domain.CaseID(p.CaseID),
		UserID:            domain.UserID(p.UserID.UUID),
		Product:           domain.Product(p.Product),
		AmountPence:       p.AmountPence,
		Currency:          p.Currency,
		PaymentStatus:     domain.PaymentStatus(p.PaymentStatus),
		FulfillmentStatus: domain.FulfillmentStatus(p.FulfillmentStatus),
		CheckoutSessionID: p.CheckoutSessionID.String,
		PaymentIntentID:   p.PaymentIntentID.String,
		PaidAt:            p.PaidAt.Time,
		FulfilledAt:       p.FulfilledAt.Time,
		LastError:         p.LastError.String,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
		DeletedAt:         p.DeletedAt.Time,
	}
}

func (p *PgOrder) FromDomain(o domain.Order) {
	*p = PgOrder{
		ID:     uuid.UUID(o.ID),
		CaseID: uuid.UUID(o.CaseID),
		UserID: uuid.NullUUID{
			UUID:  uuid.UUID(o.UserID),
			Valid: !o.UserID.IsZero(),
		},
		Product:           string(o.Product),
		AmountPence:       o.AmountPence,
		Currency:          o.Currency,
		PaymentStatus:     string(o.PaymentStatus),
		FulfillmentStatus: string(o.FulfillmentStatus),
		CheckoutSessionID: sql.NullString{
			String: o.CheckoutSessionID,
			Valid:  o.CheckoutSessionID != "",
		},
		PaymentIntentID: sql.NullString{
			String: o.PaymentIntentID,
			Valid:  o.PaymentIntentID != "",
		},
		PaidAt:      sql.NullTime{Time: o.PaidAt, Valid: !o.PaidAt.IsZero()},
		FulfilledAt: sql.NullTime{Time: o.FulfilledAt, Valid: !o.FulfilledAt.IsZero()},
		LastError: sql.NullString{
			String: o.LastError,
			Valid:  o.LastError != "",
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: sql.NullTime{Time: o.UpdatedAt, Valid: !o.UpdatedAt.IsZero()},
		DeletedAt: sql.NullTime{Time: o.DeletedAt, Valid: !o.DeletedAt.IsZero()},
	}
}

func pgOrdersToDomain(orders []PgOrder) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, *o.ToDomain())
	}

	return out
}

type PgLead struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email  string `db:"email"`
	Source string `db:"source"`
	Topic  string `db:"topic"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() *domain.Lead {
	return &domain.Lead{
		ID:        domain.LeadID(p.ID),
		Email:     p.Email,
		Source:    p.Source,
		Topic:     p.Topic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgLead) FromDomain(l domain.Lead) {
	*p = PgLead{
		ID:        uuid.UUID(l.ID),
		Email:     l.Email,
		Source:    l.Source,
		Topic:     l.Topic,
		CreatedAt: l.CreatedAt,
		UpdatedAt: sql.NullTime{Time: l.UpdatedAt, Valid: !l.UpdatedAt.IsZero()},
	}
}

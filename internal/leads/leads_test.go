package leads_test

import (
	"context"
	"testing"

	"landlordheaven/internal/leads"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"

	mockstorage "landlordheaven/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeads_Capture(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := leads.New(st)

	st.EXPECT().UpsertLead(gomock.Any(), domain.Lead{
		Email:  "alice@example.com",
		Source: "exit_popup",
		Topic:  "section 21 guide",
	}).DoAndReturn(func(_ context.Context, l domain.Lead) (*domain.Lead, error) {
		l.ID = domain.LeadID(uuid.New())

		return &l, nil
	})

	lead, err := svc.Capture(context.Background(),
		"  Alice@Example.com ", "exit_popup", " section 21 guide ")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", lead.Email)
	require.Equal(t, "exit_popup", lead.Source)
}

func TestLeads_Capture_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := leads.New(st)

	_, err := svc.Capture(context.Background(), "not-an-email", "exit_popup", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

package v1handler

import (
	"net/http"
	"time"

	"landlordheaven/internal/wizard"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"
)

type analyzeRequest struct {
	CaseType domain.CaseType  `json:"caseType"`
	Facts    domain.CaseFacts `json:"facts"`
}

// AnalyzeWizard runs the decision engine over a fact set without touching any
// stored case. The wizard frontend calls this after every answer so the
// recommendation updates live, before the visitor has committed to anything.
func (h *Handler) AnalyzeWizard(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	if !req.CaseType.Valid() {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown case type %q", req.CaseType))

		return
	}

	assessment := wizard.Analyze(req.CaseType, req.Facts, time.Now())

	writeJSON(w, r, http.StatusOK, assessment)
}

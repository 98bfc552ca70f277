package v1handler

import (
	"net/http"

	"landlordheaven/internal/cases"
	"landlordheaven/pkg/domain"

	"github.com/google/uuid"
)

type createCaseRequest struct {
	Type domain.CaseType `json:"type"`
}

type listCasesResponse struct {
	Cases      []domain.Case `json:"cases"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

type updateCaseRequest struct {
	Facts    *domain.CaseFacts      `json:"facts,omitempty"`
	Progress *domain.WizardProgress `json:"progress,omitempty"`
}

type claimResponse struct {
	Linked int64 `json:"linked"`
}

// CreateCase starts a new case for the actor. A visitor with no credentials
// at all gets a fresh session ID minted here and returned in the X-Session-Id
// response header; the frontend must persist it to keep hold of the case.
func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	actor := ActorFrom(r.Context())
	if !actor.Authenticated() && actor.SessionID.IsZero() {
		actor.SessionID = domain.SessionID(uuid.New())
		w.Header().Set(sessionHeader, actor.SessionID.String())
	}

	c, err := h.deps.Cases.Create(r.Context(), actor, req.Type)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, c)
}

// ListCases returns the actor's cases, newest first, with cursor pagination.
// The status query parameter filters by lifecycle state.
func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	query := r.URL.Query()
	items, next, err := h.deps.Cases.List(r.Context(), ActorFrom(r.Context()),
		domain.CaseStatus(query.Get("status")), query.Get("cursor"), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, listCasesResponse{Cases: items, NextCursor: next})
}

// ClaimCases links the request's anonymous session cases to the
// authenticated user. Signup and login do this implicitly; this endpoint
// covers a session that only appears after the user is already logged in.
func (h *Handler) ClaimCases(w http.ResponseWriter, r *http.Request) {
	actor, err := requireUser(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	linked, err := h.deps.Cases.Claim(r.Context(), actor.UserID, actor.SessionID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, claimResponse{Linked: linked})
}

// GetCase returns a single case owned by the actor.
func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Cases.Get(r.Context(), ActorFrom(r.Context()), domain.CaseID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

// UpdateCaseFacts merges new wizard answers into the case and returns it with
// a fresh assessment.
func (h *Handler) UpdateCaseFacts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateCaseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Cases.UpdateFacts(r.Context(), ActorFrom(r.Context()), domain.CaseID(id),
		cases.FactsUpdate{Facts: req.Facts, Progress: req.Progress})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

// DeleteCase soft-deletes a case.
func (h *Handler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Cases.Delete(r.Context(), ActorFrom(r.Context()), domain.CaseID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ArchiveCase puts a case away. Archived cases stay readable but reject
// further edits.
func (h *Handler) ArchiveCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Cases.Archive(r.Context(), ActorFrom(r.Context()), domain.CaseID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

// RestoreCase brings an archived case back.
func (h *Handler) RestoreCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Cases.Restore(r.Context(), ActorFrom(r.Context()), domain.CaseID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

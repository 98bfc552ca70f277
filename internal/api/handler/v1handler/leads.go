package v1handler

import (
	"net/http"
)

type leadRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
	Topic  string `json:"topic,omitempty"`
}

// CaptureLead records a marketing email capture. Repeat submissions of the
// same email update the existing lead, so the endpoint is safe to call from
// popups that may fire more than once.
func (h *Handler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	lead, err := h.deps.Leads.Capture(r.Context(), req.Email, req.Source, req.Topic)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, lead)
}

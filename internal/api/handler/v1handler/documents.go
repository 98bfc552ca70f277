package v1handler

import (
	"net/http"

	"landlordheaven/pkg/domain"
)

type previewRequest struct {
	Type domain.DocumentType `json:"type"`
}

type listDocumentsResponse struct {
	Documents []domain.Document `json:"documents"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

// PreviewDocument renders a watermarked preview of a document for the case
// and returns its metadata. Rendering replaces any earlier preview of the
// same type.
func (h *Handler) PreviewDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	doc, err := h.deps.Documents.Preview(r.Context(), ActorFrom(r.Context()), domain.CaseID(id), req.Type)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, doc)
}

// ListCaseDocuments returns the case's documents visible to the actor:
// previews always, finals only once their order is paid.
func (h *Handler) ListCaseDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	docs, err := h.deps.Documents.List(r.Context(), ActorFrom(r.Context()), domain.CaseID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, listDocumentsResponse{Documents: docs})
}

// GetDocument returns a single document's metadata.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	doc, err := h.deps.Documents.Get(r.Context(), ActorFrom(r.Context()), domain.DocumentID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, doc)
}

// DownloadDocument returns a short-lived signed URL for the document's PDF.
// Final documents of unpaid orders come back as 402.
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	url, err := h.deps.Documents.DownloadURL(r.Context(), ActorFrom(r.Context()), domain.DocumentID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, downloadResponse{URL: url})
}

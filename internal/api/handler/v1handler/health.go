package v1handler

import (
	"net/http"

	"landlordheaven/pkg/serrors"
)

// Health reports whether the service can reach its database.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Storage.Ping(r.Context()); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrUnavailable, err, "database unreachable"))

		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

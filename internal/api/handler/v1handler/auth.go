package v1handler

import (
	"net/http"

	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/logger"

	"go.uber.org/zap"
)

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Signup creates an account. When the request carries a session, the
// session's anonymous cases are claimed for the new account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, token, err := h.deps.Auth.Signup(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.claimSession(r, user.ID)

	writeJSON(w, r, http.StatusCreated, authResponse{User: user, Token: token})
}

// Login verifies credentials and returns a fresh token. Claiming runs here
// too so a session started before login ends up on the account.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, token, err := h.deps.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.claimSession(r, user.ID)

	writeJSON(w, r, http.StatusOK, authResponse{User: user, Token: token})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, err := requireUser(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.User(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

// claimSession links the request's anonymous session to the user, best
// effort: a failed claim must not fail the signup or login that triggered it.
func (h *Handler) claimSession(r *http.Request, userID domain.UserID) {
	sessionID := ActorFrom(r.Context()).SessionID
	if sessionID.IsZero() {
		return
	}

	if _, err := h.deps.Cases.Claim(r.Context(), userID, sessionID); err != nil {
		logger.Error(r.Context(), "could not claim session cases",
			zap.Error(err), zap.String("sessionID", sessionID.String()))
	}
}

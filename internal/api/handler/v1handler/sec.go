package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"landlordheaven/internal/config"
	"landlordheaven/pkg/domain"
	"landlordheaven/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionHeader carries the anonymous session ID. The frontend generates one
// per browser and sends it on every request until signup claims the session.
const sessionHeader = "X-Session-Id"

// SecHandlerOptions configure request authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA key access tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided
// application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler resolves the actor of every request: a Bearer token becomes an
// authenticated user, an X-Session-Id header an anonymous session, and
// neither a fully anonymous actor. Only presented-but-invalid credentials are
// rejected; absence is not an error, handlers decide what they require.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler creates a SecHandler. The configured public key is parsed
// once here.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// actorKey is the context key the resolved actor is stored under.
type actorKey struct{}

// ActorFrom returns the actor resolved by the security handler. The zero
// actor means the request carried no credentials at all.
func ActorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey{}).(domain.Actor)

	return actor
}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// Wrap authenticates the request and stores the actor in the context before
// calling next.
func (s *SecHandler) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := s.resolve(r)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}

// resolve builds the actor from the request credentials.
func (s *SecHandler) resolve(r *http.Request) (domain.Actor, error) {
	var actor domain.Actor

	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return actor, serrors.With(serrors.ErrUnauthorized, "malformed authorization header")
		}

		userID, err := s.verifyToken(token)
		if err != nil {
			return actor, err
		}
		actor.UserID = userID
	}

	if header := r.Header.Get(sessionHeader); header != "" {
		sessionID, err := uuid.Parse(header)
		if err != nil {
			return actor, serrors.With(serrors.ErrBadRequest, "invalid %s header", sessionHeader)
		}
		actor.SessionID = domain.SessionID(sessionID)
	}

	return actor, nil
}

// verifyToken checks the signature and claims of an access token and returns
// its subject.
func (s *SecHandler) verifyToken(token string) (domain.UserID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return domain.UserID(userID), nil
}

// requireUser returns the actor when it is authenticated, or the error the
// handler should respond with.
func requireUser(ctx context.Context) (domain.Actor, error) {
	actor := ActorFrom(ctx)
	if !actor.Authenticated() {
		return actor, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}

	return actor, nil
}

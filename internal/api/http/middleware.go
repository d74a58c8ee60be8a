package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/identity"
)

// A private context key so only this package can set the caller identity.
type contextKey struct{ name string }

var callerCtxKey = &contextKey{"caller"}

// CallerEmail extracts the verified caller email from the request context.
// Empty means the request was not authenticated.
func CallerEmail(ctx context.Context) string {
	email, _ := ctx.Value(callerCtxKey).(string)
	return email
}

type Middleware struct {
	verifier identity.TokenVerifier
	timeout  time.Duration
}

func NewMiddleware(verifier identity.TokenVerifier, timeout time.Duration) *Middleware {
	return &Middleware{verifier: verifier, timeout: timeout}
}

// WithTimeout bounds every inbound request with an explicit deadline instead
// of relying on whatever the store client defaults to.
func (m *Middleware) WithTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), m.timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth verifies the bearer credential and injects the caller email.
// Missing or invalid credentials end the request with 401 before any policy
// or store work happens.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		ident, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), callerCtxKey, ident.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth resolves the caller when a credential is present but lets
// anonymous requests through. Used where visibility, not access, depends on
// the caller (public blog listing).
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ident, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			// A presented-but-bad credential is rejected, not downgraded.
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), callerCtxKey, ident.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

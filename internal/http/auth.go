package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/netzone/internal/auth"
	"github.com/Flarenzy/netzone/internal/domain"
)

// authMiddleware requires a bearer token on every /api/ route.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			a.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")

		principal, err := a.authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.Logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err.Error())
			a.writeError(w, r, domain.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

func (a *API) requireRole(role string, next http.Handler) http.Handler {
	if a.authenticator == nil || role == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			a.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		if !principal.HasRole(role) {
			a.Logger.WarnContext(r.Context(), "missing role", "subject", principal.Subject, "role", role)
			a.writeError(w, r, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

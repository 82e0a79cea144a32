package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Flarenzy/netzone/internal/auth"
	"github.com/Flarenzy/netzone/internal/domain"
)

// tokenAuthenticator accepts the tokens it knows and rejects everything else.
type tokenAuthenticator map[string]auth.Principal

func (a tokenAuthenticator) Authenticate(_ context.Context, bearerToken string) (auth.Principal, error) {
	principal, ok := a[bearerToken]
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return principal, nil
}

func newAuthTestAPI(writeRole string) *API {
	authenticator := tokenAuthenticator{
		"reader-token": {Subject: "reader", Roles: []string{"zone-reader"}},
		"writer-token": {Subject: "writer", Roles: []string{"zone-reader", "zone-writer"}},
	}
	return NewAPI(
		slog.New(slog.DiscardHandler),
		stubHealthChecker{},
		stubService{},
		authenticator,
		WithWriteRole(writeRole),
	)
}

func serveWithToken(api *API, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAllowsHealthzWithoutToken(t *testing.T) {
	rec := serveWithToken(newAuthTestAPI(""), http.MethodGet, "/healthz", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	rec := serveWithToken(newAuthTestAPI(""), http.MethodGet, "/api/v1/subnets", "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	rec := serveWithToken(newAuthTestAPI(""), http.MethodGet, "/api/v1/subnets", "not-a-jwt", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareStoresPrincipal(t *testing.T) {
	api := newAuthTestAPI("")
	called := false
	handler := api.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			t.Fatal("expected principal in context")
		}
		if principal.Subject != "reader" {
			t.Fatalf("unexpected subject: %q", principal.Subject)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subnets", nil)
	req.Header.Set("Authorization", "Bearer reader-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	if !called {
		t.Fatal("expected downstream handler to be called")
	}
}

func TestWriteRoleRequiredForExceptions(t *testing.T) {
	api := newAuthTestAPI("zone-writer")
	body := `{"subnet":"10.1.2.0","cidr":"24","old_zone":"BLUE","new_zone":"RED"}`

	rec := serveWithToken(api, http.MethodPost, "/api/v1/exceptions", "reader-token", body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}

	rec = serveWithToken(api, http.MethodPost, "/api/v1/exceptions", "writer-token", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestReadersNeedNoWriteRole(t *testing.T) {
	rec := serveWithToken(newAuthTestAPI("zone-writer"), http.MethodGet, "/api/v1/zones/lookup?ip=10.0.0.1", "reader-token", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestWriteRoleIgnoredWithoutAuthentication(t *testing.T) {
	api := NewAPI(slog.New(slog.DiscardHandler), stubHealthChecker{}, stubService{}, nil, WithWriteRole("zone-writer"))

	rec := serveWithToken(api, http.MethodPost, "/api/v1/exceptions", "", `{"subnet":"10.1.2.0","cidr":"24"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestStatusForMapsDomainErrors(t *testing.T) {
	cases := map[error]int{
		domain.ErrInvalidInput:    http.StatusBadRequest,
		domain.ErrUnauthorized:    http.StatusUnauthorized,
		domain.ErrForbidden:       http.StatusForbidden,
		domain.ErrNotFound:        http.StatusNotFound,
		domain.ErrViewUnavailable: http.StatusServiceUnavailable,
		domain.ErrStoreWrite:      http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got, _ := statusFor(err); got != want {
			t.Fatalf("%v: expected %d, got %d", err, want, got)
		}
	}
}

package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

type stubVerifier struct {
	mu         sync.Mutex
	principals map[string]account.Principal
	forgotten  []string
}

func newStubVerifier() *stubVerifier {
	return &stubVerifier{principals: map[string]account.Principal{
		"operator": {UserID: 1, Username: "operator", Permissions: []account.Permission{account.PermQuickCancel}},
		"goalies":  {UserID: 2, Username: "goalies", Permissions: []account.Permission{account.PermViewMatchup, account.PermChangeMatchup}},
		"admin":    {UserID: 3, Username: "admin", IsSuperuser: true},
	}}
}

func (v *stubVerifier) VerifyAccessToken(_ context.Context, token string) (account.Principal, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	p, ok := v.principals[token]
	if !ok {
		return account.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func (v *stubVerifier) Forget(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.forgotten = append(v.forgotten, token)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := principalFromContext(r.Context())
		w.Header().Set("X-Principal", principal.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic operator", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer operator", wantStatus: http.StatusOK, wantUser: "operator"},
		{name: "case insensitive scheme", header: "bearer goalies", wantStatus: http.StatusOK, wantUser: "goalies"},
	}

	handler := RequireAuth(newStubVerifier(), okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/seasons/recent", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("X-Principal"); got != tt.wantUser {
				t.Fatalf("expected principal %q, got %q", tt.wantUser, got)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "holder", token: "operator", wantStatus: http.StatusOK},
		{name: "superuser", token: "admin", wantStatus: http.StatusOK},
		{name: "other group", token: "goalies", wantStatus: http.StatusForbidden},
		{name: "anonymous", token: "", wantStatus: http.StatusUnauthorized},
	}

	handler := RequirePermission(newStubVerifier(), account.PermQuickCancel, okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, quickCancelWidgetPath, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{name: "match", configured: "secret", provided: "secret", wantStatus: http.StatusOK},
		{name: "mismatch", configured: "secret", provided: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing", configured: "secret", provided: "", wantStatus: http.StatusUnauthorized},
		{name: "not configured", configured: "", provided: "secret", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireInternalJobToken(tt.configured, okHandler())
			req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recalculate-team-stats", nil)
			if tt.provided != "" {
				req.Header.Set(internalJobTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStartRedirectsToGoogle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/api/v1/auth/google/callback", "http://localhost:5173/admin", []string{"admin@example.com"})

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	location, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	if !strings.Contains(location.Host, "accounts.google.com") {
		t.Fatalf("unexpected redirect host: %q", location.Host)
	}
	state := location.Query().Get("state")
	if state == "" {
		t.Fatalf("redirect has no state parameter")
	}
	if !svc.stateStore.consume(state) {
		t.Fatalf("state was not stored")
	}
}

func TestStartFailsWhenUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("", "", "", "", nil)

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/cb", "http://localhost:5173", nil)

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCallbackRequiresStateAndCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/cb", "http://localhost:5173", nil)

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStateStoreConsumeIsSingleUse(t *testing.T) {
	store := newStateStore()
	store.put("state-1", time.Now().Add(time.Minute))

	if !store.consume("state-1") {
		t.Fatalf("first consume should succeed")
	}
	if store.consume("state-1") {
		t.Fatalf("second consume should fail")
	}
}

func TestStateStoreRejectsExpired(t *testing.T) {
	store := newStateStore()
	store.put("state-1", time.Now().Add(-time.Second))

	if store.consume("state-1") {
		t.Fatalf("expired state should not be accepted")
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://localhost:5173/admin?tab=generations", "session-token")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse result: %v", err)
	}
	if parsed.Query().Get("token") != "session-token" {
		t.Fatalf("token not appended: %q", got)
	}
	if parsed.Query().Get("tab") != "generations" {
		t.Fatalf("existing query lost: %q", got)
	}

	if _, err := appendToken("  ", "tok"); err == nil {
		t.Fatalf("expected error for empty redirect base")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/shared/auth"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/api/v1/admin", AdminAuth())
	admin.GET("/generations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": AdminEmailFromContext(c)})
	})
	return r
}

func adminRequest(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/generations", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuthRequiresToken(t *testing.T) {
	router := newAdminRouter()
	if rec := adminRequest(t, router, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := adminRequest(t, router, "Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsNonAdminClaims(t *testing.T) {
	token, err := auth.SignToken(auth.Claims{Sub: "google:123", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	router := newAdminRouter()
	if rec := adminRequest(t, router, "Bearer "+token); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	token, err := auth.SignToken(auth.Claims{Sub: "google:123", Email: "admin@example.com", Admin: true})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	router := newAdminRouter()
	rec := adminRequest(t, router, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != `{"email":"admin@example.com"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"securebank/internal/service"
)

func setupProtectedRouter(t *testing.T) (*gin.Engine, *service.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := service.NewTokenService("secret", "securebank", "securebank-web", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokens), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	return r, tokens
}

func getWithAuth(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r, tokens := setupProtectedRouter(t)

	token, err := tokens.Issue(7, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec := getWithAuth(r, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r, _ := setupProtectedRouter(t)

	if rec := getWithAuth(r, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", rec.Code)
	}
	if rec := getWithAuth(r, "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", rec.Code)
	}
}

func TestJWTAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	r, _ := setupProtectedRouter(t)

	if rec := getWithAuth(r, "Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}

	foreign, err := service.NewTokenService("other-secret", "securebank", "securebank-web", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	token, err := foreign.Issue(7, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := getWithAuth(r, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign signature, got %d", rec.Code)
	}
}

func TestJWTAuthMiddlewareNilService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if rec := getWithAuth(r, "Bearer token"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unconfigured jwt, got %d", rec.Code)
	}
}

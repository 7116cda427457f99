package middleware

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/context"
	"Nexus/pkg/jwt"
	stdctx "context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var secret = []byte("test-secret")

type members map[uint64]*models.Member

func (m members) FindByID(_ stdctx.Context, id uint64) (*models.Member, error) {
	member, ok := m[id]
	if !ok {
		return nil, reputation.ErrNotFound
	}
	return member, nil
}

func token(t *testing.T, id uint64) string {
	t.Helper()
	tok, err := jwt.GenerateToken(secret, id, jwt.TokenAccess, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func newRouter(store members) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret, store), func(c *gin.Context) {
		id, _ := context.GetMemberID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/admin", Auth(secret, store), Require(reputation.AdminOnly), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/maybe", OptionalAuth(secret, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"anonymous": context.GetMember(c) == nil})
	})
	return r
}

func TestAuth(t *testing.T) {
	store := members{
		1: {ID: 1, Role: models.RoleMember, Status: models.StatusActive},
		2: {ID: 2, Role: models.RoleMember, Status: models.StatusSuspended},
		3: {ID: 3, Role: models.RoleAdmin, Status: models.StatusActive},
	}
	r := newRouter(store)

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing token", "/me", "", http.StatusUnauthorized},
		{"bad scheme", "/me", "Token abc", http.StatusUnauthorized},
		{"garbage token", "/me", "Bearer abc", http.StatusUnauthorized},
		{"active member", "/me", token(t, 1), http.StatusOK},
		{"suspended member", "/me", token(t, 2), http.StatusForbidden},
		{"unknown member", "/me", token(t, 9), http.StatusUnauthorized},
		{"member on admin route", "/admin", token(t, 1), http.StatusForbidden},
		{"admin on admin route", "/admin", token(t, 3), http.StatusOK},
		{"optional anonymous", "/maybe", "", http.StatusOK},
		{"optional bad token", "/maybe", "Bearer abc", http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, c.want, w.Body.String())
			}
		})
	}
}

func TestGinZapRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("request id not generated")
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q, want passthrough", got)
	}
}

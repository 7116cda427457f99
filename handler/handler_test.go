package handler

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/jwt"
	"Nexus/pkg/response"
	"Nexus/service"
	"Nexus/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type memberStore map[uint64]*models.Member

func (m memberStore) FindByID(_ context.Context, id uint64) (*models.Member, error) {
	member, ok := m[id]
	if !ok {
		return nil, reputation.ErrNotFound
	}
	cp := *member
	return &cp, nil
}

func (m memberStore) UpdateFields(context.Context, uint64, map[string]any) error { return nil }
func (m memberStore) UpdateLevel(context.Context, uint64, uint) error           { return nil }
func (m memberStore) SetLevelBatch(context.Context, []uint64, uint) (int64, error) {
	return 0, nil
}
func (m memberStore) TopByPoints(context.Context, int) ([]models.Member, error) { return nil, nil }

// profileStub 按目标 id 返回预设结果
type profileStub struct {
	errs map[uint64]error
}

func (p *profileStub) Get(_ context.Context, viewerID, targetID uint64) (*types.ProfileResp, error) {
	if err := p.errs[targetID]; err != nil {
		return nil, err
	}
	return &types.ProfileResp{ID: targetID, Level: types.LevelBrief{Name: "silver"}}, nil
}

func (p *profileStub) GetByShareCode(ctx context.Context, viewerID uint64, code string) (*types.ProfileResp, error) {
	return nil, reputation.ErrNotFound
}

func (p *profileStub) Update(context.Context, uint64, *types.UpdateProfileReq) error { return nil }

func (p *profileStub) VerifyEmail(_ context.Context, memberID uint64) (*types.EmailVerifyResp, error) {
	return &types.EmailVerifyResp{EmailVerified: true, MemberLevel: "silver", Upgraded: true}, nil
}

func testGuard() *Guard {
	return &Guard{
		Config: &config.Config{Jwt: &config.Jwt{Secret: "handler-secret"}},
		Members: memberStore{
			1: {ID: 1, Role: models.RoleMember, Status: models.StatusActive},
		},
	}
}

func TestProfileRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guard := testGuard()
	h := &Profile{
		Guard: guard,
		Profile: &profileStub{errs: map[uint64]error{
			3: service.ErrAccessDenied,
			4: service.ErrLoginRequired,
			5: &reputation.ConfigurationError{Reason: "no tier available"},
		}},
	}
	r := gin.New()
	h.RegisterRouter(r.Group("/api"))

	tok, err := jwt.GenerateToken([]byte(guard.Config.Jwt.Secret), 1, jwt.TokenAccess, time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		auth bool
		want int
	}{
		{"/api/v1/profile/2", false, http.StatusOK},
		{"/api/v1/profile/3", true, http.StatusForbidden},
		{"/api/v1/profile/4", false, http.StatusUnauthorized},
		{"/api/v1/profile/5", true, http.StatusInternalServerError},
		{"/api/v1/profile/abc", false, http.StatusBadRequest},
		{"/api/v1/share/zzz", false, http.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			if c.auth {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, c.want, w.Body.String())
			}
			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body not json: %v", err)
			}
		})
	}
}

func TestVerifyEmailNeedsConfirmedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guard := testGuard()
	r := gin.New()
	(&Profile{Guard: guard, Profile: &profileStub{}}).RegisterRouter(r.Group("/api"))

	secret := []byte(guard.Config.Jwt.Secret)
	plain, _ := jwt.GenerateToken(secret, 1, jwt.TokenAccess, time.Minute)
	confirmed, _ := jwt.GenerateToken(secret, 1, jwt.TokenAccess, time.Minute, jwt.WithEmailVerified())

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"unconfirmed token", plain, http.StatusForbidden},
		{"confirmed token", confirmed, http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/email/verify", nil)
			if c.token != "" {
				req.Header.Set("Authorization", "Bearer "+c.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, c.want, w.Body.String())
			}
		})
	}
}

func TestBizError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&reputation.ValidationError{Field: "delta", Reason: "must be non-zero"}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", reputation.ErrNotFound), http.StatusNotFound},
		{service.ErrLoginRequired, http.StatusUnauthorized},
		{service.ErrAccessDenied, http.StatusForbidden},
		{&reputation.ConfigurationError{Reason: "gap"}, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
		{response.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot},
	}
	for _, c := range cases {
		var be *response.BizError
		if !errors.As(bizError(c.err), &be) || be.Code != c.code {
			t.Errorf("bizError(%v) = %v, want code %d", c.err, be, c.code)
		}
	}
}

func TestAdminRouteRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guard := testGuard()
	guard.Members = memberStore{
		1: {ID: 1, Role: models.RoleMember, Status: models.StatusActive},
		2: {ID: 2, Role: models.RoleEditor, Status: models.StatusActive},
	}
	r := gin.New()
	(&Admin{Guard: guard}).RegisterRouter(r.Group("/api"))

	sign := func(id uint64) string {
		tok, err := jwt.GenerateToken([]byte(guard.Config.Jwt.Secret), id, jwt.TokenAccess, time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		return "Bearer " + tok
	}

	cases := []struct {
		name   string
		method string
		path   string
		member uint64
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/v1/admin/leaderboard", 0, http.StatusUnauthorized},
		{"member on moderation", http.MethodGet, "/api/v1/admin/submissions", 1, http.StatusForbidden},
		{"member on admin", http.MethodPost, "/api/v1/admin/points", 1, http.StatusForbidden},
		{"editor on admin", http.MethodPost, "/api/v1/admin/points", 2, http.StatusForbidden},
		{"editor on level table", http.MethodPut, "/api/v1/admin/levels", 2, http.StatusForbidden},
		{"editor on email flag", http.MethodPut, "/api/v1/admin/members/1/email-verified", 2, http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, c.path, nil)
			if c.member != 0 {
				req.Header.Set("Authorization", sign(c.member))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("status = %d, want %d", w.Code, c.want)
			}
		})
	}
}

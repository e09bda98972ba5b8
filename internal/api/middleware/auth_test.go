package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/config"
	"github.com/tuankietsieucapvippro/dormitory-management-project-sub000/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	})
}

func newAuthTestEngine(mgr *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", JWTAuth(mgr, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

// Redis 降级（nil 客户端）时认证请求必须照常放行，不得崩溃
func TestJWTAuth_NilRedisDegrades(t *testing.T) {
	mgr := newTestJWTManager()
	token, err := mgr.GenerateAccessToken("acc-001", "admin", "admin")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	r := newAuthTestEngine(mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := newAuthTestEngine(newTestJWTManager())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	mgr := newTestJWTManager()
	token, err := mgr.GenerateRefreshToken("acc-001", "admin", "admin")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	r := newAuthTestEngine(mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("RefreshToken 不可用于访问接口，期望 401，实际=%d", w.Code)
	}
}

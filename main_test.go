package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/handler"
	"github.com/mule-triage/backend/internal/service"
)

func testRouterDeps(t *testing.T, withAuth bool) routerDeps {
	t.Helper()

	deps := routerDeps{
		analyze: handler.NewAnalyzeHandler(nil),
		proxy:   handler.NewProxyHandler(nil, nil),
		runs:    handler.NewRunsHandler(nil),
		similar: handler.NewSimilarHandler(nil),
	}
	if withAuth {
		authSvc, err := service.NewAuthService(nil, config.AuthConfig{
			JWTSecret:     "test-secret",
			JWTAccessTTL:  "15m",
			JWTRefreshTTL: "720h",
		})
		if err != nil {
			t.Fatalf("failed to build auth service: %v", err)
		}
		deps.authSvc = authSvc
		deps.auth = handler.NewAuthHandler(authSvc, nil)
		deps.profile = handler.NewProfileHandler(nil)
	}
	return deps
}

// 인증이 구성되면 파이프라인/이력 라우트는 전부 토큰 검사를 거친다
func TestRouterProtectsPipelineRoutesWhenAuthConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(config.Config{}, testRouterDeps(t, true))

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/analyze"},
		{http.MethodPost, "/api/v1/proxy"},
		{http.MethodGet, "/api/v1/runs"},
		{http.MethodGet, "/api/v1/runs/some-id"},
		{http.MethodPost, "/api/v1/incidents/similar"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/auth/me"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			// 토큰 없음
			w := httptest.NewRecorder()
			req := httptest.NewRequest(rt.method, rt.path, nil)
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("without token: status = %d, want 401", w.Code)
			}

			// 위조 토큰
			w = httptest.NewRecorder()
			req = httptest.NewRequest(rt.method, rt.path, nil)
			req.Header.Set("Authorization", "Bearer not-a-real-token")
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("with forged token: status = %d, want 401", w.Code)
			}
		})
	}

	// 로그인/헬스체크는 토큰 없이 접근 가능해야 한다
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code == http.StatusUnauthorized {
		t.Fatal("ping should not require a token")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/config", nil))
	if w.Code == http.StatusUnauthorized {
		t.Fatal("auth config should not require a token")
	}
}

// Postgres 미구성 모드: 계정 저장소가 없으므로 파이프라인 라우트는 공개
func TestRouterOpenModeWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(config.Config{}, testRouterDeps(t, false))

	// 이력 저장소도 없으므로 503이지만, 401은 아니어야 한다
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("runs without store: status = %d, want 503", w.Code)
	}

	// 인증 라우트 자체가 등록되지 않는다
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("auth login without store: status = %d, want 404", w.Code)
	}
}

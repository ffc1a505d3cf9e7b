// Mule 알림 triage API 서버 진입점
//
// 필수 구성은 알림 메일 API 주소와 AI 자격증명뿐이다.
// Postgres가 없으면 실행 이력/프로필/인증 없이 파이프라인만 동작하고,
// 해당 엔드포인트는 503을 반환한다.

// @title Mule Triage API
// @version 1.0
// @description Alert-to-incident triage backend: email classification, observability enrichment and runbook assembly.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/db"
	"github.com/mule-triage/backend/internal/handler"
	"github.com/mule-triage/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	// ------------------------------------------------------------------
	// 외부 클라이언트
	// ------------------------------------------------------------------
	proxyClient := client.NewProxyClient(cfg.Sources)
	alertsClient := client.NewAlertsClient(cfg.Sources, cfg.Pipeline, proxyClient)
	obsClient := client.NewObservabilityClient(cfg.Sources, cfg.Pipeline, proxyClient)
	slackClient := client.NewSlackClient(cfg.Slack, cfg.Server.FrontendURL)

	genaiClient, err := client.NewGenAIClient(cfg.GenAI)
	if err != nil {
		// 분류는 AI 없이는 불가능하지만, 프록시 등 나머지는 동작해야 한다
		log.Printf("GenAI client unavailable: %v (analysis will return 503)", err)
		genaiClient = nil
	}

	// ------------------------------------------------------------------
	// 저장소 (선택)
	// ------------------------------------------------------------------
	var store *db.Postgres
	if cfg.Postgres.Configured() {
		pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		store = db.NewPostgres(pool)

		if err := store.EnsureRunSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure run schema: %v", err)
		}
		if err := store.EnsureEmbeddingSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure embedding schema: %v", err)
		}
	} else {
		log.Printf("Postgres not configured - run history, profile and auth are disabled")
	}

	// ------------------------------------------------------------------
	// 서비스
	// ------------------------------------------------------------------
	// typed-nil이 인터페이스 파라미터로 흘러들지 않게 명시적으로 분기
	classifier := service.NewClassifierService(nil)
	narrator := service.NewNarrativeService(nil)
	if genaiClient != nil {
		classifier = service.NewClassifierService(genaiClient)
		narrator = service.NewNarrativeService(genaiClient)
	}
	enricher := service.NewEnrichmentService(obsClient, narrator, cfg.Pipeline)

	var embeddingSvc *service.EmbeddingService
	if store != nil && genaiClient != nil {
		embeddingSvc = service.NewEmbeddingService(store, genaiClient)
	}

	var runStore service.RunStore
	if store != nil {
		runStore = store
	}
	var indexer service.IncidentIndexer
	if embeddingSvc != nil {
		indexer = embeddingSvc
	}

	analyzeSvc := service.NewAnalyzeService(alertsClient, classifier, enricher, runStore, indexer, slackClient)

	var authSvc *service.AuthService
	var profileSvc *service.ProfileService
	if store != nil {
		authSvc, err = service.NewAuthService(store, cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to init auth service: %v", err)
		}
		if err := authSvc.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure auth schema: %v", err)
		}
		if err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("Failed to ensure admin account: %v", err)
		}
		profileSvc = service.NewProfileService(store)
	}

	// ------------------------------------------------------------------
	// 라우터
	// ------------------------------------------------------------------
	deps := routerDeps{
		analyze: handler.NewAnalyzeHandler(analyzeSvc),
		proxy:   handler.NewProxyHandler(alertsClient, obsClient),
		runs:    handler.NewRunsHandler(store),
		similar: handler.NewSimilarHandler(embeddingSvc),
		authSvc: authSvc,
	}
	if authSvc != nil {
		deps.auth = handler.NewAuthHandler(authSvc, profileSvc)
		deps.profile = handler.NewProfileHandler(profileSvc)
	}
	router := setupRouter(cfg, deps)

	log.Printf("Starting server on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// routerDeps - 라우트에 묶이는 핸들러 묶음
// auth/profile/authSvc는 Postgres 미구성 시 nil
type routerDeps struct {
	analyze *handler.AnalyzeHandler
	proxy   *handler.ProxyHandler
	runs    *handler.RunsHandler
	similar *handler.SimilarHandler
	auth    *handler.AuthHandler
	profile *handler.ProfileHandler
	authSvc *service.AuthService
}

// setupRouter - 전체 라우트 테이블 구성
//
// 인증이 구성되면 분석/프록시/이력/유사검색 라우트 전부 토큰 검사 뒤로
// 들어간다. Postgres 미구성 모드는 계정 저장소가 없으므로 공개로 동작한다.
func setupRouter(cfg config.Config, deps routerDeps) *gin.Engine {
	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins, true))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api/v1")

	protected := api
	if deps.authSvc != nil {
		api.POST("/auth/register", deps.auth.Register)
		api.POST("/auth/login", deps.auth.Login)
		api.POST("/auth/refresh", deps.auth.Refresh)
		api.POST("/auth/logout", deps.auth.Logout)
		api.GET("/auth/config", deps.auth.Config)

		protected = api.Group("")
		protected.Use(handler.AuthMiddleware(deps.authSvc))

		protected.GET("/auth/me", deps.auth.Me)
		protected.GET("/profile", deps.profile.Get)
		protected.PUT("/profile", deps.profile.Update)
	}

	protected.POST("/analyze", deps.analyze.Analyze)
	protected.POST("/proxy", deps.proxy.Forward)
	protected.GET("/runs", deps.runs.List)
	protected.GET("/runs/:id", deps.runs.Detail)
	protected.POST("/incidents/similar", deps.similar.Search)

	return router
}

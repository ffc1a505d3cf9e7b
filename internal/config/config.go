// 환경변수 기반 설정 로딩
//
// 파이프라인 동작 플래그(ENABLE_OBSERVABILITY, USE_EDGE_FUNCTION)는
// 호출 깊숙한 곳에서 env를 직접 읽지 않고, Load 시점에 Pipeline 구조체로
// 고정하여 파이프라인 진입점에 명시적으로 주입한다.

package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Sources  SourcesConfig
	Pipeline Pipeline
	GenAI    GenAIConfig
	Slack    SlackConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string
}

// SourcesConfig - 알림 메일 API / 옵저버빌리티 API / CORS 우회 프록시 주소
type SourcesConfig struct {
	AlertsBaseURL        string
	ObservabilityBaseURL string
	EdgeFunctionURL      string
	EdgeFunctionToken    string
}

// Pipeline - 분석 파이프라인에 주입되는 불변 설정
type Pipeline struct {
	// ObservabilityEnabled가 false면 status/deployment/smoke 조회를 생략하고
	// "Disabled" 스냅샷을 합성한다
	ObservabilityEnabled bool

	// UseEdgeFunction이 true면 외부 API 호출을 CORS 우회 프록시로 라우팅
	UseEdgeFunction bool

	// 옵저버빌리티 개별 조회 타임아웃
	LookupTimeout time.Duration

	// 알림 메일 조회 타임아웃
	FetchTimeout time.Duration
}

type GenAIConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
}

type SlackConfig struct {
	BotToken  string
	ChannelID string
}

type AuthConfig struct {
	JWTSecret      string
	JWTAccessTTL   string
	JWTRefreshTTL  string
	AllowSignup    string
	CookieSecure   string
	CookieSameSite string
	CookieDomain   string
	CookiePath     string
	AdminUsername  string
	AdminPassword  string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// Configured - 연결을 시도할 만큼 설정이 채워져 있는지
// false면 이력/인증 기능 없이 기동한다
func (c PostgresConfig) Configured() bool {
	return c.DatabaseURL != "" || (c.User != "" && c.Database != "")
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
			FrontendURL:    os.Getenv("FRONTEND_URL"),
		},
		Sources: SourcesConfig{
			AlertsBaseURL:        os.Getenv("MULE_API_BASE_URL"),
			ObservabilityBaseURL: os.Getenv("OBSERVABILITY_API_BASE_URL"),
			EdgeFunctionURL:      os.Getenv("EDGE_FUNCTION_URL"),
			EdgeFunctionToken:    os.Getenv("EDGE_FUNCTION_TOKEN"),
		},
		Pipeline: Pipeline{
			ObservabilityEnabled: getenv("ENABLE_OBSERVABILITY", "true") != "false",
			UseEdgeFunction:      getenv("USE_EDGE_FUNCTION", "true") != "false",
			LookupTimeout:        getduration("OBSERVABILITY_LOOKUP_TIMEOUT", 5*time.Second),
			FetchTimeout:         getduration("ALERTS_FETCH_TIMEOUT", 10*time.Second),
		},
		GenAI: GenAIConfig{
			APIKey:         os.Getenv("AI_API_KEY"),
			Model:          getenv("AI_MODEL", "gemini-2.0-flash"),
			EmbeddingModel: getenv("AI_EMBEDDING_MODEL", "text-embedding-004"),
		},
		Slack: SlackConfig{
			BotToken:  os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		Auth: AuthConfig{
			JWTSecret:      os.Getenv("JWT_SECRET"),
			JWTAccessTTL:   getenv("JWT_ACCESS_TTL", "15m"),
			JWTRefreshTTL:  getenv("JWT_REFRESH_TTL", "720h"),
			AllowSignup:    os.Getenv("ALLOW_SIGNUP"),
			CookieSecure:   os.Getenv("AUTH_COOKIE_SECURE"),
			CookieSameSite: os.Getenv("AUTH_COOKIE_SAMESITE"),
			CookieDomain:   os.Getenv("AUTH_COOKIE_DOMAIN"),
			CookiePath:     os.Getenv("AUTH_COOKIE_PATH"),
			AdminUsername:  os.Getenv("ADMIN_USERNAME"),
			AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(val string) []string {
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

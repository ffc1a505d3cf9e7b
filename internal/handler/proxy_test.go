package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

func proxyRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sources := config.SourcesConfig{
		AlertsBaseURL:        upstreamURL,
		ObservabilityBaseURL: upstreamURL,
	}
	pipeline := config.Pipeline{
		FetchTimeout:  time.Second,
		LookupTimeout: time.Second,
	}
	h := NewProxyHandler(
		client.NewAlertsClient(sources, pipeline, nil),
		client.NewObservabilityClient(sources, pipeline, nil),
	)

	r := gin.New()
	r.POST("/api/v1/proxy", h.Forward)
	return r
}

func postProxy(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, model.ProxyResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/proxy", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope model.ProxyResponse
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestProxyInvalidEnvelope(t *testing.T) {
	r := proxyRouter("http://unused.local")

	tests := []struct {
		name string
		body string
	}{
		{"unknown-endpoint", `{"endpoint":"secrets"}`},
		{"missing-endpoint", `{}`},
		{"observability-without-service", `{"endpoint":"observability","action":"status"}`},
		{"broken-json", `{"endpoint"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := postProxy(t, r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestProxyForwardsAlerts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/alerts" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("count") != "5" {
			t.Errorf("count not forwarded: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"subject":"s"}]}`))
	}))
	defer upstream.Close()

	r := proxyRouter(upstream.URL)
	w, envelope := postProxy(t, r, `{"endpoint":"alerts","count":5}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !envelope.Success || envelope.Status != http.StatusOK {
		t.Fatalf("envelope = %+v, want success", envelope)
	}
	if !strings.Contains(string(envelope.Data), `"subject":"s"`) {
		t.Fatalf("upstream body should pass through untouched: %s", envelope.Data)
	}
}

// 업스트림 실패도 HTTP 200 + success=false envelope으로 나간다
func TestProxyWrapsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	r := proxyRouter(upstream.URL)
	w, envelope := postProxy(t, r, `{"endpoint":"observability","action":"status","service":"order-api"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Success {
		t.Fatal("envelope should report failure")
	}
	if envelope.Status != http.StatusInternalServerError {
		t.Fatalf("envelope status = %d, want 500", envelope.Status)
	}
	if envelope.Error == "" {
		t.Fatal("envelope should carry the upstream error")
	}
}

func TestProxyWrapsTransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // 즉시 닫아서 연결 거부 유도

	r := proxyRouter(upstream.URL)
	w, envelope := postProxy(t, r, `{"endpoint":"alerts","count":1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if envelope.Success || envelope.Error == "" {
		t.Fatalf("envelope = %+v, want transport failure wrapped", envelope)
	}
}

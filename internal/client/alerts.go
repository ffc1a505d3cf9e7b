// 알림 메일 API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - MULE_API_BASE_URL: 알림 메일 API 주소 (직접 호출 경로)
//
// 라우팅:
//   - USE_EDGE_FUNCTION=true면 CORS 우회 프록시 경유 (기본값)
//   - false면 GET /api/alerts 직접 호출

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

// AlertsClient 구조체 정의
type AlertsClient struct {
	baseURL    string
	useProxy   bool
	proxy      *ProxyClient
	httpClient *http.Client
}

// AlertsClient 객체 생성
func NewAlertsClient(sources config.SourcesConfig, pipeline config.Pipeline, proxy *ProxyClient) *AlertsClient {
	return &AlertsClient{
		baseURL:    sources.AlertsBaseURL,
		useProxy:   pipeline.UseEdgeFunction && proxy != nil && proxy.IsConfigured(),
		proxy:      proxy,
		httpClient: newHTTPClient(pipeline.FetchTimeout),
	}
}

// FetchAlerts - 알림 메일 목록을 원시 JSON으로 조회
//
// 응답 형태(배열/래퍼 객체)는 여기서 판단하지 않고 service 레이어의
// normalizer에 넘긴다.
func (c *AlertsClient) FetchAlerts(ctx context.Context, params model.AnalyzeRequest) (json.RawMessage, error) {
	if c.useProxy {
		resp, err := c.proxy.Call(ctx, model.ProxyRequest{
			Endpoint: "alerts",
			Count:    params.Count,
			From:     params.From,
			To:       params.To,
		})
		if err != nil {
			return nil, err
		}
		return c.proxy.unwrap(resp)
	}

	return c.FetchDirect(ctx, params)
}

// FetchDirect - 프록시를 거치지 않는 직접 조회
// 서버 내장 프록시 엔드포인트가 포워딩할 때도 이 경로를 쓴다
func (c *AlertsClient) FetchDirect(ctx context.Context, params model.AnalyzeRequest) (json.RawMessage, error) {
	query := url.Values{}
	if params.Count > 0 {
		query.Set("count", strconv.Itoa(params.Count))
	}
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}

	endpoint := c.baseURL + "/api/alerts"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return json.RawMessage(body), nil
}

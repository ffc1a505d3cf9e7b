// 옵저버빌리티 API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - OBSERVABILITY_API_BASE_URL: 옵저버빌리티 API 주소 (직접 호출 경로)
//
// action별 응답 형태가 다르므로 원시 JSON으로 반환하고
// 파싱은 enrichment 서비스에서 수행한다.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

// 옵저버빌리티 조회 종류
const (
	ActionStatus     = "status"
	ActionDeployment = "deployment"
	ActionSmoke      = "smoke"
)

// ObservabilityClient 구조체 정의
type ObservabilityClient struct {
	baseURL    string
	useProxy   bool
	proxy      *ProxyClient
	httpClient *http.Client
}

// ObservabilityClient 객체 생성
func NewObservabilityClient(sources config.SourcesConfig, pipeline config.Pipeline, proxy *ProxyClient) *ObservabilityClient {
	return &ObservabilityClient{
		baseURL:    sources.ObservabilityBaseURL,
		useProxy:   pipeline.UseEdgeFunction && proxy != nil && proxy.IsConfigured(),
		proxy:      proxy,
		httpClient: newHTTPClient(pipeline.LookupTimeout),
	}
}

// Lookup - action(status|deployment|smoke) 1건 조회
//
// 조회 실패는 호출한 쪽에서 독립적으로 흡수한다 - 세 조회 중 하나가
// 실패해도 나머지에 영향을 주지 않는다.
func (c *ObservabilityClient) Lookup(ctx context.Context, action, service string) (json.RawMessage, error) {
	if c.useProxy {
		resp, err := c.proxy.Call(ctx, model.ProxyRequest{
			Endpoint: "observability",
			Action:   action,
			Service:  service,
		})
		if err != nil {
			return nil, err
		}
		return c.proxy.unwrap(resp)
	}

	return c.LookupDirect(ctx, action, service)
}

// LookupDirect - 프록시를 거치지 않는 직접 조회
// 서버 내장 프록시 엔드포인트가 포워딩할 때도 이 경로를 쓴다
func (c *ObservabilityClient) LookupDirect(ctx context.Context, action, service string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("action", action)
	query.Set("service", service)
	endpoint := c.baseURL + "/observability?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup %s: %w", action, err)
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

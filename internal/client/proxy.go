// 외부 CORS 우회 프록시(edge function)와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - EDGE_FUNCTION_URL: 프록시 주소
//   - EDGE_FUNCTION_TOKEN: Bearer 토큰 (선택)
//
// 프록시에 전달하는 데이터:
//   - endpoint: alerts | observability
//   - observability일 때 action/service, alerts일 때 count/from/to

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

// ProxyClient 구조체 정의
type ProxyClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ProxyClient 객체 생성
func NewProxyClient(cfg config.SourcesConfig) *ProxyClient {
	return &ProxyClient{
		baseURL:    cfg.EdgeFunctionURL,
		token:      cfg.EdgeFunctionToken,
		httpClient: newHTTPClient(15 * time.Second),
	}
}

// 프록시 설정 여부 체크
func (c *ProxyClient) IsConfigured() bool {
	return c.baseURL != ""
}

// Call - 프록시에 forwarding 요청하고 envelope을 그대로 반환
func (c *ProxyClient) Call(ctx context.Context, req model.ProxyRequest) (*model.ProxyResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proxy request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call edge function: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// 프록시는 업스트림 실패도 success=false + 200으로 감싼다
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, URL: c.baseURL}
	}

	var proxyResp model.ProxyResponse
	if err := json.Unmarshal(body, &proxyResp); err != nil {
		return nil, fmt.Errorf("failed to parse proxy response: %w", err)
	}

	return &proxyResp, nil
}

// unwrap - envelope에서 data를 꺼내고 success=false는 에러로 변환
func (c *ProxyClient) unwrap(resp *model.ProxyResponse) (json.RawMessage, error) {
	if !resp.Success {
		if resp.Error != "" {
			return nil, fmt.Errorf("edge function error: %s", resp.Error)
		}
		return nil, fmt.Errorf("edge function returned success=false")
	}
	return resp.Data, nil
}

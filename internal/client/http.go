// 외부 API 클라이언트 공통 유틸
// 전송 계층 실패(CORS/네트워크)와 HTTP 에러 응답을 구분하기 위한 타입 정의

package client

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// HTTPStatusError - 업스트림이 2xx 외 상태코드로 응답한 경우
// 전송 실패와 달리 서버까지는 도달했음을 의미
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d (%s)", e.StatusCode, e.URL)
}

// IsTransportError - 응답 자체를 받지 못한 실패인지 판정
// (DNS/연결 거부/타임아웃 등 - 브라우저에서는 CORS 차단이 이 형태로 관측됨)
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

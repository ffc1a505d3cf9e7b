package model

import "encoding/json"

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AuthLogoutResponse struct {
	Status string `json:"status"`
}

// ProxyRequest - CORS 우회 프록시 요청 envelope
type ProxyRequest struct {
	Endpoint string `json:"endpoint"` // alerts | observability

	// observability 전용
	Action  string `json:"action,omitempty"` // status | deployment | smoke
	Service string `json:"service,omitempty"`

	// alerts 전용
	Count int    `json:"count,omitempty"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

// ProxyResponse - 프록시 응답 envelope
// 업스트림 실패도 success=false로 감싸서 200으로 반환한다
// (호출 측이 상태코드 분기 없이 처리할 수 있게)
type ProxyResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Status  int             `json:"status,omitempty"`
	Error   string          `json:"error,omitempty"`
}

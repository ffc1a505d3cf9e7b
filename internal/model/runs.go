package model

import (
	"encoding/json"
	"time"
)

// ============================================================================
// 분석 실행 이력 (append-only - 이후 실행이 이전 실행을 수정하지 않음)
// ============================================================================

// RunRecord - 실행 1회 저장 요청 (요청 파라미터 + 최종 응답)
type RunRecord struct {
	RunID      string
	Params     AnalyzeRequest
	EmailCount int
	Response   IncidentAnalysisResponse
}

// RunListResponse - 실행 목록 조회용 구조체
type RunListResponse struct {
	RunID              string    `json:"run_id"`
	EmailCount         int       `json:"email_count"`
	IncidentCount      int       `json:"incident_count"`
	TopIncidentService string    `json:"top_incident_service"`
	CreatedAt          time.Time `json:"created_at"`
}

// RunDetailResponse - 실행 상세 조회용 구조체
type RunDetailResponse struct {
	RunID              string    `json:"run_id"`
	RequestedCount     *int      `json:"requested_count"`
	RequestedFrom      *string   `json:"requested_from"`
	RequestedTo        *string   `json:"requested_to"`
	EmailCount         int       `json:"email_count"`
	IncidentCount      int       `json:"incident_count"`
	TopIncidentService string    `json:"top_incident_service"`
	CreatedAt          time.Time `json:"created_at"`

	// DB의 JSONB 컬럼을 그대로 바이트로 받아서 전달
	Runbook json.RawMessage `json:"runbook" swaggertype:"object"`

	// 실행에 포함된 Incident 목록 (상세 조회 시 포함)
	Incidents []StoredIncident `json:"incidents"`
}

// StoredIncident - 이력 조회용 Incident 레코드
type StoredIncident struct {
	IncidentID string `json:"incident_id"`
	RunID      string `json:"run_id"`
	Ordinal    int    `json:"ordinal"`
	Service    string `json:"service"`
	Severity   string `json:"severity"`
	Summary    string `json:"summary"`
	AppName    string `json:"app_name"`
	Source     string `json:"source"`
	Timestamp  string `json:"timestamp"`

	Snapshot  json.RawMessage `json:"observability_data" swaggertype:"object"`
	Narrative json.RawMessage `json:"ai_health_summary" swaggertype:"object"`
}

// RunListEnvelope - 실행 목록 API 응답 구조체
type RunListEnvelope struct {
	Status string            `json:"status"`
	Data   []RunListResponse `json:"data"`
}

// RunDetailEnvelope - 실행 상세 API 응답 구조체
type RunDetailEnvelope struct {
	Status string             `json:"status"`
	Data   *RunDetailResponse `json:"data"`
}

package model

// ============================================================================
// Incident 모델 (분석 1회 실행 단위의 최종 출력)
// ============================================================================

// P-스케일 심각도 (필터링/표시용)
const (
	SeverityP1 = "P1"
	SeverityP2 = "P2"
	SeverityP3 = "P3"
	SeverityP4 = "P4"
)

// Incident - 분류 결과 + 원본 이메일 + 옵저버빌리티 보강을 병합한 단위
// 실행마다 새로 조립되는 순수 값이며, 다음 실행이 이전 결과를 전부 대체
type Incident struct {
	ID       string `json:"id"`
	Service  string `json:"service"`
	Severity string `json:"severity"` // P1 | P2 | P3

	// DisplaySeverity: High | Medium | Low
	// 서술의 recommendedSeverity가 있으면 그것을, 없으면 Severity를
	// 라벨로 변환한 값 - 표시 측에서 재계산하지 않는다
	DisplaySeverity string `json:"displaySeverity,omitempty"`

	Summary string `json:"summary"`

	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Status    string `json:"status"`

	// RawContent: 원본 이메일의 HTML 본문
	// 분류기 요약으로 대체하지 않음 - LLM 왕복으로 인한 손실 방지
	RawContent string `json:"rawContent,omitempty"`

	AppName     string `json:"appName,omitempty"`
	Environment string `json:"environment,omitempty"`
	Object      string `json:"object,omitempty"`
	Importance  string `json:"importance,omitempty"` // high | normal

	ErrorMessage string `json:"errorMessage,omitempty"`

	// 같은 실행에서 조회한 옵저버빌리티 스냅샷/서술
	ObservabilityData *ObservabilitySnapshot `json:"observabilityData,omitempty"`
	AIHealthSummary   *HealthNarrative       `json:"aiHealthSummary,omitempty"`
}

// Hypothesis - 런북 근본원인 가설 (실행당 정확히 1개)
type Hypothesis struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Confidence  int    `json:"confidence"` // 0-100
}

// RunbookStep - 런북 조치 단계 (분류 결과 상위 3건의 suggestedAction에서 파생)
type RunbookStep struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ToolToCall  string `json:"toolToCall,omitempty"`
	ToolResult  string `json:"toolResult,omitempty"`
}

// Runbook - 실행 1회당 1개 합성되는 대응 요약 (incident별 아님)
type Runbook struct {
	IncidentSummary string        `json:"incidentSummary"`
	Hypotheses      []Hypothesis  `json:"hypotheses"`
	Steps           []RunbookStep `json:"steps"`
}

// IncidentAnalysisResponse - 분석 API 최종 응답
type IncidentAnalysisResponse struct {
	RunID              string     `json:"run_id,omitempty"`
	Incidents          []Incident `json:"incidents"`
	TopIncidentService string     `json:"topIncidentService"`
	Runbook            Runbook    `json:"runbook"`
}

// AnalyzeRequest - 분석 실행 요청
// from을 지정하면 to도 반드시 지정해야 한다
type AnalyzeRequest struct {
	Count int    `json:"count,omitempty"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

package model

// 스냅샷 센티널 값
// 필드 부재 대신 항상 이 값으로 채워서 스냅샷이 부분 생성되는 일이 없게 한다
const (
	SnapshotUnknown = "Unknown"
	SnapshotNA      = "N/A"

	// 스냅샷 status 특수값
	StatusDisabled    = "Disabled"
	StatusUnavailable = "Unavailable"
	StatusCORSBlocked = "CORS Blocked"
)

// ObservabilitySnapshot - 애플리케이션 1개에 대한 옵저버빌리티 스냅샷
// 모든 필드는 조회 실패 시 센티널로 채워진다
type ObservabilitySnapshot struct {
	Status        string `json:"status"`
	LastCheckTime string `json:"lastCheckTime"`
	Version       string `json:"version"`
	DeployedAt    string `json:"deployedAt"`
	DeployedBy    string `json:"deployedBy"`
	ChangeSummary string `json:"changeSummary"`
	Smoke         string `json:"smoke"` // Passed | Failed | N/A
}

// HealthNarrative - 스냅샷 + 알림 맥락으로 생성한 건강 상태 서술
// 생성 실패/스킵 시에는 nil - 빈 섹션을 유의미한 값처럼 흘리지 않는다
type HealthNarrative struct {
	StatusSection     string `json:"statusSection"`
	DeploymentSection string `json:"deploymentSection"`
	SmokeSection      string `json:"smokeSection"`
	Conclusion        string `json:"conclusion"`

	// RecommendedSeverity: P1~P4, 있으면 분류기 심각도보다 우선
	RecommendedSeverity string `json:"recommendedSeverity,omitempty"`
}

// ============================================================================
// 옵저버빌리티 API 개별 조회 응답 (action별로 형태가 다름)
// ============================================================================

// StatusLookup - action=status 응답
type StatusLookup struct {
	Status        string `json:"status"`
	LastCheckTime string `json:"lastCheckTime"`
}

// DeploymentLookup - action=deployment 응답
type DeploymentLookup struct {
	Version       string `json:"version"`
	DeployedAt    string `json:"deployedAt"`
	DeployedBy    string `json:"deployedBy"`
	ChangeSummary string `json:"changeSummary"`
}

// SmokeLookup - action=smoke 응답
type SmokeLookup struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// 분류 서비스(LLM)가 반환하는 알림 분석 결과 구조체 정의
// service, handler, db 레이어에서 공통으로 사용

package model

// 분류 심각도 라벨 (LLM 출력 계약)
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// ClassifiedAlert - 입력 이메일 1건당 정확히 1건 생성되는 분류 결과
// 입력 N건 ⇒ 출력 N건 계약이며, 길이가 다르면 분류 실패로 처리
type ClassifiedAlert struct {
	// EmailIndex: 원본 이메일로의 위치 역참조
	// 짝짓기는 항상 이 인덱스가 우선이며, 인덱스가 없는 레거시 응답만
	// 제목 부분일치 폴백을 사용
	EmailIndex *int `json:"emailIndex,omitempty"`

	ID              string `json:"id"`
	Title           string `json:"title"`
	OriginalSubject string `json:"originalSubject,omitempty"`

	// Summary: bodyPreview에서 추출한 구체적 에러 요약
	// 알림별로 고유해야 하며, 동일한 템플릿 문구 반복은 계약 위반
	Summary string `json:"summary"`

	// Severity: Low | Medium | High | Critical
	Severity string `json:"severity"`

	SuggestedAction string `json:"suggestedAction"`
	Sender          string `json:"sender"`

	// Timestamp: ISO-8601
	Timestamp string `json:"timestamp"`

	// AppName: 귀속 애플리케이션 (apiName에서 추출)
	AppName     string `json:"appName"`
	Environment string `json:"environment,omitempty"`
	Object      string `json:"object,omitempty"`
}

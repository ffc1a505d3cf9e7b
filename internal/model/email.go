// 알림 메일 API가 반환하는 이메일 레코드 구조체 정의
// 업스트림 필드명이 불안정해서(displayName/from, lastupdatedTime/date)
// 후보 필드를 모두 받아두고 접근자에서 우선순위를 정리한다

package model

// RawAlertEmail - 알림 메일 API의 개별 이메일
// 필드 단위 검증은 하지 않음 - 비어 있으면 하류에서 기본값 처리
type RawAlertEmail struct {
	Subject string `json:"subject"`

	// 발신자: displayName 우선, 없으면 from
	DisplayName string `json:"displayName,omitempty"`
	From        string `json:"from,omitempty"`

	// 타임스탬프: lastupdatedTime 우선, 없으면 date
	LastUpdatedTime string `json:"lastupdatedTime,omitempty"`
	Date            string `json:"date,omitempty"`

	// APIName: 알림이 귀속되는 애플리케이션 이름 (예: "order-api")
	APIName     string `json:"apiName,omitempty"`
	Environment string `json:"environment,omitempty"`
	Object      string `json:"object,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Importance  string `json:"importance,omitempty"`

	// BodyPreview: 에러 상세가 추출된 플레인 텍스트 발췌
	// 분류 요청에는 HTML 본문 대신 이 필드만 전송 (토큰 절약)
	BodyPreview string `json:"bodyPreview,omitempty"`

	// Content: HTML 원문 - 분류 요청에는 보내지 않고
	// Incident.RawContent 채울 때만 로컬에서 사용
	Content string `json:"content,omitempty"`
}

// Sender - displayName 우선 발신자 결정
func (e RawAlertEmail) Sender() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.From
}

// Timestamp - lastupdatedTime 우선 타임스탬프 결정
func (e RawAlertEmail) Timestamp() string {
	if e.LastUpdatedTime != "" {
		return e.LastUpdatedTime
	}
	return e.Date
}

// StrippedAlert - 분류 요청용 경량 레코드
// emailIndex는 분류 결과를 원본 이메일과 정확히 짝지을 때 사용
type StrippedAlert struct {
	EmailIndex  int    `json:"emailIndex"`
	Subject     string `json:"subject"`
	Sender      string `json:"sender"`
	Timestamp   string `json:"timestamp"`
	APIName     string `json:"apiName"`
	Environment string `json:"environment,omitempty"`
	Object      string `json:"object,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Importance  string `json:"importance,omitempty"`
	BodyPreview string `json:"bodyPreview"`
}

// 심각도 스케일 변환
//
// 분류기는 Critical/High/Medium/Low 를 내고, Incident는 P-스케일(P1~P3)을
// 쓰고, 표시 라벨은 다시 High/Medium/Low로 돌아간다. 세 스케일 간 변환을
// 여기에 모아둔다.

package service

import (
	"strings"

	"github.com/mule-triage/backend/internal/model"
)

// toPScale - 분류기 심각도를 P-스케일로 변환
// 알 수 없는 값은 P3으로 수렴 (과소경보보다 안전)
func toPScale(severity string) string {
	switch severity {
	case model.SeverityCritical:
		return model.SeverityP1
	case model.SeverityHigh:
		return model.SeverityP2
	default:
		return model.SeverityP3
	}
}

// MapSeverityToLabel - P-스케일/분류기 심각도를 표시 라벨로 변환
// LLM이 주는 recommendedSeverity는 대소문자가 들쭉날쭉하므로 대문자로
// 정규화한 뒤 매칭한다. 매핑에 없는 값은 그대로 통과시킨다
func MapSeverityToLabel(severity string) string {
	switch strings.ToUpper(severity) {
	case model.SeverityP1, "CRITICAL":
		return model.SeverityHigh
	case model.SeverityP2, "HIGH":
		return model.SeverityMedium
	case model.SeverityP3, model.SeverityP4, "MEDIUM", "LOW":
		return model.SeverityLow
	default:
		return severity
	}
}

// EffectiveSeverity - 표시/정렬에 쓰는 최종 심각도
// 서술의 recommendedSeverity가 있으면 분류기 심각도를 무조건 덮어쓴다
func EffectiveSeverity(inc model.Incident) string {
	if inc.AIHealthSummary != nil && inc.AIHealthSummary.RecommendedSeverity != "" {
		return inc.AIHealthSummary.RecommendedSeverity
	}
	return inc.Severity
}

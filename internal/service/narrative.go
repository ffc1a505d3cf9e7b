// 건강 상태 서술 생성 서비스
//
// 스냅샷 + 알림 맥락으로 섹션별 서술을 생성한다. 서술은 장식이므로
// 어떤 실패도 실행을 중단시키지 않는다 - 실패하면 nil을 반환하고
// incident는 서술 없이 그대로 나간다.

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mule-triage/backend/internal/model"
	"github.com/mule-triage/backend/internal/prompt"
)

// NarrativeService 구조체 정의
type NarrativeService struct {
	generator jsonGenerator
}

// NarrativeService 객체 생성
func NewNarrativeService(generator jsonGenerator) *NarrativeService {
	return &NarrativeService{generator: generator}
}

// Summarize - 스냅샷과 알림 맥락으로 HealthNarrative 생성
//
// 반환이 nil이면 생성 실패/스킵 - 호출자는 빈 서술을 만들지 않고
// 필드를 생략해야 한다.
func (s *NarrativeService) Summarize(ctx context.Context, snapshot model.ObservabilitySnapshot, alertTitle, alertSummary string) *model.HealthNarrative {
	if s.generator == nil {
		return nil
	}

	statusJSON, _ := json.Marshal(model.StatusLookup{
		Status:        snapshot.Status,
		LastCheckTime: snapshot.LastCheckTime,
	})
	deployJSON, _ := json.Marshal(model.DeploymentLookup{
		Version:       snapshot.Version,
		DeployedAt:    snapshot.DeployedAt,
		DeployedBy:    snapshot.DeployedBy,
		ChangeSummary: snapshot.ChangeSummary,
	})
	smokeJSON, _ := json.Marshal(map[string]string{"smoke": snapshot.Smoke})

	rendered := prompt.RenderNarrative(prompt.NarrativeData{
		AlertTitle:   alertTitle,
		AlertSummary: alertSummary,
		StatusJSON:   string(statusJSON),
		DeployJSON:   string(deployJSON),
		SmokeJSON:    string(smokeJSON),

		HasObservability: snapshot.Status != model.SnapshotUnknown && snapshot.Status != model.SnapshotNA,
	})

	raw, err := s.generator.GenerateJSON(ctx, rendered)
	if err != nil {
		log.Printf("Narrative generation failed for %q: %v", alertTitle, err)
		return nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("Narrative result is not a JSON object for %q: %v", alertTitle, err)
		return nil
	}

	// 모델이 섹션을 숫자/배열로 내는 경우가 있어 전부 문자열로 강제
	return &model.HealthNarrative{
		StatusSection:       coerceString(parsed["statusSection"]),
		DeploymentSection:   coerceString(parsed["deploymentSection"]),
		SmokeSection:        coerceString(parsed["smokeSection"]),
		Conclusion:          coerceString(parsed["conclusion"]),
		RecommendedSeverity: coerceString(parsed["recommendedSeverity"]),
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// 옵저버빌리티 보강 서비스
//
// 애플리케이션 1개당 status/deployment/smoke 세 조회를 동시에 실행하고
// 결과를 단일 스냅샷으로 합성한다. 조회 실패는 센티널 값으로 흡수하며
// 보강 실패가 분석 실행을 실패시키는 일은 없다.

package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

// observabilityLookup - 옵저버빌리티 조회 클라이언트 (client.ObservabilityClient가 구현)
type observabilityLookup interface {
	Lookup(ctx context.Context, action, service string) (json.RawMessage, error)
}

// healthNarrator - 건강 상태 서술 생성기 (NarrativeService가 구현)
type healthNarrator interface {
	Summarize(ctx context.Context, snapshot model.ObservabilitySnapshot, alertTitle, alertSummary string) *model.HealthNarrative
}

// EnrichmentResult - 보강 결과
// Snapshot은 항상 완전한 값이고 Narrative만 nil일 수 있다
type EnrichmentResult struct {
	Snapshot  model.ObservabilitySnapshot
	Narrative *model.HealthNarrative
}

// EnrichmentService 구조체 정의
type EnrichmentService struct {
	obs      observabilityLookup
	narrator healthNarrator
	pipeline config.Pipeline
}

// EnrichmentService 객체 생성
func NewEnrichmentService(obs observabilityLookup, narrator healthNarrator, pipeline config.Pipeline) *EnrichmentService {
	return &EnrichmentService{obs: obs, narrator: narrator, pipeline: pipeline}
}

// Enrich - 애플리케이션 1개에 대한 스냅샷 + 서술 생성
//
// 세 조회가 전부 실패하면 상태를 Unavailable(전송 계층 차단이면
// CORS Blocked)로 표시하고, 관측값이 전무하므로 서술 생성도 건너뛴다.
func (s *EnrichmentService) Enrich(ctx context.Context, appName, alertTitle, alertSummary string) EnrichmentResult {
	now := time.Now().UTC().Format(time.RFC3339)

	if !s.pipeline.ObservabilityEnabled {
		snapshot := sentinelSnapshot(model.StatusDisabled, now)
		return EnrichmentResult{
			Snapshot:  snapshot,
			Narrative: s.summarize(ctx, snapshot, alertTitle, alertSummary),
		}
	}

	actions := []string{client.ActionStatus, client.ActionDeployment, client.ActionSmoke}
	results := make([]json.RawMessage, len(actions))
	errs := make([]error, len(actions))

	var wg sync.WaitGroup
	for i, action := range actions {
		wg.Add(1)
		go func(i int, action string) {
			defer wg.Done()
			lctx, cancel := context.WithTimeout(ctx, s.pipeline.LookupTimeout)
			defer cancel()
			results[i], errs[i] = s.obs.Lookup(lctx, action, appName)
		}(i, action)
	}
	wg.Wait()

	if errs[0] != nil && errs[1] != nil && errs[2] != nil {
		status := model.StatusUnavailable
		for _, err := range errs {
			if client.IsTransportError(err) {
				status = model.StatusCORSBlocked
				break
			}
		}
		log.Printf("All observability lookups failed for %s (status=%s): %v", appName, status, errs[0])
		return EnrichmentResult{Snapshot: sentinelSnapshot(status, now)}
	}

	snapshot := sentinelSnapshot(model.SnapshotUnknown, now)

	if errs[0] == nil {
		var status model.StatusLookup
		if err := json.Unmarshal(results[0], &status); err == nil {
			snapshot.Status = valueOr(status.Status, model.SnapshotUnknown)
			snapshot.LastCheckTime = valueOr(status.LastCheckTime, now)
		}
	}

	if errs[1] == nil {
		var deploy model.DeploymentLookup
		if err := json.Unmarshal(results[1], &deploy); err == nil {
			snapshot.Version = valueOr(deploy.Version, model.SnapshotUnknown)
			snapshot.DeployedAt = valueOr(deploy.DeployedAt, model.SnapshotUnknown)
			snapshot.DeployedBy = valueOr(deploy.DeployedBy, model.SnapshotUnknown)
			snapshot.ChangeSummary = valueOr(deploy.ChangeSummary, model.SnapshotNA)
		}
	}

	if errs[2] == nil {
		var smoke model.SmokeLookup
		if err := json.Unmarshal(results[2], &smoke); err == nil {
			if smoke.Success {
				snapshot.Smoke = "Passed"
			} else {
				snapshot.Smoke = "Failed"
			}
		}
	}

	return EnrichmentResult{
		Snapshot:  snapshot,
		Narrative: s.summarize(ctx, snapshot, alertTitle, alertSummary),
	}
}

func (s *EnrichmentService) summarize(ctx context.Context, snapshot model.ObservabilitySnapshot, alertTitle, alertSummary string) *model.HealthNarrative {
	if s.narrator == nil {
		return nil
	}
	return s.narrator.Summarize(ctx, snapshot, alertTitle, alertSummary)
}

// sentinelSnapshot - 조회값 없이 status만 지정한 완전 스냅샷
func sentinelSnapshot(status, now string) model.ObservabilitySnapshot {
	return model.ObservabilitySnapshot{
		Status:        status,
		LastCheckTime: now,
		Version:       model.SnapshotUnknown,
		DeployedAt:    model.SnapshotUnknown,
		DeployedBy:    model.SnapshotUnknown,
		ChangeSummary: model.SnapshotNA,
		Smoke:         model.SnapshotNA,
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

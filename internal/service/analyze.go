// 분석 실행 오케스트레이터
//
// 이메일 조회 → 정규화 → 분류 → (incident별) 옵저버빌리티 보강 →
// incident 조립 → 런북 합성 순서로 실행 1회를 수행한다.
// 조회/정규화/분류 실패는 실행 전체 실패, 보강/서술 실패는 흡수된다.
// 이력 저장/임베딩/Slack 알림은 전부 best-effort다.

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mule-triage/backend/internal/model"
)

// alertsFetcher - 알림 메일 조회 클라이언트 (client.AlertsClient가 구현)
type alertsFetcher interface {
	FetchAlerts(ctx context.Context, params model.AnalyzeRequest) (json.RawMessage, error)
}

// alertClassifier - 분류 서비스 (ClassifierService가 구현)
type alertClassifier interface {
	Classify(ctx context.Context, emails []model.RawAlertEmail) ([]model.ClassifiedAlert, error)
}

// incidentEnricher - 보강 서비스 (EnrichmentService가 구현)
type incidentEnricher interface {
	Enrich(ctx context.Context, appName, alertTitle, alertSummary string) EnrichmentResult
}

// RunStore - 실행 이력 저장소 (db.Postgres가 구현, 미설정이면 nil)
type RunStore interface {
	SaveRun(ctx context.Context, rec model.RunRecord) error
}

// IncidentIndexer - 유사 검색용 임베딩 색인 (EmbeddingService가 구현, 미설정이면 nil)
type IncidentIndexer interface {
	IndexIncidents(ctx context.Context, runID string, incidents []model.Incident)
}

// RunNotifier - 실행 요약 알림 (client.SlackClient가 구현)
type RunNotifier interface {
	IsConfigured() bool
	SendRunSummary(runID string, res model.IncidentAnalysisResponse, emailCount int) error
}

// AnalyzeService 구조체 정의
type AnalyzeService struct {
	alerts     alertsFetcher
	classifier alertClassifier
	enricher   incidentEnricher
	store      RunStore
	indexer    IncidentIndexer
	notifier   RunNotifier
}

// AnalyzeService 객체 생성
// store/indexer/notifier는 nil 허용 - 해당 부가 기능만 비활성화된다
func NewAnalyzeService(alerts alertsFetcher, classifier alertClassifier, enricher incidentEnricher, store RunStore, indexer IncidentIndexer, notifier RunNotifier) *AnalyzeService {
	return &AnalyzeService{
		alerts:     alerts,
		classifier: classifier,
		enricher:   enricher,
		store:      store,
		indexer:    indexer,
		notifier:   notifier,
	}
}

// Analyze - 분석 1회 실행
func (s *AnalyzeService) Analyze(ctx context.Context, params model.AnalyzeRequest) (*model.IncidentAnalysisResponse, error) {
	raw, err := s.alerts.FetchAlerts(ctx, params)
	if err != nil {
		return nil, err
	}

	emails, shape, err := NormalizeAlertsPayload(raw)
	if err != nil {
		return nil, err
	}
	if shape != ShapeBareArray {
		log.Printf("Alerts payload arrived wrapped (shape=%s)", shape)
	}
	if len(emails) == 0 {
		log.Printf("Alerts endpoint returned zero emails")
	}

	classified, err := s.classifier.Classify(ctx, emails)
	if err != nil {
		return nil, err
	}

	// incident별 보강은 상호 독립 - 앱이 겹쳐도 각각 조회한다
	incidents := make([]model.Incident, len(classified))
	var wg sync.WaitGroup
	for i, alert := range classified {
		wg.Add(1)
		go func(i int, alert model.ClassifiedAlert) {
			defer wg.Done()
			incidents[i] = s.buildIncident(ctx, alert, i, emails)
		}(i, alert)
	}
	wg.Wait()

	res := s.assemble(emails, classified, incidents)

	if len(res.Incidents) > 0 {
		s.recordRun(ctx, params, len(emails), res)
	}

	return res, nil
}

// buildIncident - 분류 결과 1건을 보강하고 원본 이메일과 병합
func (s *AnalyzeService) buildIncident(ctx context.Context, alert model.ClassifiedAlert, ordinal int, emails []model.RawAlertEmail) model.Incident {
	appName := alert.AppName
	if appName == "" {
		appName = "Unknown API"
	}

	enriched := s.enricher.Enrich(ctx, appName, alert.Title, alert.Summary)

	original, pairing := pairOriginalEmail(alert, emails)
	if pairing == "fallback" {
		log.Printf("Incident %q paired by subject fallback (no emailIndex)", alert.Title)
	}

	rawContent := alert.Summary
	source := alert.Sender
	timestamp := alert.Timestamp
	if original != nil {
		if original.Content != "" {
			rawContent = original.Content
		}
		if source == "" {
			source = original.Sender()
		}
		if timestamp == "" {
			timestamp = original.Timestamp()
		}
	}
	if source == "" {
		source = "MuleSoft System"
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	id := alert.ID
	if id == "" {
		id = fmt.Sprintf("ai-%d", ordinal)
	}

	importance := "normal"
	if alert.Severity == model.SeverityCritical || alert.Severity == model.SeverityHigh {
		importance = "high"
	}

	environment := alert.Environment
	if environment == "" {
		environment = "Unspecified"
	}
	object := alert.Object
	if object == "" {
		object = "Unspecified"
	}

	snapshot := enriched.Snapshot
	incident := model.Incident{
		ID:                id,
		Service:           alert.Title,
		Severity:          toPScale(alert.Severity),
		Summary:           alert.Summary,
		Timestamp:         timestamp,
		Source:            source,
		Status:            "Investigating",
		RawContent:        rawContent,
		AppName:           appName,
		Environment:       environment,
		Object:            object,
		Importance:        importance,
		ObservabilityData: &snapshot,
		AIHealthSummary:   enriched.Narrative,
	}
	incident.DisplaySeverity = MapSeverityToLabel(EffectiveSeverity(incident))
	return incident
}

// pairOriginalEmail - 분류 결과를 원본 이메일과 짝짓기
//
// emailIndex가 있으면 무조건 인덱스가 이긴다 - 제목이 유사한 알림이
// 여러 건일 때 부분일치는 엉뚱한 본문을 붙일 수 있다.
// 인덱스가 없는 응답만 제목 일치/부분일치 폴백을 사용한다.
func pairOriginalEmail(alert model.ClassifiedAlert, emails []model.RawAlertEmail) (*model.RawAlertEmail, string) {
	if alert.EmailIndex != nil {
		idx := *alert.EmailIndex
		if idx >= 0 && idx < len(emails) {
			return &emails[idx], "index"
		}
	}

	title := strings.ToLower(alert.Title)
	for i := range emails {
		subject := strings.ToLower(emails[i].Subject)
		if emails[i].Subject == alert.OriginalSubject ||
			(subject != "" && strings.Contains(subject, title)) ||
			(title != "" && strings.Contains(title, subject) && subject != "") {
			return &emails[i], "fallback"
		}
	}

	return nil, "none"
}

// assemble - incident 목록과 런북으로 최종 응답 조립
func (s *AnalyzeService) assemble(emails []model.RawAlertEmail, classified []model.ClassifiedAlert, incidents []model.Incident) *model.IncidentAnalysisResponse {
	if len(incidents) == 0 {
		return &model.IncidentAnalysisResponse{
			Incidents:          []model.Incident{},
			TopIncidentService: "None",
			Runbook: model.Runbook{
				IncidentSummary: "No critical alerts identified in the analyzed period.",
				Hypotheses:      []model.Hypothesis{},
				Steps:           []model.RunbookStep{},
			},
		}
	}

	// 최상위 incident는 재정렬 없이 항상 첫 번째 요소
	top := incidents[0]

	steps := make([]model.RunbookStep, 0, 3)
	for i, alert := range classified {
		if i >= 3 {
			break
		}
		description := alert.SuggestedAction
		if description == "" {
			description = "Review system logs for specific error details."
		}
		steps = append(steps, model.RunbookStep{
			ID:          fmt.Sprintf("step-%d", i),
			Description: description,
			ToolToCall:  "check_sf_connector",
		})
	}

	return &model.IncidentAnalysisResponse{
		RunID:              uuid.NewString(),
		Incidents:          incidents,
		TopIncidentService: top.Service,
		Runbook: model.Runbook{
			IncidentSummary: fmt.Sprintf("System analyzed %d emails and identified %d actionable incidents.", len(emails), len(incidents)),
			Hypotheses: []model.Hypothesis{
				{
					ID:          "h1",
					Title:       "AI Root Cause Analysis",
					Explanation: top.Summary,
					Confidence:  90,
				},
			},
			Steps: steps,
		},
	}
}

// recordRun - 이력 저장/임베딩 색인/Slack 알림 (전부 best-effort)
func (s *AnalyzeService) recordRun(ctx context.Context, params model.AnalyzeRequest, emailCount int, res *model.IncidentAnalysisResponse) {
	if s.store != nil {
		if err := s.store.SaveRun(ctx, model.RunRecord{
			RunID:      res.RunID,
			Params:     params,
			EmailCount: emailCount,
			Response:   *res,
		}); err != nil {
			log.Printf("Failed to save run %s: %v", res.RunID, err)
		}
	}

	if s.indexer != nil {
		s.indexer.IndexIncidents(ctx, res.RunID, res.Incidents)
	}

	if s.notifier != nil && s.notifier.IsConfigured() {
		// 알림 지연이 분석 응답을 붙잡지 않게 분리
		go func(runID string, snapshot model.IncidentAnalysisResponse, emailCount int) {
			if err := s.notifier.SendRunSummary(runID, snapshot, emailCount); err != nil {
				log.Printf("Failed to send Slack run summary: %v", err)
			}
		}(res.RunID, *res, emailCount)
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mule-triage/backend/internal/model"
)

type fakeFetcher struct {
	raw json.RawMessage
	err error
}

func (f *fakeFetcher) FetchAlerts(context.Context, model.AnalyzeRequest) (json.RawMessage, error) {
	return f.raw, f.err
}

type fakeClassifier struct {
	alerts []model.ClassifiedAlert
	err    error
}

func (f *fakeClassifier) Classify(context.Context, []model.RawAlertEmail) ([]model.ClassifiedAlert, error) {
	return f.alerts, f.err
}

type fakeEnricher struct {
	mu   sync.Mutex
	apps []string
	out  EnrichmentResult
}

func (f *fakeEnricher) Enrich(_ context.Context, appName, _, _ string) EnrichmentResult {
	f.mu.Lock()
	f.apps = append(f.apps, appName)
	f.mu.Unlock()
	return f.out
}

type fakeStore struct {
	mu   sync.Mutex
	recs []model.RunRecord
}

func (f *fakeStore) SaveRun(_ context.Context, rec model.RunRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

func idx(i int) *int { return &i }

func wrappedEmails(emails []model.RawAlertEmail) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{"data": emails})
	return raw
}

func TestAnalyzeEndToEnd(t *testing.T) {
	emails := []model.RawAlertEmail{
		{Subject: "order-api DB failure", Content: "<p>sql error detail</p>", DisplayName: "MuleSoft Alerts", LastUpdatedTime: "2026-08-29T08:00:00Z"},
		{Subject: "order-api latency", Content: "<p>latency detail</p>"},
		{Subject: "payment-api auth errors", Content: "<p>auth detail</p>"},
	}
	classified := []model.ClassifiedAlert{
		{EmailIndex: idx(0), ID: "a0", Title: "Order API DB Failure", Summary: "BAD_SQL_SYNTAX on order insert", Severity: "Critical", SuggestedAction: "Check DB schema migration", AppName: "order-api"},
		{EmailIndex: idx(1), ID: "a1", Title: "Order API Latency", Summary: "p99 latency spike", Severity: "Medium", AppName: "order-api"},
		{EmailIndex: idx(2), ID: "a2", Title: "Payment API Auth Errors", Summary: "401 from token endpoint", Severity: "High", SuggestedAction: "Rotate client credentials", AppName: "payment-api", Environment: "PROD", Object: "token-endpoint"},
	}

	enricher := &fakeEnricher{out: EnrichmentResult{
		Snapshot:  model.ObservabilitySnapshot{Status: "Healthy"},
		Narrative: &model.HealthNarrative{Conclusion: "ok"},
	}}
	store := &fakeStore{}
	svc := NewAnalyzeService(
		&fakeFetcher{raw: wrappedEmails(emails)},
		&fakeClassifier{alerts: classified},
		enricher,
		store,
		nil,
		nil,
	)

	res, err := svc.Analyze(context.Background(), model.AnalyzeRequest{Count: 3})
	require.NoError(t, err)

	require.Len(t, res.Incidents, 3)
	require.NotEmpty(t, res.RunID)

	// 앱이 겹쳐도 incident마다 보강 1회
	require.Len(t, enricher.apps, 3)

	// 최상위 incident는 재정렬 없이 첫 번째 분류 결과
	require.Equal(t, "Order API DB Failure", res.TopIncidentService)

	top := res.Incidents[0]
	require.Equal(t, "P1", top.Severity)
	require.Equal(t, "High", top.DisplaySeverity)
	require.Equal(t, "high", top.Importance)
	require.Equal(t, "<p>sql error detail</p>", top.RawContent)
	require.Equal(t, "MuleSoft Alerts", top.Source)
	require.Equal(t, "2026-08-29T08:00:00Z", top.Timestamp)
	require.NotNil(t, top.ObservabilityData)
	require.NotNil(t, top.AIHealthSummary)

	// 분류기가 비워둔 환경/대상은 기본값으로 채운다
	require.Equal(t, "Unspecified", top.Environment)
	require.Equal(t, "Unspecified", top.Object)
	require.Equal(t, "PROD", res.Incidents[2].Environment)
	require.Equal(t, "token-endpoint", res.Incidents[2].Object)

	require.Equal(t, "P3", res.Incidents[1].Severity)
	require.Equal(t, "Low", res.Incidents[1].DisplaySeverity)
	require.Equal(t, "P2", res.Incidents[2].Severity)

	// 런북: 가설 정확히 1개, 단계는 최대 3개
	require.Len(t, res.Runbook.Hypotheses, 1)
	h := res.Runbook.Hypotheses[0]
	require.Equal(t, "BAD_SQL_SYNTAX on order insert", h.Explanation)
	require.Equal(t, 90, h.Confidence)

	require.Len(t, res.Runbook.Steps, 3)
	require.Equal(t, "Check DB schema migration", res.Runbook.Steps[0].Description)
	require.Equal(t, "check_sf_connector", res.Runbook.Steps[0].ToolToCall)
	// suggestedAction이 빈 분류 결과는 기본 문구
	require.Equal(t, "Review system logs for specific error details.", res.Runbook.Steps[1].Description)

	require.Len(t, store.recs, 1)
	require.Equal(t, res.RunID, store.recs[0].RunID)
	require.Equal(t, 3, store.recs[0].EmailCount)
}

// 서술의 recommendedSeverity가 분류기 Critical을 하향 덮어쓰기
func TestAnalyzeNarrativeSeverityOverride(t *testing.T) {
	emails := []model.RawAlertEmail{{Subject: "s"}}
	classified := []model.ClassifiedAlert{
		{EmailIndex: idx(0), Title: "t", Summary: "s", Severity: "Critical", AppName: "order-api"},
	}
	enricher := &fakeEnricher{out: EnrichmentResult{
		Narrative: &model.HealthNarrative{RecommendedSeverity: "P3"},
	}}

	svc := NewAnalyzeService(
		&fakeFetcher{raw: wrappedEmails(emails)},
		&fakeClassifier{alerts: classified},
		enricher,
		nil, nil, nil,
	)

	res, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.NoError(t, err)
	require.Equal(t, "P1", res.Incidents[0].Severity)
	require.Equal(t, "Low", res.Incidents[0].DisplaySeverity)
}

func TestAnalyzeEmptyState(t *testing.T) {
	store := &fakeStore{}
	svc := NewAnalyzeService(
		&fakeFetcher{raw: json.RawMessage(`[]`)},
		&fakeClassifier{alerts: []model.ClassifiedAlert{}},
		&fakeEnricher{},
		store,
		nil,
		nil,
	)

	res, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.NoError(t, err)

	require.Empty(t, res.RunID)
	require.NotNil(t, res.Incidents)
	require.Empty(t, res.Incidents)
	require.Equal(t, "None", res.TopIncidentService)
	require.Equal(t, "No critical alerts identified in the analyzed period.", res.Runbook.IncidentSummary)
	require.NotNil(t, res.Runbook.Hypotheses)
	require.Empty(t, res.Runbook.Hypotheses)
	require.NotNil(t, res.Runbook.Steps)
	require.Empty(t, res.Runbook.Steps)

	// incident 없는 실행은 이력에 남기지 않는다
	require.Empty(t, store.recs)
}

func TestAnalyzePairingIndexWins(t *testing.T) {
	emails := []model.RawAlertEmail{
		{Subject: "order-api alert", Content: "body A"},
		{Subject: "order-api alert (repeat)", Content: "body B"},
	}
	// 제목은 0번 이메일과 더 비슷하지만 인덱스는 1번을 가리킨다
	classified := []model.ClassifiedAlert{
		{EmailIndex: idx(1), Title: "order-api alert", Summary: "s1", Severity: "High", AppName: "order-api"},
		{EmailIndex: idx(0), Title: "order-api alert", Summary: "s2", Severity: "High", AppName: "order-api"},
	}

	svc := NewAnalyzeService(
		&fakeFetcher{raw: wrappedEmails(emails)},
		&fakeClassifier{alerts: classified},
		&fakeEnricher{},
		nil, nil, nil,
	)

	res, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.NoError(t, err)
	require.Equal(t, "body B", res.Incidents[0].RawContent)
	require.Equal(t, "body A", res.Incidents[1].RawContent)
}

func TestAnalyzePairingFallback(t *testing.T) {
	emails := []model.RawAlertEmail{
		{Subject: "Unrelated digest"},
		{Subject: "[PROD] payment-api auth errors", Content: "fallback body"},
	}
	classified := []model.ClassifiedAlert{
		// 레거시 응답 - emailIndex 없음, 제목이 부제목의 부분 문자열
		{Title: "payment-api auth errors", Summary: "s", Severity: "High", AppName: "payment-api"},
		{Title: "no match anywhere", Summary: "s2", Severity: "Low", AppName: "other-api"},
	}

	svc := NewAnalyzeService(
		&fakeFetcher{raw: wrappedEmails(emails)},
		&fakeClassifier{alerts: classified},
		&fakeEnricher{},
		nil, nil, nil,
	)

	res, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.NoError(t, err)
	require.Equal(t, "fallback body", res.Incidents[0].RawContent)
	// 짝을 못 찾으면 분류 요약으로 폴백
	require.Equal(t, "s2", res.Incidents[1].RawContent)
}

func TestAnalyzeFailurePassthrough(t *testing.T) {
	fetchErr := errors.New("upstream down")
	svc := NewAnalyzeService(&fakeFetcher{err: fetchErr}, &fakeClassifier{}, &fakeEnricher{}, nil, nil, nil)
	_, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.ErrorIs(t, err, fetchErr)

	svc = NewAnalyzeService(
		&fakeFetcher{raw: json.RawMessage(`{"nope":1}`)},
		&fakeClassifier{}, &fakeEnricher{}, nil, nil, nil,
	)
	_, err = svc.Analyze(context.Background(), model.AnalyzeRequest{})
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)

	svc = NewAnalyzeService(
		&fakeFetcher{raw: json.RawMessage(`[]`)},
		&fakeClassifier{err: ErrClassificationUnavailable},
		&fakeEnricher{}, nil, nil, nil,
	)
	_, err = svc.Analyze(context.Background(), model.AnalyzeRequest{})
	require.ErrorIs(t, err, ErrClassificationUnavailable)
}

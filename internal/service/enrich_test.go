package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/mule-triage/backend/internal/client"
	"github.com/mule-triage/backend/internal/config"
	"github.com/mule-triage/backend/internal/model"
)

type fakeLookup struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (f *fakeLookup) Lookup(_ context.Context, action, _ string) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, action)
	f.mu.Unlock()

	if err, ok := f.errs[action]; ok {
		return nil, err
	}
	return json.RawMessage(f.responses[action]), nil
}

type fakeNarrator struct {
	mu           sync.Mutex
	calls        int
	lastSnapshot model.ObservabilitySnapshot
	out          *model.HealthNarrative
}

func (f *fakeNarrator) Summarize(_ context.Context, snapshot model.ObservabilitySnapshot, _, _ string) *model.HealthNarrative {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastSnapshot = snapshot
	return f.out
}

func enabledPipeline() config.Pipeline {
	return config.Pipeline{
		ObservabilityEnabled: true,
		LookupTimeout:        time.Second,
	}
}

func TestEnrichAllLookupsFailTransport(t *testing.T) {
	transportErr := &url.Error{Op: "Get", URL: "http://obs.local", Err: errors.New("connection refused")}
	lookup := &fakeLookup{errs: map[string]error{
		client.ActionStatus:     transportErr,
		client.ActionDeployment: transportErr,
		client.ActionSmoke:      transportErr,
	}}
	narrator := &fakeNarrator{out: &model.HealthNarrative{Conclusion: "ok"}}
	svc := NewEnrichmentService(lookup, narrator, enabledPipeline())

	res := svc.Enrich(context.Background(), "order-api", "Order API failing", "HTTP 500")

	if res.Snapshot.Status != model.StatusCORSBlocked {
		t.Fatalf("status = %q, want %q", res.Snapshot.Status, model.StatusCORSBlocked)
	}
	if res.Narrative != nil {
		t.Fatal("narrative must be nil when every lookup failed")
	}
	if narrator.calls != 0 {
		t.Fatalf("narrator should not be called, got %d calls", narrator.calls)
	}
	if res.Snapshot.Version != model.SnapshotUnknown || res.Snapshot.Smoke != model.SnapshotNA {
		t.Fatal("snapshot fields must be filled with sentinels")
	}
}

func TestEnrichAllLookupsFailUpstream(t *testing.T) {
	upstreamErr := &client.HTTPStatusError{StatusCode: 503, URL: "http://obs.local"}
	lookup := &fakeLookup{errs: map[string]error{
		client.ActionStatus:     upstreamErr,
		client.ActionDeployment: upstreamErr,
		client.ActionSmoke:      upstreamErr,
	}}
	svc := NewEnrichmentService(lookup, &fakeNarrator{}, enabledPipeline())

	res := svc.Enrich(context.Background(), "order-api", "Order API failing", "HTTP 500")

	if res.Snapshot.Status != model.StatusUnavailable {
		t.Fatalf("status = %q, want %q", res.Snapshot.Status, model.StatusUnavailable)
	}
	if res.Narrative != nil {
		t.Fatal("narrative must be nil when every lookup failed")
	}
}

func TestEnrichDisabled(t *testing.T) {
	lookup := &fakeLookup{}
	narrator := &fakeNarrator{out: &model.HealthNarrative{Conclusion: "inferred from alert"}}
	svc := NewEnrichmentService(lookup, narrator, config.Pipeline{ObservabilityEnabled: false})

	res := svc.Enrich(context.Background(), "order-api", "Order API failing", "HTTP 500")

	if res.Snapshot.Status != model.StatusDisabled {
		t.Fatalf("status = %q, want %q", res.Snapshot.Status, model.StatusDisabled)
	}
	if len(lookup.calls) != 0 {
		t.Fatal("no lookups should fire when observability is disabled")
	}
	// 비활성화 상태에서도 서술은 시도한다 (알림 맥락만으로 추론)
	if narrator.calls != 1 || res.Narrative == nil {
		t.Fatal("narrative should still be attempted when disabled")
	}
}

func TestEnrichPartialFailure(t *testing.T) {
	lookup := &fakeLookup{
		responses: map[string]string{
			client.ActionStatus: `{"status":"Degraded","lastCheckTime":"2026-08-29T10:00:00Z"}`,
			client.ActionSmoke:  `{"success":false,"error":"timeout"}`,
		},
		errs: map[string]error{
			client.ActionDeployment: &client.HTTPStatusError{StatusCode: 500, URL: "http://obs.local"},
		},
	}
	narrator := &fakeNarrator{out: &model.HealthNarrative{Conclusion: "degraded"}}
	svc := NewEnrichmentService(lookup, narrator, enabledPipeline())

	res := svc.Enrich(context.Background(), "order-api", "Order API failing", "HTTP 500")

	if res.Snapshot.Status != "Degraded" {
		t.Fatalf("status = %q, want Degraded", res.Snapshot.Status)
	}
	if res.Snapshot.Version != model.SnapshotUnknown {
		t.Fatalf("version = %q, want sentinel", res.Snapshot.Version)
	}
	if res.Snapshot.Smoke != "Failed" {
		t.Fatalf("smoke = %q, want Failed", res.Snapshot.Smoke)
	}
	if res.Narrative == nil || narrator.calls != 1 {
		t.Fatal("narrative should be generated on partial data")
	}
	if len(lookup.calls) != 3 {
		t.Fatalf("expected 3 lookups, got %d", len(lookup.calls))
	}
}

func TestEnrichFullSuccess(t *testing.T) {
	lookup := &fakeLookup{
		responses: map[string]string{
			client.ActionStatus:     `{"status":"Healthy","lastCheckTime":"2026-08-29T10:00:00Z"}`,
			client.ActionDeployment: `{"version":"1.4.2","deployedAt":"2026-08-28","deployedBy":"jenkins","changeSummary":"hotfix"}`,
			client.ActionSmoke:      `{"success":true}`,
		},
	}
	narrator := &fakeNarrator{out: &model.HealthNarrative{Conclusion: "healthy"}}
	svc := NewEnrichmentService(lookup, narrator, enabledPipeline())

	res := svc.Enrich(context.Background(), "order-api", "Order API failing", "HTTP 500")

	want := model.ObservabilitySnapshot{
		Status:        "Healthy",
		LastCheckTime: "2026-08-29T10:00:00Z",
		Version:       "1.4.2",
		DeployedAt:    "2026-08-28",
		DeployedBy:    "jenkins",
		ChangeSummary: "hotfix",
		Smoke:         "Passed",
	}
	if res.Snapshot != want {
		t.Fatalf("snapshot = %+v, want %+v", res.Snapshot, want)
	}
	if narrator.lastSnapshot != want {
		t.Fatal("narrator should receive the assembled snapshot")
	}
}

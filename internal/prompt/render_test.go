package prompt

import (
	"strings"
	"testing"
)

func TestRenderClassify(t *testing.T) {
	got := RenderClassify(`[{"emailIndex":0}]`)

	if !strings.Contains(got, `[{"emailIndex":0}]`) {
		t.Fatal("input JSON should be substituted")
	}
	if strings.Contains(got, "{{input.json}}") {
		t.Fatal("placeholder left unrendered")
	}
}

func TestRenderNarrative(t *testing.T) {
	data := NarrativeData{
		AlertTitle:       "Order API failing",
		AlertSummary:     "HTTP 500 spike",
		StatusJSON:       `{"status":"Degraded"}`,
		DeployJSON:       `{"version":"1.4.2"}`,
		SmokeJSON:        `{"smoke":"Failed"}`,
		HasObservability: true,
	}

	got := RenderNarrative(data)
	for _, want := range []string{
		`"Order API failing"`,
		"Alert Summary: HTTP 500 spike",
		`{"status":"Degraded"}`,
		`{"version":"1.4.2"}`,
		`{"smoke":"Failed"}`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("rendered prompt missing %q", want)
		}
	}
	if strings.Contains(got, "{{") {
		t.Fatal("placeholder left unrendered")
	}
	if strings.Contains(got, "observability data is unavailable") {
		t.Fatal("available snapshot should use the standard guidance")
	}

	// 요약이 없으면 요약 줄 자체를 비운다
	data.AlertSummary = ""
	if got := RenderNarrative(data); strings.Contains(got, "Alert Summary:") {
		t.Fatal("summary line should be omitted when empty")
	}
}

func TestRenderNarrativeUnavailableGuidance(t *testing.T) {
	got := RenderNarrative(NarrativeData{
		AlertTitle:       "Order API failing",
		StatusJSON:       `{"status":"Unknown"}`,
		DeployJSON:       `{}`,
		SmokeJSON:        `{}`,
		HasObservability: false,
	})

	if !strings.Contains(got, "observability data is unavailable") {
		t.Fatal("sentinel snapshot should switch to the inference guidance")
	}
}

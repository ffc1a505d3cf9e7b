package service

import (
	"testing"

	"github.com/mule-triage/backend/internal/model"
)

func TestToPScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Critical", "P1"},
		{"High", "P2"},
		{"Medium", "P3"},
		{"Low", "P3"},
		{"Bogus", "P3"},
		{"", "P3"},
	}

	for _, tt := range tests {
		if got := toPScale(tt.in); got != tt.want {
			t.Errorf("toPScale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapSeverityToLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"P1", "High"},
		{"CRITICAL", "High"},
		{"P2", "Medium"},
		{"HIGH", "Medium"},
		{"P3", "Low"},
		{"P4", "Low"},
		{"MEDIUM", "Low"},
		{"LOW", "Low"},
		// LLM 응답은 대소문자가 제각각이다
		{"p1", "High"},
		{"Critical", "High"},
		{"p3", "Low"},
		{"low", "Low"},
		{"Sev0", "Sev0"}, // 매핑에 없는 값은 통과
	}

	for _, tt := range tests {
		if got := MapSeverityToLabel(tt.in); got != tt.want {
			t.Errorf("MapSeverityToLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEffectiveSeverity(t *testing.T) {
	base := model.Incident{Severity: "P1"}

	if got := EffectiveSeverity(base); got != "P1" {
		t.Fatalf("without narrative: got %q, want P1", got)
	}

	base.AIHealthSummary = &model.HealthNarrative{}
	if got := EffectiveSeverity(base); got != "P1" {
		t.Fatalf("empty recommendation: got %q, want P1", got)
	}

	// 서술 권고는 분류기 심각도를 하향도 가능
	base.AIHealthSummary.RecommendedSeverity = "P3"
	if got := EffectiveSeverity(base); got != "P3" {
		t.Fatalf("with recommendation: got %q, want P3", got)
	}
	if got := MapSeverityToLabel(EffectiveSeverity(base)); got != "Low" {
		t.Fatalf("label = %q, want Low", got)
	}

	// 소문자 권고도 라벨로 변환되어야 한다
	base.AIHealthSummary.RecommendedSeverity = "p3"
	if got := MapSeverityToLabel(EffectiveSeverity(base)); got != "Low" {
		t.Fatalf("lowercase recommendation label = %q, want Low", got)
	}
}

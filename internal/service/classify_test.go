package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mule-triage/backend/internal/model"
)

type fakeGenerator struct {
	out        string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.out, f.err
}

func testEmails(n int) []model.RawAlertEmail {
	emails := make([]model.RawAlertEmail, n)
	for i := range emails {
		emails[i] = model.RawAlertEmail{
			Subject:     fmt.Sprintf("Alert %d", i),
			APIName:     "order-api",
			BodyPreview: fmt.Sprintf("HTTP 500 on request %d", i),
			Content:     "<html><body>full html body</body></html>",
		}
	}
	return emails
}

func classifiedJSON(n int) string {
	var parts []string
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf(
			`{"emailIndex":%d,"id":"a%d","title":"Alert %d","summary":"HTTP 500","severity":"High","appName":"order-api"}`, i, i, i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"bare-array", classifiedJSON(2)},
		{"alerts-wrapped", `{"alerts":` + classifiedJSON(2) + `}`},
		{"other-key-wrapped", `{"results":` + classifiedJSON(2) + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{out: tt.out}
			svc := NewClassifierService(gen)

			alerts, err := svc.Classify(context.Background(), testEmails(2))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(alerts) != 2 {
				t.Fatalf("len = %d, want 2", len(alerts))
			}
			if alerts[0].EmailIndex == nil || *alerts[0].EmailIndex != 0 {
				t.Fatal("emailIndex should round-trip")
			}
		})
	}
}

func TestClassifyExcludesHTMLContent(t *testing.T) {
	gen := &fakeGenerator{out: classifiedJSON(1)}
	svc := NewClassifierService(gen)

	if _, err := svc.Classify(context.Background(), testEmails(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(gen.lastPrompt, "full html body") {
		t.Fatal("HTML content must not be sent to the classifier")
	}
	if !strings.Contains(gen.lastPrompt, "HTTP 500 on request 0") {
		t.Fatal("bodyPreview should be sent to the classifier")
	}
}

func TestClassifyCardinalityMismatch(t *testing.T) {
	gen := &fakeGenerator{out: classifiedJSON(1)}
	svc := NewClassifierService(gen)

	_, err := svc.Classify(context.Background(), testEmails(3))
	if !errors.Is(err, ErrClassificationUnavailable) {
		t.Fatalf("expected ErrClassificationUnavailable, got %v", err)
	}
}

func TestClassifyFailures(t *testing.T) {
	tests := []struct {
		name string
		svc  *ClassifierService
	}{
		{"nil-generator", NewClassifierService(nil)},
		{"generation-error", NewClassifierService(&fakeGenerator{err: errors.New("quota exceeded")})},
		{"non-json-output", NewClassifierService(&fakeGenerator{out: "I could not classify these alerts."})},
		{"no-array-in-object", NewClassifierService(&fakeGenerator{out: `{"message":"done"}`})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Classify(context.Background(), testEmails(1))
			if !errors.Is(err, ErrClassificationUnavailable) {
				t.Fatalf("expected ErrClassificationUnavailable, got %v", err)
			}
		})
	}
}

// 알림 분류 서비스
//
// 이메일 배치를 LLM에 1회 요청으로 보내고, 입력 N건 ⇒ 출력 N건 계약을
// 강제한다. 길이가 다르면 어떤 incident가 어떤 이메일에서 왔는지 보장할
// 수 없으므로 부분 결과 없이 실행 전체를 실패 처리한다.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mule-triage/backend/internal/model"
	"github.com/mule-triage/backend/internal/prompt"
)

// ErrClassificationUnavailable - 분류를 수행할 수 없는 상태
// (자격증명 미설정, 생성 실패, 출력 계약 위반)
var ErrClassificationUnavailable = errors.New("classification unavailable")

// jsonGenerator - JSON 모드 생성 클라이언트 (client.GenAIClient가 구현)
type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ClassifierService 구조체 정의
type ClassifierService struct {
	generator jsonGenerator
}

// ClassifierService 객체 생성
// generator가 nil이면 (API 키 미설정) 분류 요청 시점에 에러를 반환한다
func NewClassifierService(generator jsonGenerator) *ClassifierService {
	return &ClassifierService{generator: generator}
}

// Classify - 이메일 배치를 분류해 ClassifiedAlert 목록 반환
//
// HTML 본문(content)은 보내지 않고 경량 필드만 전송한다.
// emailIndex를 입력에 실어 보내 응답의 역참조로 쓴다.
func (s *ClassifierService) Classify(ctx context.Context, emails []model.RawAlertEmail) ([]model.ClassifiedAlert, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("%w: AI credentials not configured", ErrClassificationUnavailable)
	}

	stripped := make([]model.StrippedAlert, len(emails))
	for i, e := range emails {
		stripped[i] = model.StrippedAlert{
			EmailIndex:  i,
			Subject:     e.Subject,
			Sender:      e.Sender(),
			Timestamp:   e.Timestamp(),
			APIName:     e.APIName,
			Environment: e.Environment,
			Object:      e.Object,
			Priority:    e.Priority,
			Importance:  e.Importance,
			BodyPreview: e.BodyPreview,
		}
	}

	inputJSON, err := json.Marshal(stripped)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classification input: %w", err)
	}

	raw, err := s.generator.GenerateJSON(ctx, prompt.RenderClassify(string(inputJSON)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassificationUnavailable, err)
	}

	alerts, err := parseClassification(raw)
	if err != nil {
		log.Printf("Classification output rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrClassificationUnavailable, err)
	}

	if len(alerts) != len(emails) {
		return nil, fmt.Errorf("%w: expected %d results, got %d", ErrClassificationUnavailable, len(emails), len(alerts))
	}

	return alerts, nil
}

// parseClassification - 생성 결과 파싱
// 모델이 배열을 객체로 감싸는 경우가 있어 alerts 키, 그다음 배열 값을 가진
// 첫 키까지 탐침한다
func parseClassification(raw string) ([]model.ClassifiedAlert, error) {
	var alerts []model.ClassifiedAlert
	if err := json.Unmarshal([]byte(raw), &alerts); err == nil {
		return alerts, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, fmt.Errorf("result is neither array nor object")
	}

	if inner, ok := wrapper["alerts"]; ok {
		if err := json.Unmarshal(inner, &alerts); err == nil {
			return alerts, nil
		}
	}

	for _, inner := range wrapper {
		if err := json.Unmarshal(inner, &alerts); err == nil {
			return alerts, nil
		}
	}

	return nil, fmt.Errorf("no alert array found in result object")
}

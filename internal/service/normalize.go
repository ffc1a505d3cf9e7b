// 알림 메일 API 응답 정규화
//
// 업스트림은 배포 시점에 따라 서로 다른 래퍼로 이메일 배열을 감싼다.
// 래퍼 후보를 고정된 우선순위로 탐침하고, 어떤 형태였는지 태그로 남겨서
// 업스트림 형태 변화를 로그로 추적할 수 있게 한다.

package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mule-triage/backend/internal/model"
)

// PayloadShape - 정규화 시 식별된 응답 형태 태그
type PayloadShape string

const (
	ShapeBareArray     PayloadShape = "array"
	ShapeDataWrapper   PayloadShape = "data"
	ShapeAlertsWrapper PayloadShape = "alerts"
	ShapeEmailsWrapper PayloadShape = "emails"
	ShapeItemsWrapper  PayloadShape = "items"
	ShapeUnrecognized  PayloadShape = "unrecognized"
)

// 래퍼 키 탐침 순서 (먼저 매칭되는 키가 승리)
var wrapperKeys = []struct {
	key   string
	shape PayloadShape
}{
	{"data", ShapeDataWrapper},
	{"alerts", ShapeAlertsWrapper},
	{"emails", ShapeEmailsWrapper},
	{"items", ShapeItemsWrapper},
}

// MalformedResponseError - 알려진 어떤 형태와도 일치하지 않는 응답
// Shape에 관측된 최상위 구조 설명을 담아 진단에 사용한다
type MalformedResponseError struct {
	Shape string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unrecognized alerts payload shape: %s", e.Shape)
}

// NormalizeAlertsPayload - 원시 응답을 이메일 배열로 정규화
//
// 인식 순서: 최상위 배열 → data → alerts → emails → items.
// 래퍼 키가 있어도 값이 배열이 아니면 다음 후보로 넘어간다.
// 빈 배열은 정상 입력이다 (알림 없음).
func NormalizeAlertsPayload(raw json.RawMessage) ([]model.RawAlertEmail, PayloadShape, error) {
	// null도 배열 타입으로 언마샬되므로 선행 토큰으로 형태를 판별한다
	if isJSONArray(raw) {
		var bare []model.RawAlertEmail
		if err := json.Unmarshal(raw, &bare); err != nil {
			return nil, ShapeUnrecognized, &MalformedResponseError{Shape: describeShape(raw)}
		}
		return bare, ShapeBareArray, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, ShapeUnrecognized, &MalformedResponseError{Shape: describeShape(raw)}
	}

	for _, candidate := range wrapperKeys {
		inner, ok := wrapper[candidate.key]
		if !ok || !isJSONArray(inner) {
			continue
		}
		var emails []model.RawAlertEmail
		if err := json.Unmarshal(inner, &emails); err != nil {
			// 키는 있지만 이메일 배열이 아님 - 다음 후보 탐침
			continue
		}
		return emails, candidate.shape, nil
	}

	return nil, ShapeUnrecognized, &MalformedResponseError{Shape: describeShape(raw)}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

// describeShape - 진단 로그용 최상위 구조 설명
func describeShape(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "empty body"
	}

	switch trimmed[0] {
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return "invalid JSON"
		}
		keys := make([]string, 0, len(wrapper))
		for k := range wrapper {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("object with keys [%s]", strings.Join(keys, ", "))
	case '[':
		return "array with non-object elements"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

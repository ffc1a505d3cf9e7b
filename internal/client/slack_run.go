// Slack 실행 요약 메시지 관련 메서드 정의

package client

import (
	"fmt"
	"time"

	"github.com/mule-triage/backend/internal/model"
)

// 분석 실행 요약을 Slack으로 전송
//
// 실행당 메시지 1건:
//   - 색상은 최상위 incident의 P-심각도 기준
//   - 런북 가설 설명을 본문으로 사용 (mrkdwn 변환)
func (c *SlackClient) SendRunSummary(runID string, res model.IncidentAnalysisResponse, emailCount int) error {
	if !c.IsConfigured() {
		return fmt.Errorf("slack bot token or channel ID not configured")
	}

	topSeverity := ""
	if len(res.Incidents) > 0 {
		topSeverity = res.Incidents[0].Severity
	}

	title := fmt.Sprintf("🚨 [%s] %s", topSeverity, res.TopIncidentService)
	if len(res.Incidents) == 0 {
		title = "✅ No actionable incidents"
	}

	text := res.Runbook.IncidentSummary
	for _, h := range res.Runbook.Hypotheses {
		text += "\n" + toSlackMarkdown(h.Explanation)
	}

	fields := []SlackField{
		{Title: "Emails analyzed", Value: fmt.Sprintf("%d", emailCount), Short: true},
		{Title: "Incidents", Value: fmt.Sprintf("%d", len(res.Incidents)), Short: true},
	}
	if p1 := countBySeverity(res.Incidents, model.SeverityP1); p1 > 0 {
		fields = append(fields, SlackField{Title: "P1", Value: fmt.Sprintf("%d", p1), Short: true})
	}

	// 실행 상세 페이지 링크 추가
	if runID != "" && c.frontendURL != "" {
		runLink := fmt.Sprintf("<%s/runs/%s|🔍 분석 결과 보러가기>", c.frontendURL, runID)
		fields = append(fields, SlackField{Title: "Run", Value: runLink, Short: false})
	}

	msg := SlackMessage{
		Channel: c.channelID,
		Attachments: []SlackAttachment{
			{
				Color:  colorBySeverity(topSeverity),
				Title:  title,
				Text:   text,
				Fields: fields,
				Footer: "mule-triage",
				Ts:     time.Now().Unix(),
			},
		},
	}

	_, err := c.send(msg)
	return err
}

// P-심각도에 따른 적절한 메시지 색상 반환
func colorBySeverity(severity string) string {
	switch severity {
	case model.SeverityP1:
		return "#dc3545" // red
	case model.SeverityP2:
		return "#ffc107" // yellow
	default:
		return "#36a64f" // green
	}
}

func countBySeverity(incidents []model.Incident, severity string) int {
	n := 0
	for _, inc := range incidents {
		if inc.Severity == severity {
			n++
		}
	}
	return n
}

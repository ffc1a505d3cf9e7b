// Package prompt provides LLM prompt template rendering.
//
// 지원하는 변수 형식:
//
//	{{input.json}}
//
//	{{alert.title}}, {{alert.summary_line}},
//	{{obs.status_json}}, {{obs.deploy_json}}, {{obs.smoke_json}},
//	{{guidance.*}} (스냅샷 가용 여부에 따라 본문이 달라지는 섹션)
package prompt

import "strings"

const classifyTemplate = `You are an expert security and system administrator.
Analyze the following JSON data which contains email alert metadata.
Each email has a unique emailIndex - you MUST return exactly ONE alert for EACH input email, preserving the emailIndex.

CRITICAL INSTRUCTIONS:
1. Process EVERY email: Return exactly ONE alert object for EACH email in the input array. If input has 7 emails, output MUST have 7 alerts.
2. Preserve emailIndex: Each output alert MUST include the "emailIndex" field from its corresponding input email.
3. Extract Unique Details: Carefully read the "bodyPreview" field to extract the SPECIFIC error for EACH alert:
   - Error types (e.g., INTERNAL_SERVER_ERROR, FORBIDDEN, UNAUTHORIZED, TOO_MANY_REQUESTS, BAD_SQL_SYNTAX)
   - HTTP status codes (e.g., 500, 403, 401, 429)
   - Specific error messages
   - Correlation IDs
4. Date Formatting: Return "timestamp" in ISO 8601 format (YYYY-MM-DDTHH:mm:ssZ).
5. Severity Mapping:
   - If "CRITICAL" in subject or HTTP 5xx errors: "Critical"
   - If 4xx errors or "High": "High"
   - If "Medium" or minor issues: "Medium"
   - Otherwise: "Low"

Each output object must have:
- emailIndex: The exact emailIndex from the input (REQUIRED for matching).
- id: A unique string identifier (e.g., "alert-{emailIndex}").
- title: A concise, SPECIFIC title reflecting the UNIQUE error (e.g., "Order API Internal Server Error (500)").
- summary: A detailed technical summary extracted from bodyPreview, including the SPECIFIC error type and message for THIS alert.
- originalSubject: The exact "subject" field from input.
- severity: "Low", "Medium", "High", or "Critical".
- suggestedAction: Root cause fix specific to THIS error type.
- sender: The "sender" field from input.
- timestamp: The "timestamp" field from input in ISO 8601 format.
- appName: The "apiName" field (e.g., "order-api", "payment-api").
- environment: Extract from bodyPreview or use "prod" as default.
- object: Extract from bodyPreview (e.g., "order", "payment", "invoice").

VALIDATION:
- Output array length MUST equal input array length.
- Each alert MUST have unique, specific details from its bodyPreview.
- DO NOT merge or deduplicate alerts with similar errors - treat each as separate.

Return ONLY valid JSON.

Input JSON:
{{input.json}}`

const narrativeTemplate = `You are an expert site reliability engineer analyzing: "{{alert.title}}"

{{alert.summary_line}}

Observability Data:
- Status: {{obs.status_json}}
- Deployment: {{obs.deploy_json}}
- Smoke Tests: {{obs.smoke_json}}

IMPORTANT INSTRUCTIONS:
{{guidance.preamble}}

Provide a professional analysis with SHORT KEY POINTS (max 15 words each):

1. statusSection:
{{guidance.status}}

2. deploymentSection:
{{guidance.deployment}}

3. smokeSection:
{{guidance.smoke}}

4. conclusion:
   - Brief summary of situation and urgency
   - Example: "Payment API experiencing database errors - immediate investigation required"
   - Example: "Service health unknown - monitoring gaps detected"

5. recommendedSeverity:
   - "P1" if service completely down or critical errors
   - "P2" if significant errors but service partially working
   - "P3" if minor issues or monitoring unavailable
   - "P4" if informational only

CRITICAL RULES:
- NEVER output just "N/A" or "Unknown" - always provide context
- Extract specific error details from alert title/summary
- Be actionable - what should engineers investigate?
- If monitoring data unavailable, acknowledge it professionally

Return as valid JSON with these 5 keys (strings except recommendedSeverity).
Return ONLY the JSON, no other text.`

// NarrativeData - 서술 프롬프트 렌더링에 사용할 데이터
type NarrativeData struct {
	AlertTitle   string
	AlertSummary string
	StatusJSON   string
	DeployJSON   string
	SmokeJSON    string

	// HasObservability: 스냅샷 status가 센티널(Unknown/N/A)이 아니면 true
	// false면 알림 제목/요약만으로 추론하도록 가이드가 바뀐다
	HasObservability bool
}

// RenderClassify - 분류 프롬프트의 변수를 실제 값으로 치환
func RenderClassify(inputJSON string) string {
	return strings.NewReplacer("{{input.json}}", inputJSON).Replace(classifyTemplate)
}

// RenderNarrative - 건강 상태 서술 프롬프트 렌더링
//
// 스냅샷이 대부분 불가용이면 관측 데이터를 지어내지 않고
// 알림 맥락에서 추론하도록 섹션별 가이드를 교체한다.
func RenderNarrative(data NarrativeData) string {
	summaryLine := ""
	if data.AlertSummary != "" {
		summaryLine = "Alert Summary: " + data.AlertSummary
	}

	var preamble, statusGuide, deployGuide, smokeGuide string
	if data.HasObservability {
		preamble = ""
		statusGuide = `   - 2-3 bullet points on current health status
   - Start with API name (e.g., "Payment API: Experiencing errors")
   - If 'Unknown', infer connection/availability issue`
		deployGuide = `   - Latest deployment info or "- No recent deployments detected"
   - Include version, time, deployer if available`
		smokeGuide = `   - Smoke test results
   - If failed, extract ERROR message
   - If N/A, say "- Automated validation not configured"`
	} else {
		preamble = `The observability data is unavailable (N/A/Unknown). You MUST analyze based on the alert title and summary instead.
Extract insights from the error message, API name, and alert severity.`
		statusGuide = `   - Analyze the alert title/summary to infer service health
   - Mention specific error types (e.g., "SQL syntax error", "HTTP 500", "Authentication failed")
   - State impact (e.g., "- Payment processing unavailable", "- Database query failures")`
		deployGuide = `   - Say "- Deployment history unavailable - monitoring infrastructure may be down"
   - Or "- Recent code changes may have introduced errors"`
		smokeGuide = `   - Infer from alert: "- Based on alert - service failing basic operations"
   - Mention specific failure type (DB error, API error, etc.)`
	}

	pairs := []string{
		"{{alert.title}}", data.AlertTitle,
		"{{alert.summary_line}}", summaryLine,
		"{{obs.status_json}}", data.StatusJSON,
		"{{obs.deploy_json}}", data.DeployJSON,
		"{{obs.smoke_json}}", data.SmokeJSON,
		"{{guidance.preamble}}", preamble,
		"{{guidance.status}}", statusGuide,
		"{{guidance.deployment}}", deployGuide,
		"{{guidance.smoke}}", smokeGuide,
	}

	return strings.NewReplacer(pairs...).Replace(narrativeTemplate)
}

package model

// SimilarIncidentRequest - 요약 텍스트로 과거 유사 Incident 검색 요청
type SimilarIncidentRequest struct {
	Summary string `json:"summary"`
	Limit   int    `json:"limit,omitempty"`
}

// SimilarIncident - 검색 결과 1건 (distance가 작을수록 유사)
type SimilarIncident struct {
	IncidentID string  `json:"incident_id"`
	Summary    string  `json:"summary"`
	Distance   float64 `json:"distance"`
}

// SimilarIncidentResponse - 유사 Incident 검색 응답
type SimilarIncidentResponse struct {
	Status string            `json:"status"`
	Model  string            `json:"model"`
	Data   []SimilarIncident `json:"data"`
}

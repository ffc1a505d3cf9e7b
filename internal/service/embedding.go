// Incident 요약 임베딩 서비스
//
// 실행 이력에 쌓인 incident 요약을 벡터로 색인하고, 새 요약과 가까운
// 과거 incident를 검색한다. 색인 실패는 실행 결과에 영향을 주지 않는다.

package service

import (
	"context"
	"fmt"
	"log"

	"github.com/mule-triage/backend/internal/model"
)

type EmbeddingRepo interface {
	InsertEmbedding(ctx context.Context, incidentID, summary, model string, vector []float32) (int64, error)
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]model.SimilarIncident, error)
}

type EmbeddingClient interface {
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
}

type EmbeddingService struct {
	repo   EmbeddingRepo
	client EmbeddingClient
}

func NewEmbeddingService(repo EmbeddingRepo, client EmbeddingClient) *EmbeddingService {
	return &EmbeddingService{repo: repo, client: client}
}

// CreateEmbedding - incident 요약 1건 색인
func (s *EmbeddingService) CreateEmbedding(ctx context.Context, incidentID, summary string) (int64, string, error) {
	if incidentID == "" || summary == "" {
		return 0, "", fmt.Errorf("incident_id and incident_summary are required")
	}
	vector, embModel, err := s.client.EmbedText(ctx, summary)
	if err != nil {
		return 0, embModel, err
	}
	id, err := s.repo.InsertEmbedding(ctx, incidentID, summary, embModel, vector)
	return id, embModel, err
}

// IndexIncidents - 실행 1회의 incident 전체를 best-effort로 색인
func (s *EmbeddingService) IndexIncidents(ctx context.Context, runID string, incidents []model.Incident) {
	for _, inc := range incidents {
		if inc.Summary == "" {
			continue
		}
		incidentID := fmt.Sprintf("%s/%s", runID, inc.ID)
		if _, _, err := s.CreateEmbedding(ctx, incidentID, inc.Summary); err != nil {
			log.Printf("Failed to index incident %s: %v", incidentID, err)
		}
	}
}

// SearchSimilar - 요약 텍스트와 가까운 과거 incident 검색
func (s *EmbeddingService) SearchSimilar(ctx context.Context, summary string, limit int) ([]model.SimilarIncident, string, error) {
	if summary == "" {
		return nil, "", fmt.Errorf("summary is required")
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	vector, embModel, err := s.client.EmbedText(ctx, summary)
	if err != nil {
		return nil, embModel, err
	}

	results, err := s.repo.SearchSimilar(ctx, vector, limit)
	if err != nil {
		return nil, embModel, err
	}
	return results, embModel, nil
}

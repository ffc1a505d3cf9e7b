// Incident 요약 임베딩 쿼리 (pgvector)

package db

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/mule-triage/backend/internal/model"
)

func (db *Postgres) EnsureEmbeddingSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS embeddings (
			id BIGSERIAL PRIMARY KEY,
			incident_id TEXT NOT NULL,
			incident_summary TEXT NOT NULL,
			embedding vector(768) NOT NULL,
			model TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) InsertEmbedding(ctx context.Context, incidentID, summary, model string, vector []float32) (int64, error) {
	var id int64
	query := `
		INSERT INTO embeddings (incident_id, incident_summary, embedding, model)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := db.Pool.QueryRow(ctx, query, incidentID, summary, pgvector.NewVector(vector), model).Scan(&id)
	return id, err
}

// SearchSimilar - 코사인 거리 기준 최근접 incident 검색
func (db *Postgres) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]model.SimilarIncident, error) {
	query := `
		SELECT incident_id, incident_summary, embedding <=> $1 AS distance
		FROM embeddings
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, pgvector.NewVector(vector), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.SimilarIncident{}
	for rows.Next() {
		var r model.SimilarIncident
		if err := rows.Scan(&r.IncidentID, &r.Summary, &r.Distance); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

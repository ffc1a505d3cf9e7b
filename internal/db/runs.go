// 분석 실행 이력 쿼리
//
// append-only: 실행이 끝나면 1회 저장하고 이후 수정하지 않는다.
// 런북/스냅샷/서술은 JSONB로 통째로 저장 - 조회 시 파싱 없이 그대로 흘린다.

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mule-triage/backend/internal/model"
)

func (db *Postgres) EnsureRunSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS analysis_runs (
			run_id UUID PRIMARY KEY,
			requested_count INT,
			requested_from TEXT,
			requested_to TEXT,
			email_count INT NOT NULL,
			incident_count INT NOT NULL,
			top_incident_service TEXT NOT NULL,
			runbook JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS run_incidents (
			run_id UUID NOT NULL REFERENCES analysis_runs(run_id) ON DELETE CASCADE,
			ordinal INT NOT NULL,
			incident_id TEXT NOT NULL,
			service TEXT NOT NULL,
			severity TEXT NOT NULL,
			summary TEXT NOT NULL,
			app_name TEXT,
			source TEXT,
			ts TEXT,
			observability_data JSONB,
			ai_health_summary JSONB,
			PRIMARY KEY (run_id, ordinal)
		)
		`,
		`CREATE INDEX IF NOT EXISTS analysis_runs_created_at_idx ON analysis_runs(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun - 실행 1회와 소속 incident들을 단일 트랜잭션으로 저장
func (db *Postgres) SaveRun(ctx context.Context, rec model.RunRecord) error {
	runbook, err := json.Marshal(rec.Response.Runbook)
	if err != nil {
		return fmt.Errorf("failed to marshal runbook: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO analysis_runs
			(run_id, requested_count, requested_from, requested_to,
			 email_count, incident_count, top_incident_service, runbook, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`,
		rec.RunID,
		nullIfZero(rec.Params.Count),
		nullIfEmpty(rec.Params.From),
		nullIfEmpty(rec.Params.To),
		rec.EmailCount,
		len(rec.Response.Incidents),
		rec.Response.TopIncidentService,
		runbook,
	); err != nil {
		return err
	}

	for i, inc := range rec.Response.Incidents {
		snapshot, err := json.Marshal(inc.ObservabilityData)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		var narrative []byte
		if inc.AIHealthSummary != nil {
			if narrative, err = json.Marshal(inc.AIHealthSummary); err != nil {
				return fmt.Errorf("failed to marshal narrative: %w", err)
			}
		}

		if _, err = tx.Exec(ctx, `
			INSERT INTO run_incidents
				(run_id, ordinal, incident_id, service, severity, summary,
				 app_name, source, ts, observability_data, ai_health_summary)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`,
			rec.RunID, i, inc.ID, inc.Service, inc.Severity, inc.Summary,
			inc.AppName, inc.Source, inc.Timestamp, snapshot, narrative,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (db *Postgres) GetRunList(ctx context.Context, limit int) ([]model.RunListResponse, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT run_id, email_count, incident_count, top_incident_service, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []model.RunListResponse{}
	for rows.Next() {
		var run model.RunListResponse
		if err := rows.Scan(
			&run.RunID,
			&run.EmailCount,
			&run.IncidentCount,
			&run.TopIncidentService,
			&run.CreatedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (db *Postgres) GetRunDetail(ctx context.Context, runID string) (*model.RunDetailResponse, error) {
	var detail model.RunDetailResponse
	err := db.Pool.QueryRow(ctx, `
		SELECT run_id, requested_count, requested_from, requested_to,
		       email_count, incident_count, top_incident_service, runbook, created_at
		FROM analysis_runs
		WHERE run_id = $1
	`, runID).Scan(
		&detail.RunID,
		&detail.RequestedCount,
		&detail.RequestedFrom,
		&detail.RequestedTo,
		&detail.EmailCount,
		&detail.IncidentCount,
		&detail.TopIncidentService,
		&detail.Runbook,
		&detail.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT incident_id, run_id, ordinal, service, severity, summary,
		       app_name, source, ts, observability_data, ai_health_summary
		FROM run_incidents
		WHERE run_id = $1
		ORDER BY ordinal
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail.Incidents = []model.StoredIncident{}
	for rows.Next() {
		var inc model.StoredIncident
		if err := rows.Scan(
			&inc.IncidentID,
			&inc.RunID,
			&inc.Ordinal,
			&inc.Service,
			&inc.Severity,
			&inc.Summary,
			&inc.AppName,
			&inc.Source,
			&inc.Timestamp,
			&inc.Snapshot,
			&inc.Narrative,
		); err != nil {
			return nil, err
		}
		detail.Incidents = append(detail.Incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &detail, nil
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

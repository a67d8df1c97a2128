package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"property_proforma/pkg/core/analysis"
)

// AnalysisRepo stores analysis runs keyed by property name + analysis
// date, so superseding runs on a later date accumulate rather than
// overwrite and historical comparison stays possible.
type AnalysisRepo struct{}

// NewAnalysisRepo creates a new repository instance.
func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{}
}

// Save persists one completed run. Re-running the same property on the
// same date upserts in place, which makes the write safely retryable.
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS property_analysis (
//	  property_name TEXT NOT NULL,
//	  analysis_date DATE NOT NULL,
//	  run_id        TEXT NOT NULL,
//	  result_json   JSONB,
//	  updated_at    TIMESTAMPTZ,
//	  PRIMARY KEY (property_name, analysis_date)
//	);
func (r *AnalysisRepo) Save(ctx context.Context, res *analysis.Result) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	query := `
		INSERT INTO property_analysis (property_name, analysis_date, run_id, result_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (property_name, analysis_date)
		DO UPDATE SET
			run_id = EXCLUDED.run_id,
			result_json = EXCLUDED.result_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query,
		res.Property.Name, res.AnalysisDate, res.Summary.RunID, jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// Load retrieves the run for a property on a specific analysis date.
func (r *AnalysisRepo) Load(ctx context.Context, propertyName string, analysisDate time.Time) (*analysis.Result, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT result_json FROM property_analysis WHERE property_name = $1 AND analysis_date = $2`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, propertyName, analysisDate).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis found for %s on %s", propertyName, analysisDate.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	var res analysis.Result
	if err := json.Unmarshal(jsonData, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}

	return &res, nil
}

// LoadHistory returns every saved summary for a property, newest first.
func (r *AnalysisRepo) LoadHistory(ctx context.Context, propertyName string) ([]analysis.Summary, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT result_json -> 'summary'
		FROM property_analysis
		WHERE property_name = $1
		ORDER BY analysis_date DESC`

	rows, err := pool.Query(ctx, query, propertyName)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var summaries []analysis.Summary
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		var s analysis.Summary
		if err := json.Unmarshal(jsonData, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/matthelmer/edinet-tools/pkg/core/analysis"
	"github.com/matthelmer/edinet-tools/pkg/core/report"
)

// ReportRepo stores parsed filings and their analysis runs. One row
// per document; re-parsing the same filing overwrites the previous
// row.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS filings (
//   doc_id TEXT PRIMARY KEY,
//   doc_type_code TEXT,
//   report_json JSONB,
//   updated_at TIMESTAMPTZ
// );
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// StoredReport is what a row unmarshals into: the flat field export
// plus any analysis runs performed on the filing.
type StoredReport struct {
	DocID       string             `json:"doc_id"`
	DocTypeCode string             `json:"doc_type_code"`
	Fields      map[string]any     `json:"fields"`
	Warnings    []string           `json:"warnings,omitempty"`
	Analyses    []*analysis.Result `json:"analyses,omitempty"`
}

// Save upserts a parsed report and its analysis runs keyed by doc ID.
func (r *ReportRepo) Save(ctx context.Context, rep report.Report, analyses []*analysis.Result) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	stored := StoredReport{
		DocID:       rep.DocID(),
		DocTypeCode: rep.DocTypeCode(),
		Fields:      rep.Flat(),
		Analyses:    analyses,
	}
	for _, w := range rep.Warnings() {
		stored.Warnings = append(stored.Warnings, w.String())
	}

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO filings (doc_id, doc_type_code, report_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (doc_id)
		DO UPDATE SET
			doc_type_code = EXCLUDED.doc_type_code,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, rep.DocID(), rep.DocTypeCode(), jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves a stored report by document ID.
func (r *ReportRepo) Load(ctx context.Context, docID string) (*StoredReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT report_json FROM filings WHERE doc_id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, docID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no stored report for doc %s", docID)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var stored StoredReport
	if err := json.Unmarshal(jsonData, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &stored, nil
}

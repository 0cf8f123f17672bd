package edinet

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/archive"
	"github.com/matthelmer/edinet-tools/pkg/core/report"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Document is one entry of the daily document list. Field names match
// the API response; the client reference lets Fetch and Parse work
// without threading the client through call sites.
type Document struct {
	DocID          string `json:"docID"`
	EDINETCode     string `json:"edinetCode"`
	SecCode        string `json:"secCode"`
	FilerName      string `json:"filerName"`
	DocTypeCode    string `json:"docTypeCode"`
	DocDescription string `json:"docDescription"`
	SubmitDateTime string `json:"submitDateTime"`
	PeriodStart    string `json:"periodStart"`
	PeriodEnd      string `json:"periodEnd"`

	client *Client
}

// DocTypeName returns the English name of the document type, or ""
// when the code is not in the registry.
func (d Document) DocTypeName() string {
	if dt, ok := report.LookupDocType(d.DocTypeCode); ok {
		return dt.NameEN
	}
	return ""
}

// FilingTime parses the submission timestamp. The API uses
// "2006-01-02 15:04"; a bare date appears on some older entries.
func (d Document) FilingTime() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, d.SubmitDateTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Fetch downloads the document's CSV archive.
func (d Document) Fetch(ctx context.Context) ([]byte, error) {
	if d.client == nil {
		return nil, fmt.Errorf("document %s has no client; list it via Client.DocumentsByDate", d.DocID)
	}
	return d.client.DownloadCSV(ctx, d.DocID)
}

// Parse fetches, unpacks and dispatches the document into a typed
// report.
func (d Document) Parse(ctx context.Context) (report.Report, error) {
	zipBytes, err := d.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	fs, err := d.FactSet(zipBytes)
	if err != nil {
		return nil, err
	}
	return report.Dispatch(fs)
}

// FactSet unpacks a downloaded archive into the document's fact set.
// Malformed rows are skipped with a warning; the header row of each
// file is dropped.
func (d Document) FactSet(zipBytes []byte) (*xbrl.FactSet, error) {
	files, err := archive.ExtractCSVFiles(zipBytes)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", d.DocID, err)
	}

	meta := xbrl.Meta{
		DocID:           d.DocID,
		DocTypeCode:     d.DocTypeCode,
		FilerName:       d.FilerName,
		FilerEDINETCode: d.EDINETCode,
		DocDescription:  d.DocDescription,
		SecuritiesCode:  d.SecCode,
		PeriodStart:     d.PeriodStart,
		PeriodEnd:       d.PeriodEnd,
	}

	var (
		sources  []string
		facts    []xbrl.Fact
		warnings []xbrl.Warning
	)
	for _, f := range files {
		sources = append(sources, f.Filename)
		for i, row := range f.Rows {
			if i == 0 && isHeaderRow(row) {
				continue
			}
			fact, err := xbrl.FactFromRow(row)
			if err != nil {
				warnings = append(warnings, xbrl.Warning{
					Code:    xbrl.WarnMalformedFact,
					Message: fmt.Sprintf("%s row %d: %v", f.Filename, i+1, err),
				})
				continue
			}
			facts = append(facts, fact)
		}
	}
	if len(warnings) > 0 {
		log.Printf("edinet: %s: skipped %d malformed rows", d.DocID, len(warnings))
	}
	return xbrl.NewFactSet(meta, sources, facts, warnings), nil
}

// isHeaderRow spots the Japanese column-label header every
// XBRL_TO_CSV file starts with.
func isHeaderRow(row []string) bool {
	return len(row) > 0 && row[0] == "要素ID"
}

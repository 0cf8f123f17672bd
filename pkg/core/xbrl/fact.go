// Package xbrl models the tabular facts found in EDINET's XBRL-to-CSV
// conversion output and provides tag normalization, accounting standard
// detection, and value parsing for Japanese disclosure data.
package xbrl

import (
	"fmt"
	"strings"
)

// Column layout of an EDINET XBRL_TO_CSV row.
// "要素ID","項目名","コンテキストID","相対年度","連結・個別","期間・時点","ユニットID","単位","値"
const (
	colElementID = iota
	colLabel
	colContextID
	colRelativeYear
	colConsolidated
	colPeriodKind
	colUnitID
	colUnitScale
	colValue

	// MinRowColumns is the minimum number of columns a row must carry
	// to be parsed into a Fact.
	MinRowColumns = 9
)

// Fact is a single disclosed data point. Immutable once parsed.
type Fact struct {
	ElementID    string // e.g. "jpcrp_cor:NetSalesSummaryOfBusinessResults"
	Label        string // Japanese item name (項目名)
	ContextID    string // e.g. "CurrentYearDuration_ConsolidatedMember"
	RelativeYear string // 相対年度, e.g. "当期" / "CurrentYearDuration"
	Consolidated string // 連結・個別
	PeriodKind   string // 期間・時点 (duration vs instant)
	UnitID       string // ユニットID, typically the currency
	UnitScale    string // 単位, e.g. "千円"
	Value        string // raw string value (値)
}

// FactFromRow parses one decoded CSV row into a Fact. Rows that cannot
// carry a Fact at all (too few columns, no element ID) return an error;
// callers skip the row and record a warning rather than abort the file.
func FactFromRow(row []string) (Fact, error) {
	if len(row) < MinRowColumns {
		return Fact{}, fmt.Errorf("malformed fact row: %d columns, want %d", len(row), MinRowColumns)
	}
	f := Fact{
		ElementID:    cleanCell(row[colElementID]),
		Label:        cleanCell(row[colLabel]),
		ContextID:    cleanCell(row[colContextID]),
		RelativeYear: cleanCell(row[colRelativeYear]),
		Consolidated: cleanCell(row[colConsolidated]),
		PeriodKind:   cleanCell(row[colPeriodKind]),
		UnitID:       cleanCell(row[colUnitID]),
		UnitScale:    cleanCell(row[colUnitScale]),
		Value:        cleanCell(row[colValue]),
	}
	if f.ElementID == "" {
		return Fact{}, fmt.Errorf("malformed fact row: empty element ID")
	}
	return f, nil
}

// cleanCell strips BOM bytes, null bytes, surrounding quotes, and
// control characters that leak through EDINET's mixed encodings.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 32 || r == '\t' || r == '\n' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCurrentPeriod reports whether the fact belongs to the filing's
// current period. An empty period with no prior marker defaults to
// current, matching how instant DEI facts are contexted.
func (f Fact) IsCurrentPeriod() bool {
	period := strings.ToLower(f.RelativeYear)
	ctx := strings.ToLower(f.ContextID)
	switch {
	case strings.Contains(period, "current"):
		return true
	case strings.Contains(ctx, "current"):
		return true
	case period == "" && !strings.Contains(ctx, "prior"):
		return true
	case strings.Contains(period, "当"):
		return true
	}
	return false
}

// IsPriorPeriod reports whether the fact belongs to a comparative
// prior period.
func (f Fact) IsPriorPeriod() bool {
	period := strings.ToLower(f.RelativeYear)
	ctx := strings.ToLower(f.ContextID)
	return strings.Contains(period, "prior") ||
		strings.Contains(ctx, "prior") ||
		strings.Contains(period, "前")
}

// IsTextBlock reports whether the fact carries a narrative text block
// rather than a scalar value.
func (f Fact) IsTextBlock() bool {
	return strings.Contains(f.ElementID, "TextBlock")
}

// LocalName returns the element ID without its namespace prefix.
func (f Fact) LocalName() string {
	if i := strings.IndexByte(f.ElementID, ':'); i >= 0 {
		return f.ElementID[i+1:]
	}
	return f.ElementID
}

func (f Fact) String() string {
	return fmt.Sprintf("Fact(%s, ctx=%s, value=%q)", f.ElementID, f.ContextID, truncate(f.Value, 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Package report turns fact sets into typed, schema-stable report
// records. Each document type code routes to one processor; codes
// without a processor fall back to a raw record so every filing yields
// some output.
package report

import (
	"strings"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Report is the common surface of every parsed record. Flat returns an
// entry for every field the report type declares — extracted value or
// nil — so consumers can rely on the key set without checking the
// concrete type.
type Report interface {
	DocID() string
	DocTypeCode() string
	Fields() []string
	Flat() map[string]any
	Warnings() []xbrl.Warning
}

// Meta holds what every report carries regardless of type: identity,
// provenance, the three catch-all element buckets, and accumulated
// warnings. Reports are immutable once built.
type Meta struct {
	docID          string
	docTypeCode    string
	sourceFiles    []string
	rawFields      map[string]string
	textBlocks     map[string]string
	unmappedFields map[string]string
	warnings       []xbrl.Warning
}

func (m *Meta) DocID() string                     { return m.docID }
func (m *Meta) DocTypeCode() string               { return m.docTypeCode }
func (m *Meta) SourceFiles() []string             { return m.sourceFiles }
func (m *Meta) Warnings() []xbrl.Warning          { return m.warnings }
func (m *Meta) RawFields() map[string]string      { return m.rawFields }
func (m *Meta) TextBlocks() map[string]string     { return m.textBlocks }
func (m *Meta) UnmappedFields() map[string]string { return m.unmappedFields }

// newMeta builds the common base: every non-null fact lands in
// rawFields, TextBlock elements additionally in textBlocks by local
// name, and everything the mapping table does not claim in
// unmappedFields.
func newMeta(fs *xbrl.FactSet, table []extract.FieldMapping, warnings []xbrl.Warning) Meta {
	mapped := mappedElements(table)
	raw := make(map[string]string)
	text := make(map[string]string)
	unmapped := make(map[string]string)
	for _, f := range fs.Facts() {
		if f.ElementID == "" || xbrl.IsNullValue(f.Value) {
			continue
		}
		raw[f.ElementID] = f.Value
		switch {
		case f.IsTextBlock():
			text[f.LocalName()] = f.Value
		case !mapped[f.ElementID]:
			unmapped[f.ElementID] = f.Value
		}
	}
	return Meta{
		docID:          fs.DocID(),
		docTypeCode:    fs.DocTypeCode(),
		sourceFiles:    fs.SourceFiles(),
		rawFields:      raw,
		textBlocks:     text,
		unmappedFields: unmapped,
		warnings:       warnings,
	}
}

// deiElements are the filing-metadata elements processors read
// directly rather than through mapping tables. They count as mapped
// when bucketing leftovers into unmappedFields.
var deiElements = []string{
	"jpdei_cor:EDINETCodeDEI",
	"jpdei_cor:SecurityCodeDEI",
	"jpdei_cor:FundCodeDEI",
	"jpdei_cor:FilerNameInJapaneseDEI",
	"jpdei_cor:FilerNameInEnglishDEI",
	"jpdei_cor:FundNameInJapaneseDEI",
	"jpdei_cor:CurrentFiscalYearStartDateDEI",
	"jpdei_cor:CurrentFiscalYearEndDateDEI",
	"jpdei_cor:CurrentPeriodEndDateDEI",
	"jpdei_cor:DateOfSubmissionDEI",
	"jpdei_cor:AccountingStandardsDEI",
	"jpdei_cor:WhetherConsolidatedFinancialStatementsArePreparedDEI",
	"jpdei_cor:AmendmentFlagDEI",
}

// mappedElements collects every element ID a table can claim,
// including IFRS fallbacks, repeating-group members and the directly
// read DEI elements.
func mappedElements(table []extract.FieldMapping) map[string]bool {
	mapped := make(map[string]bool)
	for _, e := range deiElements {
		mapped[e] = true
	}
	var walk func(ms []extract.FieldMapping)
	walk = func(ms []extract.FieldMapping) {
		for _, m := range ms {
			if m.ElementID != "" {
				mapped[m.ElementID] = true
			}
			if m.IFRSElementID != "" {
				mapped[m.IFRSElementID] = true
			}
			walk(m.Members)
		}
	}
	walk(table)
	return mapped
}

// deiString reads a filing-metadata element, preferring the
// FilingDateInstant context the DEI section files under.
func deiString(fs *xbrl.FactSet, elementID string) *string {
	f, ok := fs.First(elementID, "FilingDateInstant")
	if !ok {
		f, ok = fs.First(elementID)
	}
	if !ok || xbrl.IsNullValue(f.Value) {
		return nil
	}
	v := f.Value
	return &v
}

func deiDate(fs *xbrl.FactSet, elementID string) *time.Time {
	s := deiString(fs, elementID)
	if s == nil {
		return nil
	}
	if t, ok := xbrl.ParseDate(*s); ok {
		return &t
	}
	return nil
}

// consolidatedFlag reads the DEI consolidation flag; filings that omit
// it are treated as consolidated, matching how most filers report.
func consolidatedFlag(fs *xbrl.FactSet) bool {
	s := deiString(fs, "jpdei_cor:WhetherConsolidatedFinancialStatementsArePreparedDEI")
	if s == nil {
		return true
	}
	return *s == "true"
}

// tickerFromSecurityCode formats a 4-digit security code as a Tokyo
// ticker ("7203.T"). EDINET pads codes to five digits.
func tickerFromSecurityCode(code *string) *string {
	if code == nil {
		return nil
	}
	s := strings.TrimSpace(*code)
	if s == "" || xbrl.IsNullValue(s) || len(s) < 4 {
		return nil
	}
	t := s[:4] + ".T"
	return &t
}

// Pickers over an extraction result. Each walks its keys in order and
// returns the first value of the right type, mirroring the summary ->
// financial-statement fallback chains the mapping tables encode.

func pickInt(values map[string]any, keys ...string) *int64 {
	for _, k := range keys {
		if n, ok := values[k].(int64); ok {
			return &n
		}
	}
	return nil
}

func pickFloat(values map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		if f, ok := values[k].(float64); ok {
			return &f
		}
	}
	return nil
}

func pickString(values map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s, ok := values[k].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

func pickDate(values map[string]any, keys ...string) *time.Time {
	for _, k := range keys {
		if t, ok := values[k].(time.Time); ok {
			return &t
		}
	}
	return nil
}

func pickGroups(values map[string]any, key string) []extract.Group {
	gs, _ := values[key].([]extract.Group)
	return gs
}

// opt unwraps an optional for Flat export; nil stays nil rather than
// becoming a typed nil pointer.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Package entity classifies EDINET filers using the FSA's official
// registries: EdinetcodeDlInfo.csv (all registered submitters) and
// FundcodeDlInfo.csv (investment funds and their issuers). Official
// data only, no keyword matching.
package entity

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// Type classifies an EDINET-registered filer.
type Type string

const (
	TypeFund            Type = "fund"
	TypeListedCompany   Type = "listed_company"
	TypeUnlistedCompany Type = "unlisted_company"
	TypeIndividual      Type = "individual"
	TypeUnknown         Type = "unknown"
)

// Entity is one EDINET-registered filer (company, fund issuer,
// individual).
type Entity struct {
	EDINETCode    string
	NameJP        string
	NameEN        string
	SubmitterType string
	IsListed      bool
	Ticker        string // 4-digit securities code, listed companies only
}

// Name returns the English name when the registry has one, else the
// Japanese name.
func (e Entity) Name() string {
	if e.NameEN != "" {
		return e.NameEN
	}
	return e.NameJP
}

func (e Entity) String() string {
	var ticker string
	if e.Ticker != "" {
		ticker = fmt.Sprintf(", ticker=%s", e.Ticker)
	}
	return fmt.Sprintf("Entity(%s%s, name=%q)", e.EDINETCode, ticker, e.Name())
}

// Column layout of EdinetcodeDlInfo.csv (after the metadata and header
// rows).
const (
	colEDINETCode    = 0
	colSubmitterType = 1
	colListed        = 2
	colNameJP        = 6
	colNameEN        = 7
	colSecCode       = 11

	// fundIssuerCol is the issuer's EDINET code column in
	// FundcodeDlInfo.csv.
	fundIssuerCol = 7
)

// Registry indexes both FSA files for classification and lookup. Built
// once, read-only afterwards.
type Registry struct {
	entities    map[string]Entity
	fundIssuers map[string]bool
	byTicker    map[string]string // securities code -> EDINET code
}

// NewRegistry parses the two registry files. Both are distributed by
// the FSA as Shift-JIS CSVs with a metadata row above the header.
func NewRegistry(edinetCodesCSV, fundCodesCSV []byte) (*Registry, error) {
	r := &Registry{
		entities:    make(map[string]Entity),
		fundIssuers: make(map[string]bool),
		byTicker:    make(map[string]string),
	}

	rows, err := parseRegistryCSV(edinetCodesCSV)
	if err != nil {
		return nil, fmt.Errorf("parse EDINET code registry: %w", err)
	}
	for _, row := range rows {
		if len(row) <= colNameJP {
			continue
		}
		code := strings.TrimSpace(row[colEDINETCode])
		if !strings.HasPrefix(code, "E") {
			continue
		}
		e := Entity{
			EDINETCode:    code,
			SubmitterType: strings.TrimSpace(row[colSubmitterType]),
			IsListed:      isListedMarker(row[colListed]),
			NameJP:        strings.TrimSpace(row[colNameJP]),
		}
		if len(row) > colNameEN {
			e.NameEN = strings.TrimSpace(row[colNameEN])
		}
		if len(row) > colSecCode {
			e.Ticker = shortSecuritiesCode(row[colSecCode])
		}
		r.entities[code] = e
		if e.Ticker != "" {
			r.byTicker[e.Ticker] = code
		}
	}

	rows, err = parseRegistryCSV(fundCodesCSV)
	if err != nil {
		return nil, fmt.Errorf("parse fund code registry: %w", err)
	}
	for _, row := range rows {
		if len(row) <= fundIssuerCol {
			continue
		}
		code := strings.TrimSpace(row[fundIssuerCol])
		if strings.HasPrefix(code, "E") {
			r.fundIssuers[code] = true
		}
	}

	return r, nil
}

// parseRegistryCSV decodes Shift-JIS and drops the metadata and header
// rows the FSA puts above the data.
func parseRegistryCSV(raw []byte) ([][]string, error) {
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode Shift-JIS: %w", err)
	}
	cr := csv.NewReader(bytes.NewReader(decoded))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 2 {
		return nil, nil
	}
	return rows[2:], nil
}

// isListedMarker accepts the marker in either language; the FSA has
// shipped both over the years.
func isListedMarker(s string) bool {
	s = strings.TrimSpace(s)
	return s == "上場" || s == "Listed company"
}

// shortSecuritiesCode converts the registry's 5-digit form (72030) to
// the common 4-digit ticker (7203).
func shortSecuritiesCode(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 5 && strings.HasSuffix(s, "0") {
		return s[:4]
	}
	return s
}

// EntityType classifies a filer. Fund issuers appear in both files and
// classify as funds; an unknown code usually means stale registry
// data.
func (r *Registry) EntityType(edinetCode string) Type {
	if edinetCode == "" {
		return TypeUnknown
	}
	if r.fundIssuers[edinetCode] {
		return TypeFund
	}
	e, ok := r.entities[edinetCode]
	if !ok {
		return TypeUnknown
	}
	if strings.Contains(e.SubmitterType, "個人") {
		return TypeIndividual
	}
	if e.IsListed {
		return TypeListedCompany
	}
	return TypeUnlistedCompany
}

// IsFund reports whether the code belongs to an investment fund
// issuer.
func (r *Registry) IsFund(edinetCode string) bool {
	return r.fundIssuers[edinetCode]
}

// IsListed reports whether the code belongs to a listed company.
func (r *Registry) IsListed(edinetCode string) bool {
	return r.entities[edinetCode].IsListed
}

// IsKnown reports whether the code appears in either registry file.
func (r *Registry) IsKnown(edinetCode string) bool {
	_, ok := r.entities[edinetCode]
	return ok || r.fundIssuers[edinetCode]
}

// ByEDINETCode looks up a filer by EDINET code.
func (r *Registry) ByEDINETCode(edinetCode string) (Entity, bool) {
	e, ok := r.entities[edinetCode]
	return e, ok
}

// ByTicker looks up a listed company by securities code. A Tokyo
// exchange suffix ("7203.T") is accepted.
func (r *Registry) ByTicker(ticker string) (Entity, bool) {
	t := strings.TrimSpace(ticker)
	if strings.HasSuffix(strings.ToUpper(t), ".T") {
		t = t[:len(t)-2]
	}
	code, ok := r.byTicker[t]
	if !ok {
		return Entity{}, false
	}
	return r.entities[code], true
}

// Stats summarizes the loaded registries.
type Stats struct {
	TotalEntities   int
	ListedCompanies int
	FundIssuers     int
}

func (r *Registry) Stats() Stats {
	s := Stats{
		TotalEntities: len(r.entities),
		FundIssuers:   len(r.fundIssuers),
	}
	for _, e := range r.entities {
		if e.IsListed {
			s.ListedCompanies++
		}
	}
	return s
}

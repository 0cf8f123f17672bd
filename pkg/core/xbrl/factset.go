package xbrl

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem recorded while parsing or mapping a
// fact set. Warnings degrade output (a missing field, an annotation on
// the resulting report) instead of aborting the document.
type Warning struct {
	Code    string // e.g. "malformed_fact", "ambiguous_mapping"
	Field   string // affected output field, if any
	Message string
}

// Warning codes.
const (
	WarnMalformedFact     = "malformed_fact"
	WarnAmbiguousMapping  = "ambiguous_mapping"
	WarnStandardAmbiguity = "standard_ambiguity"
	WarnDataQuality       = "data_quality"
)

func (w Warning) String() string {
	if w.Field != "" {
		return fmt.Sprintf("%s [%s]: %s", w.Code, w.Field, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Meta carries submission metadata copied from the disclosure API's
// document listing. It travels with a FactSet so processors can fall
// back to it when the filing's own DEI facts are missing.
type Meta struct {
	DocID           string
	DocTypeCode     string
	FilerName       string
	FilerEDINETCode string
	DocDescription  string
	SecuritiesCode  string
	PeriodStart     string
	PeriodEnd       string
}

// FactSet is the ordered collection of Facts belonging to one filed
// document. It is created once per document and read-only thereafter;
// accessors iterate in declaration order so downstream behavior is
// deterministic.
type FactSet struct {
	meta        Meta
	sourceFiles []string
	facts       []Fact
	warnings    []Warning
}

// NewFactSet builds a FactSet from parsed facts. The facts slice is
// copied so the set stays immutable even if the caller reuses it.
func NewFactSet(meta Meta, sourceFiles []string, facts []Fact, warnings []Warning) *FactSet {
	fs := &FactSet{
		meta:        meta,
		sourceFiles: append([]string(nil), sourceFiles...),
		facts:       append([]Fact(nil), facts...),
		warnings:    append([]Warning(nil), warnings...),
	}
	return fs
}

// Meta returns the submission metadata.
func (fs *FactSet) Meta() Meta { return fs.meta }

// DocID returns the EDINET document ID.
func (fs *FactSet) DocID() string { return fs.meta.DocID }

// DocTypeCode returns the document type code (e.g. "120").
func (fs *FactSet) DocTypeCode() string { return fs.meta.DocTypeCode }

// SourceFiles lists the CSV files the facts were parsed from.
func (fs *FactSet) SourceFiles() []string {
	return append([]string(nil), fs.sourceFiles...)
}

// Warnings returns row-level warnings recorded while building the set.
func (fs *FactSet) Warnings() []Warning {
	return append([]Warning(nil), fs.warnings...)
}

// Len returns the number of facts.
func (fs *FactSet) Len() int { return len(fs.facts) }

// Facts returns all facts in declaration order.
func (fs *FactSet) Facts() []Fact {
	return append([]Fact(nil), fs.facts...)
}

// First returns the first fact with the given element ID. If context
// patterns are supplied, each pattern is tried in priority order and
// the first fact whose context ID contains the pattern wins.
func (fs *FactSet) First(elementID string, contextPatterns ...string) (Fact, bool) {
	if elementID == "" {
		return Fact{}, false
	}
	if len(contextPatterns) > 0 {
		for _, pat := range contextPatterns {
			for _, f := range fs.facts {
				if f.ElementID == elementID && strings.Contains(f.ContextID, pat) {
					return f, true
				}
			}
		}
		return Fact{}, false
	}
	for _, f := range fs.facts {
		if f.ElementID == elementID {
			return f, true
		}
	}
	return Fact{}, false
}

// Last returns the last fact with the given element ID. Joint filings
// repeat ownership elements per filer; the last occurrence is the total.
func (fs *FactSet) Last(elementID string) (Fact, bool) {
	for i := len(fs.facts) - 1; i >= 0; i-- {
		if fs.facts[i].ElementID == elementID {
			return fs.facts[i], true
		}
	}
	return Fact{}, false
}

// All returns every fact with the given element ID, in declaration order.
func (fs *FactSet) All(elementID string) []Fact {
	var out []Fact
	for _, f := range fs.facts {
		if f.ElementID == elementID {
			out = append(out, f)
		}
	}
	return out
}

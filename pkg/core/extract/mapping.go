// Package extract applies declarative field-mapping tables to a fact
// set, turning raw XBRL facts into typed field values. Tables are
// static data shared read-only across parses; nothing here mutates
// them after initialization.
package extract

import (
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Rule selects how matching facts become one output value.
type Rule int

const (
	// Scalar takes the single matching fact's value. Multiple matches
	// without a disambiguating period keep the first and record an
	// ambiguous_mapping warning.
	Scalar Rule = iota

	// PeriodQualified selects the fact whose context matches the
	// mapping's declared period, preferring the filing's current
	// period over comparative prior-period facts under the same tag.
	PeriodQualified

	// Repeating collects all matching facts, grouped by context ID in
	// first-seen order, emitting one sub-record per group.
	Repeating
)

// Kind declares the output type a field coerces to.
type Kind int

const (
	Text Kind = iota
	Int
	Decimal
	Percent
	Date
	Bool
)

// FieldMapping binds one canonical concept to one output field.
// ElementID is the primary XBRL element; IFRSElementID, when set, is
// tried as a fallback (jpigp_cor namespace). Standards restricts the
// mapping to specific accounting standards; empty means
// standard-agnostic. Period is the context period qualifier for
// PeriodQualified mappings (e.g. "CurrentYearDuration").
type FieldMapping struct {
	Field         string          `yaml:"field"`
	ElementID     string          `yaml:"element_id"`
	IFRSElementID string          `yaml:"ifrs_element_id,omitempty"`
	Standards     []xbrl.Standard `yaml:"-"`
	Rule          Rule            `yaml:"-"`
	Period        string          `yaml:"period,omitempty"`
	Kind          Kind            `yaml:"-"`

	// Repeating-group members. ContextKey identifies the repeating
	// contexts (substring match); Members are extracted per group.
	ContextKey string         `yaml:"context_key,omitempty"`
	Members    []FieldMapping `yaml:"members,omitempty"`

	// GetLast returns the last occurrence instead of the first; joint
	// large-holding filings repeat totals per filer.
	GetLast bool `yaml:"get_last,omitempty"`
}

// appliesTo reports whether the mapping is active under the detected
// standard. Standard-agnostic mappings always apply; Unknown filings
// get every mapping so partial data still extracts.
func (m FieldMapping) appliesTo(std xbrl.Standard) bool {
	if len(m.Standards) == 0 || std == xbrl.StandardUnknown {
		return true
	}
	for _, s := range m.Standards {
		if s == std {
			return true
		}
	}
	return false
}

// Group is one sub-record of a repeating-group extraction, keyed by
// the context ID it was grouped under. Fields holds one entry per
// member mapping; absent members are nil.
type Group struct {
	ContextID string
	Fields    map[string]any
}

// ContextPatterns builds context ID patterns in priority order for a
// period qualifier. Consolidated filers prefer ConsolidatedMember
// contexts, others the reverse; the bare period matches last.
func ContextPatterns(consolidated bool, period string) []string {
	if consolidated {
		return []string{
			period + "_ConsolidatedMember",
			period + "_NonConsolidatedMember",
			period,
		}
	}
	return []string{
		period + "_NonConsolidatedMember",
		period + "_ConsolidatedMember",
		period,
	}
}

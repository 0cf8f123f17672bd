package extract

import (
	"fmt"
	"strings"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Result is the outcome of applying a mapping table to one fact set.
// Values carries an entry for every mapping in the table — extracted
// value or nil — so no schema key is ever silently omitted.
type Result struct {
	Values   map[string]any
	Warnings []xbrl.Warning
}

// Extract applies the mapping table to the fact set under the detected
// accounting standard. Pure: the fact set and table are read-only, and
// identical inputs yield identical results.
func Extract(fs *xbrl.FactSet, table []FieldMapping, std xbrl.Standard, consolidated bool) Result {
	res := Result{Values: make(map[string]any, len(table))}
	for _, m := range table {
		if !m.appliesTo(std) {
			res.Values[m.Field] = nil
			continue
		}
		switch m.Rule {
		case Repeating:
			res.Values[m.Field] = extractGroups(fs, m)
		case PeriodQualified:
			v, warns := extractPeriodQualified(fs, m, consolidated)
			res.Values[m.Field] = v
			res.Warnings = append(res.Warnings, warns...)
		default:
			v, warns := extractScalar(fs, m)
			res.Values[m.Field] = v
			res.Warnings = append(res.Warnings, warns...)
		}
	}
	return res
}

// extractScalar takes the single matching fact, falling back to the
// IFRS element when the primary yields nothing. Multiple matches with
// no period qualifier keep the first and warn.
func extractScalar(fs *xbrl.FactSet, m FieldMapping) (any, []xbrl.Warning) {
	matches := fs.All(m.ElementID)
	if len(matches) == 0 && m.IFRSElementID != "" {
		matches = fs.All(m.IFRSElementID)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	var warns []xbrl.Warning
	pick := matches[0]
	if m.GetLast {
		pick = matches[len(matches)-1]
	} else if len(matches) > 1 {
		if disambiguated, ok := preferCurrent(matches); ok {
			pick = disambiguated
		} else {
			warns = append(warns, xbrl.Warning{
				Code:    xbrl.WarnAmbiguousMapping,
				Field:   m.Field,
				Message: fmt.Sprintf("%d facts match %s with no disambiguating period; keeping first", len(matches), m.ElementID),
			})
		}
	}
	v, warn := coerce(pick, m)
	if warn != nil {
		warns = append(warns, *warn)
	}
	return v, warns
}

// preferCurrent resolves a multi-match when exactly the current-period
// fact can be singled out.
func preferCurrent(matches []xbrl.Fact) (xbrl.Fact, bool) {
	var current []xbrl.Fact
	for _, f := range matches {
		if f.IsCurrentPeriod() && !f.IsPriorPeriod() {
			current = append(current, f)
		}
	}
	if len(current) == 1 {
		return current[0], true
	}
	return xbrl.Fact{}, false
}

// extractPeriodQualified walks the context pattern priority list for
// the mapping's period. Current-period contexts win over comparative
// prior-period facts by construction of the pattern list.
func extractPeriodQualified(fs *xbrl.FactSet, m FieldMapping, consolidated bool) (any, []xbrl.Warning) {
	patterns := ContextPatterns(consolidated, m.Period)
	f, ok := fs.First(m.ElementID, patterns...)
	if !ok && m.IFRSElementID != "" {
		f, ok = fs.First(m.IFRSElementID, patterns...)
	}
	if !ok {
		return nil, nil
	}
	v, warn := coerce(f, m)
	if warn != nil {
		return v, []xbrl.Warning{*warn}
	}
	return v, nil
}

// extractGroups collects the repeating-group sub-records: facts whose
// context contains the group's ContextKey, bucketed by context ID in
// first-seen order.
func extractGroups(fs *xbrl.FactSet, m FieldMapping) []Group {
	memberOf := make(map[string]FieldMapping, len(m.Members))
	for _, mem := range m.Members {
		memberOf[mem.ElementID] = mem
	}

	var order []string
	byContext := make(map[string]*Group)
	for _, f := range fs.Facts() {
		mem, ok := memberOf[f.ElementID]
		if !ok {
			continue
		}
		if m.ContextKey != "" && !strings.Contains(f.ContextID, m.ContextKey) {
			continue
		}
		g, seen := byContext[f.ContextID]
		if !seen {
			g = &Group{ContextID: f.ContextID, Fields: make(map[string]any, len(m.Members))}
			for _, mm := range m.Members {
				g.Fields[mm.Field] = nil
			}
			byContext[f.ContextID] = g
			order = append(order, f.ContextID)
		}
		if g.Fields[mem.Field] == nil {
			v, _ := coerce(f, mem)
			g.Fields[mem.Field] = v
		}
	}

	groups := make([]Group, 0, len(order))
	for _, ctx := range order {
		groups = append(groups, *byContext[ctx])
	}
	return groups
}

// coerce converts a fact's raw value into the mapping's declared kind.
// Numeric parse failures yield nil plus a malformed_fact warning; they
// never abort the extraction.
func coerce(f xbrl.Fact, m FieldMapping) (any, *xbrl.Warning) {
	if xbrl.IsNullValue(f.Value) {
		return nil, nil
	}
	switch m.Kind {
	case Int:
		if n, ok := xbrl.ParseInt(f.Value); ok {
			return n, nil
		}
	case Decimal:
		if d, ok := xbrl.ParseDecimal(f.Value); ok {
			return d, nil
		}
	case Percent:
		if p, ok := xbrl.ParsePercentage(f.Value); ok {
			return p, nil
		}
	case Date:
		if t, ok := xbrl.ParseDate(f.Value); ok {
			return t, nil
		}
	case Bool:
		return strings.EqualFold(f.Value, "true"), nil
	default:
		return f.Value, nil
	}
	return nil, &xbrl.Warning{
		Code:    xbrl.WarnMalformedFact,
		Field:   m.Field,
		Message: fmt.Sprintf("cannot coerce %q from %s", truncated(f.Value), f.ElementID),
	}
}

func truncated(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

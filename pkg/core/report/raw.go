package report

import (
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// RawValue is one entry of a raw report: the fact's value together
// with its period qualifier, keyed by canonical tag.
type RawValue struct {
	Value  string
	Period string
}

// RawReport is the fallback output for document type codes without a
// dedicated processor. Every fact survives: Values maps the canonical
// (normalized) tag to value and period, RawFields keeps the original
// element IDs, and TextBlocks the narrative content. Use it to explore
// a document type before deciding whether it deserves a typed
// processor.
type RawReport struct {
	Meta

	FilerName       *string
	FilerNameEN     *string
	FilerEDINETCode *string
	Ticker          *string
	DocDescription  *string

	Values map[string]RawValue
}

var rawFixedFields = []string{
	"filer_name", "filer_name_en", "filer_edinet_code", "ticker", "doc_description",
}

// Fields lists the fixed identification fields plus every canonical
// tag this document carries.
func (r *RawReport) Fields() []string {
	out := append([]string(nil), rawFixedFields...)
	for tag := range r.Values {
		out = append(out, tag)
	}
	return out
}

func (r *RawReport) Flat() map[string]any {
	out := map[string]any{
		"filer_name":        opt(r.FilerName),
		"filer_name_en":     opt(r.FilerNameEN),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"ticker":            opt(r.Ticker),
		"doc_description":   opt(r.DocDescription),
	}
	for tag, rv := range r.Values {
		out[tag] = rv.Value
	}
	return out
}

// processRaw maps every fact to its canonical tag without schema
// validation, so dispatch stays total over the code space.
func processRaw(fs *xbrl.FactSet) Report {
	values := make(map[string]RawValue)
	for _, f := range fs.Facts() {
		if f.ElementID == "" || xbrl.IsNullValue(f.Value) {
			continue
		}
		tag := xbrl.NormalizeTag(f.ElementID)
		if _, seen := values[tag]; seen && !f.IsCurrentPeriod() {
			// Keep the first (current-period) occurrence over later
			// comparatives for the same canonical tag.
			continue
		}
		values[tag] = RawValue{Value: f.Value, Period: f.PeriodKind}
	}

	meta := fs.Meta()
	filerName := deiString(fs, "jpdei_cor:FilerNameInJapaneseDEI")
	if filerName == nil && meta.FilerName != "" {
		filerName = &meta.FilerName
	}
	edinetCode := deiString(fs, "jpdei_cor:EDINETCodeDEI")
	if edinetCode == nil && meta.FilerEDINETCode != "" {
		edinetCode = &meta.FilerEDINETCode
	}
	var docDescription *string
	if meta.DocDescription != "" {
		docDescription = &meta.DocDescription
	}

	r := &RawReport{
		FilerName:       filerName,
		FilerNameEN:     deiString(fs, "jpdei_cor:FilerNameInEnglishDEI"),
		FilerEDINETCode: edinetCode,
		Ticker:          tickerFromSecurityCode(deiString(fs, "jpdei_cor:SecurityCodeDEI")),
		DocDescription:  docDescription,
		Values:          values,
	}
	r.Meta = newMeta(fs, nil, nil)
	return r
}

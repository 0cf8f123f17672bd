package report

import (
	"strings"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// Event types derived from the reason-for-filing text of extraordinary
// reports. Classification walks the keyword sets in a fixed order so
// a text matching several categories always resolves the same way.
var eventKeywords = []struct {
	eventType string
	keywords  []string
}{
	{"trust_termination", []string{"信託終了", "信託契約の終了", "繰上償還"}},
	{"merger", []string{"合併", "統合", "吸収合併"}},
	{"trust_change", []string{"信託約款", "約款変更", "運用方針の変更"}},
	{"dissolution", []string{"解散", "清算"}},
	{"material_change", []string{"重要な変更", "重要事項"}},
}

// ExtraordinaryReport is the parsed extraordinary report (doc 180), an
// event-driven disclosure. Corporate filings use the jpcrp-esr_cor
// namespace, fund filings jpsps-esr_cor; both map to the same fields.
type ExtraordinaryReport struct {
	Meta

	FilerName       *string
	FilerNameEN     *string
	FilerEDINETCode *string
	Ticker          *string
	FundCode        *string
	FundName        *string

	DocumentTitle  *string
	FilingDate     *time.Time
	Representative *string
	Address        *string

	ReasonForFiling *string
	EventType       string
}

var extraordinaryFields = []string{
	"filer_name", "filer_name_en", "filer_edinet_code", "ticker", "fund_code", "fund_name",
	"document_title", "filing_date", "representative", "address",
	"reason_for_filing", "event_type",
}

func (r *ExtraordinaryReport) Fields() []string {
	return append([]string(nil), extraordinaryFields...)
}

// IsFund reports whether the filing came from an investment fund
// rather than a corporation.
func (r *ExtraordinaryReport) IsFund() bool {
	return r.FundCode != nil || r.FundName != nil
}

func (r *ExtraordinaryReport) Flat() map[string]any {
	return map[string]any{
		"filer_name":        opt(r.FilerName),
		"filer_name_en":     opt(r.FilerNameEN),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"ticker":            opt(r.Ticker),
		"fund_code":         opt(r.FundCode),
		"fund_name":         opt(r.FundName),

		"document_title": opt(r.DocumentTitle),
		"filing_date":    opt(r.FilingDate),
		"representative": opt(r.Representative),
		"address":        opt(r.Address),

		"reason_for_filing": opt(r.ReasonForFiling),
		"event_type":        r.EventType,
	}
}

func processExtraordinary(fs *xbrl.FactSet) Report {
	// No accounting standard detection: extraordinary reports carry no
	// financial statements.
	res := extract.Extract(fs, extraordinaryTable, xbrl.StandardUnknown, true)
	warns := res.Warnings
	v := res.Values

	meta := fs.Meta()
	filerName := deiString(fs, "jpdei_cor:FilerNameInJapaneseDEI")
	if filerName == nil {
		filerName = pickString(v, "issuer_name", "company_name")
	}
	if filerName == nil && meta.FilerName != "" {
		filerName = &meta.FilerName
	}
	edinetCode := deiString(fs, "jpdei_cor:EDINETCodeDEI")
	if edinetCode == nil && meta.FilerEDINETCode != "" {
		edinetCode = &meta.FilerEDINETCode
	}

	reason := pickString(v, "reason_fund", "reason_corp")

	r := &ExtraordinaryReport{
		FilerName:       filerName,
		FilerNameEN:     deiString(fs, "jpdei_cor:FilerNameInEnglishDEI"),
		FilerEDINETCode: edinetCode,
		Ticker:          tickerFromSecurityCode(deiString(fs, "jpdei_cor:SecurityCodeDEI")),
		FundCode:        deiString(fs, "jpdei_cor:FundCodeDEI"),
		FundName:        deiString(fs, "jpdei_cor:FundNameInJapaneseDEI"),

		DocumentTitle:  pickString(v, "document_title_fund", "document_title_corp"),
		FilingDate:     pickDate(v, "filing_date_fund", "filing_date_corp"),
		Representative: pickString(v, "representative_fund", "representative_corp"),
		Address:        pickString(v, "address_fund", "address_corp"),

		ReasonForFiling: reason,
		EventType:       classifyEvent(reason),
	}
	r.Meta = newMeta(fs, extraordinaryTable, warns)
	return r
}

// classifyEvent buckets a reason-for-filing text by keyword. Missing
// text is "unknown", text matching no category is "other".
func classifyEvent(reason *string) string {
	if reason == nil || *reason == "" {
		return "unknown"
	}
	for _, ek := range eventKeywords {
		for _, kw := range ek.keywords {
			if strings.Contains(*reason, kw) {
				return ek.eventType
			}
		}
	}
	return "other"
}

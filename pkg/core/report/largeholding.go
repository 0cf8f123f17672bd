package report

import (
	"strings"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// LargeHoldingReport is the parsed large shareholding report (doc 350
// family). Ownership ratios are stored as decimals exactly as filed
// (0.0967 = 9.67%); nothing is reinterpreted at parse time.
type LargeHoldingReport struct {
	Meta

	ReportIndication *string
	ChangeReason     *string

	FilerName       *string
	FilerNameEN     *string
	FilerEDINETCode *string
	FilerAddress    *string
	FilerType       *string
	FilerBusiness   *string

	TargetCompany *string
	TargetTicker  *string

	SharesHeld        *int64
	OwnershipPct      *float64
	PriorOwnershipPct *float64
	OwnershipChange   *float64
	SharesOutstanding *int64

	Purpose           *string
	ImportantProposal *string

	FilingDate  *time.Time
	TriggerDate *time.Time
	BaseDate    *time.Time

	AcquisitionFundOwn       *int64
	AcquisitionFundBorrowing *int64
	AcquisitionFundOther     *int64
	AcquisitionFundTotal     *int64
}

var largeHoldingFields = []string{
	"report_indication", "change_reason",
	"filer_name", "filer_name_en", "filer_edinet_code", "filer_address", "filer_type", "filer_business",
	"target_company", "target_ticker",
	"shares_held", "ownership_pct", "prior_ownership_pct", "ownership_change", "shares_outstanding",
	"purpose", "important_proposal",
	"filing_date", "trigger_date", "base_date",
	"acquisition_fund_own", "acquisition_fund_borrowing", "acquisition_fund_other", "acquisition_fund_total",
}

func (r *LargeHoldingReport) Fields() []string { return append([]string(nil), largeHoldingFields...) }

func (r *LargeHoldingReport) Flat() map[string]any {
	return map[string]any{
		"report_indication": opt(r.ReportIndication),
		"change_reason":     opt(r.ChangeReason),

		"filer_name":        opt(r.FilerName),
		"filer_name_en":     opt(r.FilerNameEN),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"filer_address":     opt(r.FilerAddress),
		"filer_type":        opt(r.FilerType),
		"filer_business":    opt(r.FilerBusiness),

		"target_company": opt(r.TargetCompany),
		"target_ticker":  opt(r.TargetTicker),

		"shares_held":         opt(r.SharesHeld),
		"ownership_pct":       opt(r.OwnershipPct),
		"prior_ownership_pct": opt(r.PriorOwnershipPct),
		"ownership_change":    opt(r.OwnershipChange),
		"shares_outstanding":  opt(r.SharesOutstanding),

		"purpose":            opt(r.Purpose),
		"important_proposal": opt(r.ImportantProposal),

		"filing_date":  opt(r.FilingDate),
		"trigger_date": opt(r.TriggerDate),
		"base_date":    opt(r.BaseDate),

		"acquisition_fund_own":       opt(r.AcquisitionFundOwn),
		"acquisition_fund_borrowing": opt(r.AcquisitionFundBorrowing),
		"acquisition_fund_other":     opt(r.AcquisitionFundOther),
		"acquisition_fund_total":     opt(r.AcquisitionFundTotal),
	}
}

// OwnershipPercentage returns the holding as a percentage (9.67 for a
// filed ratio of 0.0967).
func (r *LargeHoldingReport) OwnershipPercentage() *float64 {
	if r.OwnershipPct == nil {
		return nil
	}
	pct := *r.OwnershipPct * 100
	return &pct
}

func processLargeHolding(fs *xbrl.FactSet) Report {
	// No accounting standard detection: holding reports carry no
	// financial statements.
	res := extract.Extract(fs, largeHoldingTable, xbrl.StandardUnknown, true)
	warns := res.Warnings
	v := res.Values

	meta := fs.Meta()
	filerName := pickString(v, "filer_name_alt1", "filer_name_alt2")
	if filerName == nil && meta.FilerName != "" {
		filerName = &meta.FilerName
	}
	edinetCode := pickString(v, "filer_edinet_code")
	if edinetCode == nil && meta.FilerEDINETCode != "" {
		edinetCode = &meta.FilerEDINETCode
	}

	// Normalize the issuer's security code to the 4-digit ticker form.
	var targetTicker *string
	if raw := pickString(v, "target_ticker"); raw != nil {
		s := strings.TrimSpace(*raw)
		if len(s) >= 4 {
			t := s[:4] + ".T"
			targetTicker = &t
		}
	}

	ownershipPct := pickFloat(v, "ownership_pct")
	priorOwnershipPct := pickFloat(v, "prior_ownership_pct")
	var ownershipChange *float64
	if ownershipPct != nil && priorOwnershipPct != nil {
		d := *ownershipPct - *priorOwnershipPct
		ownershipChange = &d
	}

	r := &LargeHoldingReport{
		ReportIndication: pickString(v, "report_indication"),
		ChangeReason:     pickString(v, "change_reason"),

		FilerName:       filerName,
		FilerNameEN:     pickString(v, "filer_name_en"),
		FilerEDINETCode: edinetCode,
		FilerAddress:    pickString(v, "filer_address"),
		FilerType:       pickString(v, "filer_type"),
		FilerBusiness:   pickString(v, "filer_business"),

		TargetCompany: pickString(v, "target_company"),
		TargetTicker:  targetTicker,

		SharesHeld:        pickInt(v, "shares_held"),
		OwnershipPct:      ownershipPct,
		PriorOwnershipPct: priorOwnershipPct,
		OwnershipChange:   ownershipChange,
		SharesOutstanding: pickInt(v, "shares_outstanding"),

		Purpose:           pickString(v, "purpose"),
		ImportantProposal: pickString(v, "important_proposal"),

		FilingDate:  pickDate(v, "filing_date"),
		TriggerDate: pickDate(v, "trigger_date"),
		BaseDate:    pickDate(v, "base_date"),

		AcquisitionFundOwn:       pickInt(v, "acquisition_fund_own"),
		AcquisitionFundBorrowing: pickInt(v, "acquisition_fund_borrowing"),
		AcquisitionFundOther:     pickInt(v, "acquisition_fund_other"),
		AcquisitionFundTotal:     pickInt(v, "acquisition_fund_total"),
	}
	r.Meta = newMeta(fs, largeHoldingTable, warns)
	return r
}

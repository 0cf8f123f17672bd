package report

import (
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// SemiAnnualReport is the parsed semi-annual report (doc 160). These
// are filed by corporations and investment funds alike; fund filings
// identify themselves through the fund code and name.
type SemiAnnualReport struct {
	Meta

	FilerName       *string
	FilerEDINETCode *string
	FundCode        *string
	FundName        *string

	PeriodStart *time.Time
	PeriodEnd   *time.Time
	FilingDate  *time.Time

	TotalAssets        *int64
	CurrentAssets      *int64
	TotalLiabilities   *int64
	CurrentLiabilities *int64
	NetAssets          *int64

	OperatingIncome *int64
	OrdinaryIncome  *int64
	NetIncome       *int64
}

var semiAnnualFields = []string{
	"filer_name", "filer_edinet_code", "fund_code", "fund_name",
	"period_start", "period_end", "filing_date",
	"total_assets", "current_assets", "total_liabilities", "current_liabilities", "net_assets",
	"operating_income", "ordinary_income", "net_income",
}

func (r *SemiAnnualReport) Fields() []string { return append([]string(nil), semiAnnualFields...) }

// IsFund reports whether the filing came from an investment fund
// rather than a corporation.
func (r *SemiAnnualReport) IsFund() bool {
	return r.FundCode != nil || r.FundName != nil
}

func (r *SemiAnnualReport) Flat() map[string]any {
	return map[string]any{
		"filer_name":        opt(r.FilerName),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"fund_code":         opt(r.FundCode),
		"fund_name":         opt(r.FundName),

		"period_start": opt(r.PeriodStart),
		"period_end":   opt(r.PeriodEnd),
		"filing_date":  opt(r.FilingDate),

		"total_assets":        opt(r.TotalAssets),
		"current_assets":      opt(r.CurrentAssets),
		"total_liabilities":   opt(r.TotalLiabilities),
		"current_liabilities": opt(r.CurrentLiabilities),
		"net_assets":          opt(r.NetAssets),

		"operating_income": opt(r.OperatingIncome),
		"ordinary_income":  opt(r.OrdinaryIncome),
		"net_income":       opt(r.NetIncome),
	}
}

func processSemiAnnual(fs *xbrl.FactSet) Report {
	std, warns := xbrl.DetectStandard(fs)
	consolidated := consolidatedFlag(fs)

	res := extract.Extract(fs, semiAnnualTable, std, consolidated)
	warns = append(warns, res.Warnings...)
	v := res.Values

	meta := fs.Meta()
	filerName := deiString(fs, "jpdei_cor:FilerNameInJapaneseDEI")
	if filerName == nil && meta.FilerName != "" {
		filerName = &meta.FilerName
	}
	edinetCode := deiString(fs, "jpdei_cor:EDINETCodeDEI")
	if edinetCode == nil && meta.FilerEDINETCode != "" {
		edinetCode = &meta.FilerEDINETCode
	}

	periodEnd := deiDate(fs, "jpdei_cor:CurrentPeriodEndDateDEI")
	filingDate := deiDate(fs, "jpdei_cor:DateOfSubmissionDEI")
	if filingDate == nil {
		filingDate = periodEnd
	}

	r := &SemiAnnualReport{
		FilerName:       filerName,
		FilerEDINETCode: edinetCode,
		FundCode:        deiString(fs, "jpdei_cor:FundCodeDEI"),
		FundName:        deiString(fs, "jpdei_cor:FundNameInJapaneseDEI"),

		PeriodStart: deiDate(fs, "jpdei_cor:CurrentFiscalYearStartDateDEI"),
		PeriodEnd:   periodEnd,
		FilingDate:  filingDate,

		TotalAssets:        pickInt(v, "total_assets"),
		CurrentAssets:      pickInt(v, "current_assets"),
		TotalLiabilities:   pickInt(v, "total_liabilities"),
		CurrentLiabilities: pickInt(v, "current_liabilities"),
		NetAssets:          pickInt(v, "net_assets"),

		OperatingIncome: pickInt(v, "operating_income"),
		OrdinaryIncome:  pickInt(v, "ordinary_income"),
		NetIncome:       pickInt(v, "net_income"),
	}
	r.Meta = newMeta(fs, semiAnnualTable, warns)
	return r
}

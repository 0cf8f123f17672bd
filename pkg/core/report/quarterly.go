package report

import (
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// QuarterlyReport is the parsed quarterly report (doc 140). Income
// statement and cash flow figures are year-to-date cumulative: a Q3
// report covers the first nine months, not the quarter alone.
type QuarterlyReport struct {
	Meta

	FilerName       *string
	FilerEDINETCode *string
	Ticker          *string
	IsConsolidated  bool

	FiscalYearEnd *time.Time
	QuarterNumber *int
	FilingDate    *time.Time

	RevenueYTD         *int64
	OperatingProfitYTD *int64
	OrdinaryProfitYTD  *int64
	NetIncomeYTD       *int64

	PriorRevenueYTD         *int64
	PriorOperatingProfitYTD *int64
	PriorOrdinaryProfitYTD  *int64
	PriorNetIncomeYTD       *int64

	TotalAssets      *int64
	NetAssets        *int64
	TotalLiabilities *int64

	OperatingCashFlowYTD *int64
	InvestingCashFlowYTD *int64
	FinancingCashFlowYTD *int64

	EPSBasicYTD *float64
	EquityRatio *float64
}

var quarterlyFields = []string{
	"filer_name", "filer_edinet_code", "ticker", "is_consolidated",
	"fiscal_year_end", "quarter_number", "filing_date",
	"revenue_ytd", "operating_profit_ytd", "ordinary_profit_ytd", "net_income_ytd",
	"prior_revenue_ytd", "prior_operating_profit_ytd", "prior_ordinary_profit_ytd", "prior_net_income_ytd",
	"total_assets", "net_assets", "total_liabilities",
	"operating_cash_flow_ytd", "investing_cash_flow_ytd", "financing_cash_flow_ytd",
	"eps_basic_ytd", "equity_ratio",
}

func (r *QuarterlyReport) Fields() []string { return append([]string(nil), quarterlyFields...) }

func (r *QuarterlyReport) Flat() map[string]any {
	return map[string]any{
		"filer_name":        opt(r.FilerName),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"ticker":            opt(r.Ticker),
		"is_consolidated":   r.IsConsolidated,
		"fiscal_year_end":   opt(r.FiscalYearEnd),
		"quarter_number":    opt(r.QuarterNumber),
		"filing_date":       opt(r.FilingDate),

		"revenue_ytd":          opt(r.RevenueYTD),
		"operating_profit_ytd": opt(r.OperatingProfitYTD),
		"ordinary_profit_ytd":  opt(r.OrdinaryProfitYTD),
		"net_income_ytd":       opt(r.NetIncomeYTD),

		"prior_revenue_ytd":          opt(r.PriorRevenueYTD),
		"prior_operating_profit_ytd": opt(r.PriorOperatingProfitYTD),
		"prior_ordinary_profit_ytd":  opt(r.PriorOrdinaryProfitYTD),
		"prior_net_income_ytd":       opt(r.PriorNetIncomeYTD),

		"total_assets":      opt(r.TotalAssets),
		"net_assets":        opt(r.NetAssets),
		"total_liabilities": opt(r.TotalLiabilities),

		"operating_cash_flow_ytd": opt(r.OperatingCashFlowYTD),
		"investing_cash_flow_ytd": opt(r.InvestingCashFlowYTD),
		"financing_cash_flow_ytd": opt(r.FinancingCashFlowYTD),

		"eps_basic_ytd": opt(r.EPSBasicYTD),
		"equity_ratio":  opt(r.EquityRatio),
	}
}

func processQuarterly(fs *xbrl.FactSet) Report {
	std, warns := xbrl.DetectStandard(fs)
	consolidated := consolidatedFlag(fs)

	res := extract.Extract(fs, quarterlyTable, std, consolidated)
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

	fiscalYearEnd := deiDate(fs, "jpdei_cor:CurrentFiscalYearEndDateDEI")
	filingDate := pickDate(v, "filing_date")

	var quarterNumber *int
	if filingDate != nil && fiscalYearEnd != nil {
		quarterNumber = deriveQuarterNumber(*filingDate, *fiscalYearEnd)
	}

	r := &QuarterlyReport{
		FilerName:       filerName,
		FilerEDINETCode: edinetCode,
		Ticker:          tickerFromSecurityCode(deiString(fs, "jpdei_cor:SecurityCodeDEI")),
		IsConsolidated:  consolidated,

		FiscalYearEnd: fiscalYearEnd,
		QuarterNumber: quarterNumber,
		FilingDate:    filingDate,

		RevenueYTD:         pickInt(v, "revenue_ytd"),
		OperatingProfitYTD: pickInt(v, "operating_profit_ytd"),
		OrdinaryProfitYTD:  pickInt(v, "ordinary_profit_ytd"),
		NetIncomeYTD:       pickInt(v, "net_income_ytd"),

		PriorRevenueYTD:         pickInt(v, "prior_revenue_ytd"),
		PriorOperatingProfitYTD: pickInt(v, "prior_operating_profit_ytd"),
		PriorOrdinaryProfitYTD:  pickInt(v, "prior_ordinary_profit_ytd"),
		PriorNetIncomeYTD:       pickInt(v, "prior_net_income_ytd"),

		TotalAssets:      pickInt(v, "total_assets"),
		NetAssets:        pickInt(v, "net_assets"),
		TotalLiabilities: pickInt(v, "total_liabilities"),

		OperatingCashFlowYTD: pickInt(v, "operating_cash_flow_ytd"),
		InvestingCashFlowYTD: pickInt(v, "investing_cash_flow_ytd"),
		FinancingCashFlowYTD: pickInt(v, "financing_cash_flow_ytd"),

		EPSBasicYTD: pickFloat(v, "eps_basic_ytd"),
		EquityRatio: pickFloat(v, "equity_ratio"),
	}
	r.Meta = newMeta(fs, quarterlyTable, warns)
	return r
}

// deriveQuarterNumber infers Q1/Q2/Q3 from how many months after the
// fiscal year start the report was filed. Quarterly reports are due 45
// days after quarter end, so Q1 lands 3-5 months in, Q2 6-8, Q3 9-11.
// Anything outside those windows (e.g. an annual filing) yields nil.
func deriveQuarterNumber(filingDate, fiscalYearEnd time.Time) *int {
	fiscalYearStart := fiscalYearEnd.AddDate(-1, 0, 1)
	months := (filingDate.Year()-fiscalYearStart.Year())*12 +
		int(filingDate.Month()) - int(fiscalYearStart.Month())

	var q int
	switch {
	case months >= 3 && months <= 5:
		q = 1
	case months >= 6 && months <= 8:
		q = 2
	case months >= 9 && months <= 11:
		q = 3
	default:
		return nil
	}
	return &q
}

package report

import (
	"fmt"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// DefaultSanityMultiplier bounds |operating_income| relative to
// |net_sales| in the securities cross-field check. XBRL conversion
// glitches (unit mixups, wrong context) show up as impossible ratios.
const DefaultSanityMultiplier = 5.0

// SecuritiesReport is the parsed annual securities report (doc 120).
// All monetary values are yen, ratios are decimals (0.086 = 8.6%);
// nothing is reinterpreted at parse time.
type SecuritiesReport struct {
	Meta

	FilerName          *string
	FilerNameEN        *string
	FilerEDINETCode    *string
	Ticker             *string
	AccountingStandard *string
	IsConsolidated     bool

	FiscalYearStart *time.Time
	FiscalYearEnd   *time.Time

	NetSales        *int64
	OperatingIncome *int64
	OrdinaryIncome  *int64
	NetIncome       *int64

	PriorNetSales        *int64
	PriorOperatingIncome *int64
	PriorOrdinaryIncome  *int64
	PriorNetIncome       *int64

	TotalAssets      *int64
	NetAssets        *int64
	TotalLiabilities *int64

	ShortTermLoansPayable              *int64
	LongTermLoansPayable               *int64
	BondsPayable                       *int64
	CurrentPortionLongTermLoansPayable *int64
	LeaseObligationsCurrent            *int64
	LeaseObligationsNoncurrent         *int64
	CommercialPaper                    *int64

	OperatingCashFlow *int64
	InvestingCashFlow *int64
	FinancingCashFlow *int64

	NetAssetsPerShare *float64
	EarningsPerShare  *float64
	EquityRatio       *float64
	ROE               *float64

	NumEmployees *int64
}

var securitiesFields = []string{
	"filer_name", "filer_name_en", "filer_edinet_code", "ticker",
	"accounting_standard", "is_consolidated",
	"fiscal_year_start", "fiscal_year_end",
	"net_sales", "operating_income", "ordinary_income", "net_income",
	"prior_net_sales", "prior_operating_income", "prior_ordinary_income", "prior_net_income",
	"total_assets", "net_assets", "total_liabilities",
	"short_term_loans_payable", "long_term_loans_payable", "bonds_payable",
	"current_portion_long_term_loans_payable",
	"lease_obligations_current", "lease_obligations_noncurrent", "commercial_paper",
	"operating_cash_flow", "investing_cash_flow", "financing_cash_flow",
	"net_assets_per_share", "earnings_per_share", "equity_ratio", "roe",
	"num_employees",
}

func (r *SecuritiesReport) Fields() []string { return append([]string(nil), securitiesFields...) }

func (r *SecuritiesReport) Flat() map[string]any {
	return map[string]any{
		"filer_name":          opt(r.FilerName),
		"filer_name_en":       opt(r.FilerNameEN),
		"filer_edinet_code":   opt(r.FilerEDINETCode),
		"ticker":              opt(r.Ticker),
		"accounting_standard": opt(r.AccountingStandard),
		"is_consolidated":     r.IsConsolidated,
		"fiscal_year_start":   opt(r.FiscalYearStart),
		"fiscal_year_end":     opt(r.FiscalYearEnd),

		"net_sales":        opt(r.NetSales),
		"operating_income": opt(r.OperatingIncome),
		"ordinary_income":  opt(r.OrdinaryIncome),
		"net_income":       opt(r.NetIncome),

		"prior_net_sales":        opt(r.PriorNetSales),
		"prior_operating_income": opt(r.PriorOperatingIncome),
		"prior_ordinary_income":  opt(r.PriorOrdinaryIncome),
		"prior_net_income":       opt(r.PriorNetIncome),

		"total_assets":      opt(r.TotalAssets),
		"net_assets":        opt(r.NetAssets),
		"total_liabilities": opt(r.TotalLiabilities),

		"short_term_loans_payable":                opt(r.ShortTermLoansPayable),
		"long_term_loans_payable":                 opt(r.LongTermLoansPayable),
		"bonds_payable":                           opt(r.BondsPayable),
		"current_portion_long_term_loans_payable": opt(r.CurrentPortionLongTermLoansPayable),
		"lease_obligations_current":               opt(r.LeaseObligationsCurrent),
		"lease_obligations_noncurrent":            opt(r.LeaseObligationsNoncurrent),
		"commercial_paper":                        opt(r.CommercialPaper),

		"operating_cash_flow": opt(r.OperatingCashFlow),
		"investing_cash_flow": opt(r.InvestingCashFlow),
		"financing_cash_flow": opt(r.FinancingCashFlow),

		"net_assets_per_share": opt(r.NetAssetsPerShare),
		"earnings_per_share":   opt(r.EarningsPerShare),
		"equity_ratio":         opt(r.EquityRatio),
		"roe":                  opt(r.ROE),

		"num_employees": opt(r.NumEmployees),
	}
}

func processSecurities(fs *xbrl.FactSet) Report {
	std, warns := xbrl.DetectStandard(fs)
	consolidated := consolidatedFlag(fs)

	res := extract.Extract(fs, securitiesTable, std, consolidated)
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

	r := &SecuritiesReport{
		FilerName:          filerName,
		FilerNameEN:        deiString(fs, "jpdei_cor:FilerNameInEnglishDEI"),
		FilerEDINETCode:    edinetCode,
		Ticker:             tickerFromSecurityCode(deiString(fs, "jpdei_cor:SecurityCodeDEI")),
		AccountingStandard: deiString(fs, "jpdei_cor:AccountingStandardsDEI"),
		IsConsolidated:     consolidated,

		FiscalYearStart: deiDate(fs, "jpdei_cor:CurrentFiscalYearStartDateDEI"),
		FiscalYearEnd:   deiDate(fs, "jpdei_cor:CurrentFiscalYearEndDateDEI"),

		NetSales:        pickInt(v, "net_sales_summary", "net_sales_fs"),
		OperatingIncome: pickInt(v, "operating_income_fs"),
		OrdinaryIncome:  pickInt(v, "ordinary_income_summary", "ordinary_income_fs"),
		NetIncome:       pickInt(v, "net_income_summary", "net_income_fs"),

		PriorNetSales:        pickInt(v, "prior_net_sales_summary", "prior_net_sales_fs"),
		PriorOperatingIncome: pickInt(v, "prior_operating_income_fs"),
		PriorOrdinaryIncome:  pickInt(v, "prior_ordinary_income_summary", "prior_ordinary_income_fs"),
		PriorNetIncome:       pickInt(v, "prior_net_income_summary", "prior_net_income_fs"),

		TotalAssets:      pickInt(v, "total_assets_summary", "total_assets_fs"),
		NetAssets:        pickInt(v, "net_assets_summary", "net_assets_fs"),
		TotalLiabilities: pickInt(v, "total_liabilities_fs"),

		ShortTermLoansPayable:              pickInt(v, "short_term_loans_payable"),
		LongTermLoansPayable:               pickInt(v, "long_term_loans_payable"),
		BondsPayable:                       pickInt(v, "bonds_payable"),
		CurrentPortionLongTermLoansPayable: pickInt(v, "current_portion_long_term_loans_payable"),
		LeaseObligationsCurrent:            pickInt(v, "lease_obligations_current"),
		LeaseObligationsNoncurrent:         pickInt(v, "lease_obligations_noncurrent"),
		CommercialPaper:                    pickInt(v, "commercial_paper"),

		OperatingCashFlow: pickInt(v, "operating_cf_summary", "operating_cf_ifrs_summary", "operating_cf_cfs", "operating_cf_ifrs"),
		InvestingCashFlow: pickInt(v, "investing_cf_summary", "investing_cf_ifrs_summary", "investing_cf_cfs", "investing_cf_ifrs"),
		FinancingCashFlow: pickInt(v, "financing_cf_summary", "financing_cf_ifrs_summary", "financing_cf_cfs", "financing_cf_ifrs"),

		NetAssetsPerShare: pickFloat(v, "net_assets_per_share"),
		EarningsPerShare:  pickFloat(v, "earnings_per_share"),
		EquityRatio:       pickFloat(v, "equity_ratio"),
		ROE:               pickFloat(v, "roe"),

		NumEmployees: pickInt(v, "num_employees"),
	}

	warns = append(warns, validateSecurities(r, DefaultSanityMultiplier)...)
	r.Meta = newMeta(fs, securitiesTable, warns)
	return r
}

// validateSecurities runs the cross-field sanity check. A violation
// annotates the record; it never rejects it.
func validateSecurities(r *SecuritiesReport, multiplier float64) []xbrl.Warning {
	if r.NetSales == nil || r.OperatingIncome == nil {
		return nil
	}
	sales := abs64(*r.NetSales)
	op := abs64(*r.OperatingIncome)
	if sales > 0 && float64(op) > float64(sales)*multiplier {
		return []xbrl.Warning{{
			Code:    xbrl.WarnDataQuality,
			Field:   "operating_income",
			Message: fmt.Sprintf("operating income %d exceeds %.0fx net sales %d", *r.OperatingIncome, multiplier, *r.NetSales),
		}}
	}
	return nil
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

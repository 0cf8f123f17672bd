package report

import (
	"testing"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

func dei(element, value string) xbrl.Fact {
	return xbrl.Fact{ElementID: element, ContextID: "FilingDateInstant", Value: value}
}

func TestProcessSecuritiesSummaryPreferred(t *testing.T) {
	fs := factSet("120",
		dei("jpdei_cor:EDINETCodeDEI", "E04425"),
		dei("jpdei_cor:FilerNameInJapaneseDEI", "日本航空株式会社"),
		dei("jpdei_cor:SecurityCodeDEI", "92010"),
		dei("jpdei_cor:AccountingStandardsDEI", "Japan GAAP"),
		dei("jpdei_cor:CurrentFiscalYearEndDateDEI", "2025-03-31"),
		// Summary and statement both present: summary wins.
		xbrl.Fact{ElementID: "jpcrp_cor:NetSalesSummaryOfBusinessResults", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "1,000,000"},
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "999,999"},
		xbrl.Fact{ElementID: "jppfs_cor:OperatingIncome", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "120,000"},
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "Prior1YearDuration_ConsolidatedMember", Value: "900,000"},
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentYearInstant_ConsolidatedMember", Value: "2,500,000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	sec, ok := r.(*SecuritiesReport)
	if !ok {
		t.Fatalf("got %T", r)
	}
	if sec.NetSales == nil || *sec.NetSales != 1_000_000 {
		t.Errorf("net_sales = %v, want summary value 1000000", sec.NetSales)
	}
	if sec.PriorNetSales == nil || *sec.PriorNetSales != 900_000 {
		t.Errorf("prior_net_sales = %v", sec.PriorNetSales)
	}
	if sec.TotalAssets == nil || *sec.TotalAssets != 2_500_000 {
		t.Errorf("total_assets = %v", sec.TotalAssets)
	}
	if sec.Ticker == nil || *sec.Ticker != "9201.T" {
		t.Errorf("ticker = %v", sec.Ticker)
	}
	if sec.FiscalYearEnd == nil {
		t.Error("fiscal_year_end missing")
	}
	for _, w := range sec.Warnings() {
		if w.Code == xbrl.WarnDataQuality {
			t.Errorf("unexpected data-quality warning: %v", w)
		}
	}
}

func TestProcessSecuritiesCashFlowTiers(t *testing.T) {
	// Only the IFRS statement tier is present; the chain must reach it.
	fs := factSet("120",
		dei("jpdei_cor:AccountingStandardsDEI", "IFRS"),
		xbrl.Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "500,000"},
		xbrl.Fact{ElementID: "jpigp_cor:NetCashProvidedByUsedInOperatingActivitiesIFRS", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "80,000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	sec := r.(*SecuritiesReport)
	if sec.NetSales == nil || *sec.NetSales != 500_000 {
		t.Errorf("net_sales via IFRS fallback = %v", sec.NetSales)
	}
	if sec.OperatingCashFlow == nil || *sec.OperatingCashFlow != 80_000 {
		t.Errorf("operating_cash_flow via IFRS tier = %v", sec.OperatingCashFlow)
	}
}

func TestProcessSecuritiesSanityWarning(t *testing.T) {
	fs := factSet("120",
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "1000"},
		xbrl.Fact{ElementID: "jppfs_cor:OperatingIncome", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "5001"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	found := false
	for _, w := range r.Warnings() {
		if w.Code == xbrl.WarnDataQuality && w.Field == "operating_income" {
			found = true
		}
	}
	if !found {
		t.Errorf("impossible ratio should warn, got %v", r.Warnings())
	}
	// The record still carries both values.
	sec := r.(*SecuritiesReport)
	if sec.OperatingIncome == nil || *sec.OperatingIncome != 5001 {
		t.Errorf("operating_income = %v, value must survive the warning", sec.OperatingIncome)
	}
}

func TestProcessSecuritiesSanityBoundary(t *testing.T) {
	// Exactly at the multiplier is allowed; losses count by magnitude.
	fs := factSet("120",
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "1000"},
		xbrl.Fact{ElementID: "jppfs_cor:OperatingIncome", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "-5000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	for _, w := range r.Warnings() {
		if w.Code == xbrl.WarnDataQuality {
			t.Errorf("5x loss is within bounds, got %v", w)
		}
	}
}

func TestProcessSecuritiesCategorizesElements(t *testing.T) {
	fs := factSet("120",
		dei("jpdei_cor:EDINETCodeDEI", "E04425"),
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "1000"},
		xbrl.Fact{ElementID: "jpcrp_cor:BusinessRisksTextBlock", ContextID: "FilingDateInstant", Value: "<p>リスク情報</p>"},
		xbrl.Fact{ElementID: "jpcrp_cor:SomethingUnmapped", ContextID: "CurrentYearInstant", Value: "42"},
	)
	r, _ := Dispatch(fs)
	sec := r.(*SecuritiesReport)
	if len(sec.RawFields()) != 4 {
		t.Errorf("raw_fields has %d entries, want all 4", len(sec.RawFields()))
	}
	if _, ok := sec.TextBlocks()["BusinessRisksTextBlock"]; !ok {
		t.Errorf("text block missing: %v", sec.TextBlocks())
	}
	if _, ok := sec.UnmappedFields()["jpcrp_cor:SomethingUnmapped"]; !ok {
		t.Errorf("unmapped element missing: %v", sec.UnmappedFields())
	}
	if _, ok := sec.UnmappedFields()["jppfs_cor:NetSales"]; ok {
		t.Error("mapped element must not appear in unmapped_fields")
	}
}

func TestProcessSemiAnnualFund(t *testing.T) {
	fs := factSet("160",
		dei("jpdei_cor:EDINETCodeDEI", "E12345"),
		dei("jpdei_cor:FundCodeDEI", "G01234"),
		dei("jpdei_cor:FundNameInJapaneseDEI", "テスト投資信託"),
		dei("jpdei_cor:CurrentPeriodEndDateDEI", "2025-06-30"),
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentYearInstant", Value: "3,000,000"},
		xbrl.Fact{ElementID: "jppfs_cor:NetAssets", ContextID: "CurrentYearInstant", Value: "2,800,000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	sa := r.(*SemiAnnualReport)
	if !sa.IsFund() {
		t.Error("fund filing should classify as fund")
	}
	if sa.TotalAssets == nil || *sa.TotalAssets != 3_000_000 {
		t.Errorf("total_assets = %v", sa.TotalAssets)
	}
	if sa.FilingDate == nil {
		t.Error("filing date should fall back to period end")
	}
}

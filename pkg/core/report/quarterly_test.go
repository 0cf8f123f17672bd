package report

import (
	"testing"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

func TestDeriveQuarterNumber(t *testing.T) {
	// March fiscal year end, the common case in Japan.
	fyEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		filing time.Time
		want   int // 0 means nil
	}{
		{time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), 1},  // Q1 filed in August
		{time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC), 2}, // Q2 filed in November
		{time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 3},  // Q3 filed in February
		{time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC), 0},  // annual filing timing
		{time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), 0},   // too early for Q1
	}
	for _, c := range cases {
		got := deriveQuarterNumber(c.filing, fyEnd)
		switch {
		case c.want == 0 && got != nil:
			t.Errorf("filing %s: got Q%d, want none", c.filing.Format("2006-01-02"), *got)
		case c.want != 0 && (got == nil || *got != c.want):
			t.Errorf("filing %s: got %v, want Q%d", c.filing.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestProcessQuarterlyYTD(t *testing.T) {
	fs := factSet("140",
		dei("jpdei_cor:EDINETCodeDEI", "E04425"),
		dei("jpdei_cor:FilerNameInJapaneseDEI", "テスト株式会社"),
		dei("jpdei_cor:CurrentFiscalYearEndDateDEI", "2026-03-31"),
		xbrl.Fact{ElementID: "jpcrp_cor:FilingDateCoverPage", ContextID: "FilingDateInstant", Value: "2025-11-12"},
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYTDDuration_ConsolidatedMember", Value: "600,000"},
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "Prior1YTDDuration_ConsolidatedMember", Value: "550,000"},
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentQuarterInstant_ConsolidatedMember", Value: "2,000,000"},
	)
	r, err := Dispatch(fs)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	q := r.(*QuarterlyReport)
	if q.RevenueYTD == nil || *q.RevenueYTD != 600_000 {
		t.Errorf("revenue_ytd = %v", q.RevenueYTD)
	}
	if q.PriorRevenueYTD == nil || *q.PriorRevenueYTD != 550_000 {
		t.Errorf("prior_revenue_ytd = %v", q.PriorRevenueYTD)
	}
	if q.TotalAssets == nil || *q.TotalAssets != 2_000_000 {
		t.Errorf("total_assets = %v", q.TotalAssets)
	}
	if q.QuarterNumber == nil || *q.QuarterNumber != 2 {
		t.Errorf("quarter_number = %v, want 2", q.QuarterNumber)
	}
}

func TestProcessExtraordinaryEventClassification(t *testing.T) {
	cases := []struct {
		reason string
		want   string
	}{
		{"吸収合併契約の締結について", "merger"},
		{"信託契約の終了に伴う繰上償還", "trust_termination"},
		{"運用方針の変更について", "trust_change"},
		{"その他の事由", "other"},
	}
	for _, c := range cases {
		fs := factSet("180",
			dei("jpdei_cor:FilerNameInJapaneseDEI", "テスト株式会社"),
			xbrl.Fact{ElementID: "jpcrp-esr_cor:ReasonForFilingTextBlock", ContextID: "FilingDateInstant", Value: c.reason},
		)
		r, err := Dispatch(fs)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		er := r.(*ExtraordinaryReport)
		if er.EventType != c.want {
			t.Errorf("reason %q classified %q, want %q", c.reason, er.EventType, c.want)
		}
	}
}

func TestProcessExtraordinaryNamespaceCoalesce(t *testing.T) {
	// Fund filing: only jpsps-esr_cor cover page elements present.
	fs := factSet("180",
		dei("jpdei_cor:FundCodeDEI", "G01234"),
		xbrl.Fact{ElementID: "jpsps-esr_cor:DocumentTitleCoverPage", ContextID: "FilingDateInstant", Value: "臨時報告書"},
		xbrl.Fact{ElementID: "jpsps-esr_cor:FilingDateCoverPage", ContextID: "FilingDateInstant", Value: "2025-08-01"},
		xbrl.Fact{ElementID: "jpsps-esr_cor:IssuerNameCoverPage", ContextID: "FilingDateInstant", Value: "テストファンド"},
	)
	r, _ := Dispatch(fs)
	er := r.(*ExtraordinaryReport)
	if !er.IsFund() {
		t.Error("fund code should classify as fund")
	}
	if er.DocumentTitle == nil || *er.DocumentTitle != "臨時報告書" {
		t.Errorf("document_title = %v", er.DocumentTitle)
	}
	if er.FilerName == nil || *er.FilerName != "テストファンド" {
		t.Errorf("filer_name should fall back to issuer name, got %v", er.FilerName)
	}
	if er.FilingDate == nil {
		t.Error("filing_date missing")
	}
	if er.EventType != "unknown" {
		t.Errorf("no reason text should classify unknown, got %q", er.EventType)
	}
}

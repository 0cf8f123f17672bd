package xbrl

import "testing"

func TestNormalizeTagCollapsesStandardVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		// Japan GAAP and IFRS revenue variants meet at one key
		{"jpcrp_cor:NetSalesSummaryOfBusinessResults", "revenue"},
		{"jpcrp_cor:RevenueIFRSSummaryOfBusinessResults", "revenue"},
		{"jppfs_cor:NetSales", "revenue"},
		{"jpigp_cor:RevenueIFRS", "revenue"},

		// Operating income
		{"jppfs_cor:OperatingIncome", "operatingincome"},
		{"jpigp_cor:OperatingProfitLossIFRS", "operatingincome"},
		{"jpcrp_cor:OperatingIncomeLossSummaryOfBusinessResults", "operatingincome"},

		// Net income
		{"jppfs_cor:ProfitLoss", "netincome"},
		{"jpcrp_cor:ProfitLossAttributableToOwnersOfParentSummaryOfBusinessResults", "netincome"},

		// Balance sheet
		{"jppfs_cor:Assets", "totalassets"},
		{"jpcrp_cor:TotalAssetsSummaryOfBusinessResults", "totalassets"},
		{"jpigp_cor:EquityIFRS", "netassets"},
		{"jppfs_cor:NetAssets", "netassets"},

		// DEI
		{"jpdei_cor:EDINETCodeDEI", "edinetcode"},
	}
	for _, c := range cases {
		if got := NormalizeTag(c.raw); got != c.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeTagIsTotal(t *testing.T) {
	// Unrecognized tags pass through lower-cased, never fail.
	if got := NormalizeTag("jpcrp_cor:SomethingNobodyMapped"); got != "somethingnobodymapped" {
		t.Errorf("unexpected passthrough: %q", got)
	}
	if got := NormalizeTag(""); got != "" {
		t.Errorf("empty tag should stay empty, got %q", got)
	}
	if got := NormalizeTag("NoNamespace"); got != "nonamespace" {
		t.Errorf("namespace-less tag: got %q", got)
	}
}

func TestNormalizeTagDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := NormalizeTag("jpigp_cor:RevenueIFRS"); got != "revenue" {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}

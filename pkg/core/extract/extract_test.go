package extract

import (
	"testing"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

func newFactSet(facts ...xbrl.Fact) *xbrl.FactSet {
	return xbrl.NewFactSet(xbrl.Meta{DocID: "S100TEST1", DocTypeCode: "120"}, nil, facts, nil)
}

func TestExtractPeriodTieBreak(t *testing.T) {
	// Same tag twice: prior declared first, current second. The
	// current-period fact must win regardless of declaration order.
	fs := newFactSet(
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "Prior1YearDuration_ConsolidatedMember", Value: "900"},
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "1000"},
	)
	table := []FieldMapping{{
		Field: "net_sales", ElementID: "jppfs_cor:NetSales",
		Rule: PeriodQualified, Period: "CurrentYearDuration", Kind: Int,
	}}
	res := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	if got := res.Values["net_sales"]; got != int64(1000) {
		t.Errorf("net_sales = %v, want 1000", got)
	}
}

func TestExtractScalarAmbiguityWarns(t *testing.T) {
	fs := newFactSet(
		xbrl.Fact{ElementID: "jpcrp_cor:NumberOfEmployees", ContextID: "CurrentYearInstant", Value: "500"},
		xbrl.Fact{ElementID: "jpcrp_cor:NumberOfEmployees", ContextID: "CurrentYearInstant_NonConsolidatedMember", Value: "300"},
	)
	table := []FieldMapping{{Field: "num_employees", ElementID: "jpcrp_cor:NumberOfEmployees", Rule: Scalar, Kind: Int}}
	res := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	if got := res.Values["num_employees"]; got != int64(500) {
		t.Errorf("kept %v, want first match 500", got)
	}
	found := false
	for _, w := range res.Warnings {
		if w.Code == xbrl.WarnAmbiguousMapping && w.Field == "num_employees" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ambiguous_mapping warning, got %v", res.Warnings)
	}
}

func TestExtractScalarPrefersLoneCurrent(t *testing.T) {
	// Two matches but only one is current: disambiguated, no warning.
	fs := newFactSet(
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "Prior1YearInstant", Value: "400"},
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentYearInstant", Value: "500"},
	)
	table := []FieldMapping{{Field: "total_assets", ElementID: "jppfs_cor:Assets", Rule: Scalar, Kind: Int}}
	res := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	if got := res.Values["total_assets"]; got != int64(500) {
		t.Errorf("total_assets = %v, want 500", got)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestExtractNumericFailureYieldsAbsent(t *testing.T) {
	fs := newFactSet(
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "not-a-number"},
	)
	table := []FieldMapping{{Field: "net_sales", ElementID: "jppfs_cor:NetSales", Rule: Scalar, Kind: Int}}
	res := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	v, present := res.Values["net_sales"]
	if !present {
		t.Fatal("field key must exist even when extraction fails")
	}
	if v != nil {
		t.Errorf("net_sales = %v, want explicit absent (nil)", v)
	}
	if len(res.Warnings) == 0 {
		t.Error("parse failure should record a warning")
	}
}

func TestExtractIFRSFallback(t *testing.T) {
	fs := newFactSet(
		xbrl.Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "2,500"},
	)
	table := []FieldMapping{{
		Field: "net_sales", ElementID: "jppfs_cor:NetSales", IFRSElementID: "jpigp_cor:RevenueIFRS",
		Rule: PeriodQualified, Period: "CurrentYearDuration", Kind: Int,
	}}
	res := Extract(fs, table, xbrl.StandardIFRS, true)
	if got := res.Values["net_sales"]; got != int64(2500) {
		t.Errorf("net_sales = %v, want 2500 via IFRS fallback", got)
	}
}

func TestExtractStandardFiltering(t *testing.T) {
	fs := newFactSet(
		xbrl.Fact{ElementID: "jppfs_cor:OrdinaryIncome", ContextID: "CurrentYearDuration", Value: "100"},
	)
	table := []FieldMapping{{
		Field: "ordinary_income", ElementID: "jppfs_cor:OrdinaryIncome",
		Standards: []xbrl.Standard{xbrl.StandardJapanGAAP}, Rule: Scalar, Kind: Int,
	}}

	res := Extract(fs, table, xbrl.StandardIFRS, true)
	if v := res.Values["ordinary_income"]; v != nil {
		t.Errorf("JGAAP-only mapping applied under IFRS: %v", v)
	}

	// Unknown standard still applies every mapping.
	res = Extract(fs, table, xbrl.StandardUnknown, true)
	if v := res.Values["ordinary_income"]; v != int64(100) {
		t.Errorf("Unknown standard should not filter, got %v", v)
	}
}

func TestExtractRepeatingGroupOrder(t *testing.T) {
	// Contexts declared A, C, B must come back A, C, B.
	auth := "jpcrp-sbr_cor:TotalAmountOfAcquisitionAuthorizedByBoardOfDirectorsMeeting"
	exec := "jpcrp-sbr_cor:TotalAmountOfSharesAcquiredByResolutionOfBoardOfDirectorsMeeting"
	fs := newFactSet(
		xbrl.Fact{ElementID: auth, ContextID: "BoardMeetingA", Value: "100"},
		xbrl.Fact{ElementID: auth, ContextID: "BoardMeetingC", Value: "300"},
		xbrl.Fact{ElementID: exec, ContextID: "BoardMeetingA", Value: "90"},
		xbrl.Fact{ElementID: auth, ContextID: "BoardMeetingB", Value: "200"},
	)
	table := []FieldMapping{{
		Field: "board_meetings", Rule: Repeating, ContextKey: "BoardMeeting",
		Members: []FieldMapping{
			{Field: "authorized_amount", ElementID: auth, Kind: Int},
			{Field: "acquired_amount", ElementID: exec, Kind: Int},
		},
	}}
	res := Extract(fs, table, xbrl.StandardUnknown, true)
	groups, ok := res.Values["board_meetings"].([]Group)
	if !ok {
		t.Fatalf("board_meetings has type %T", res.Values["board_meetings"])
	}
	wantOrder := []string{"BoardMeetingA", "BoardMeetingC", "BoardMeetingB"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, ctx := range wantOrder {
		if groups[i].ContextID != ctx {
			t.Errorf("group %d = %s, want %s", i, groups[i].ContextID, ctx)
		}
	}
	if groups[0].Fields["authorized_amount"] != int64(100) || groups[0].Fields["acquired_amount"] != int64(90) {
		t.Errorf("group A fields wrong: %v", groups[0].Fields)
	}
	if groups[2].Fields["acquired_amount"] != nil {
		t.Errorf("missing member should be explicit nil, got %v", groups[2].Fields["acquired_amount"])
	}
}

func TestExtractIdempotent(t *testing.T) {
	fs := newFactSet(
		xbrl.Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration_ConsolidatedMember", Value: "1000"},
		xbrl.Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentYearInstant_ConsolidatedMember", Value: "5000"},
	)
	table := []FieldMapping{
		{Field: "net_sales", ElementID: "jppfs_cor:NetSales", Rule: PeriodQualified, Period: "CurrentYearDuration", Kind: Int},
		{Field: "total_assets", ElementID: "jppfs_cor:Assets", Rule: PeriodQualified, Period: "CurrentYearInstant", Kind: Int},
	}
	a := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	b := Extract(fs, table, xbrl.StandardJapanGAAP, true)
	for k, v := range a.Values {
		if b.Values[k] != v {
			t.Errorf("field %s differs across runs: %v vs %v", k, v, b.Values[k])
		}
	}
}

func TestContextPatternsPriority(t *testing.T) {
	got := ContextPatterns(true, "CurrentYearDuration")
	want := []string{
		"CurrentYearDuration_ConsolidatedMember",
		"CurrentYearDuration_NonConsolidatedMember",
		"CurrentYearDuration",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %d = %s, want %s", i, got[i], want[i])
		}
	}
	got = ContextPatterns(false, "CurrentYearDuration")
	if got[0] != "CurrentYearDuration_NonConsolidatedMember" {
		t.Errorf("non-consolidated filer should prefer NonConsolidatedMember, got %s", got[0])
	}
}

package report

import (
	"fmt"
	"testing"

	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

func factSet(code string, facts ...xbrl.Fact) *xbrl.FactSet {
	return xbrl.NewFactSet(xbrl.Meta{DocID: "S100TEST1", DocTypeCode: code}, []string{"test.csv"}, facts, nil)
}

func TestDispatchFatalErrors(t *testing.T) {
	if _, err := Dispatch(nil); err != ErrEmptyFactSet {
		t.Errorf("nil fact set: got %v", err)
	}
	if _, err := Dispatch(factSet("120")); err != ErrEmptyFactSet {
		t.Errorf("empty fact set: got %v", err)
	}
	fs := xbrl.NewFactSet(xbrl.Meta{DocID: "S100TEST1"}, nil, []xbrl.Fact{
		{ElementID: "jpdei_cor:EDINETCodeDEI", ContextID: "FilingDateInstant", Value: "E12345"},
	}, nil)
	if _, err := Dispatch(fs); err != ErrMissingDocType {
		t.Errorf("missing doc type: got %v", err)
	}
}

func TestDispatchRoutesKnownCodes(t *testing.T) {
	fact := xbrl.Fact{ElementID: "jpdei_cor:EDINETCodeDEI", ContextID: "FilingDateInstant", Value: "E12345"}
	cases := []struct {
		code string
		want string
	}{
		{"120", "*report.SecuritiesReport"},
		{"130", "*report.SecuritiesReport"},
		{"140", "*report.QuarterlyReport"},
		{"150", "*report.QuarterlyReport"},
		{"160", "*report.SemiAnnualReport"},
		{"170", "*report.SemiAnnualReport"},
		{"180", "*report.ExtraordinaryReport"},
		{"190", "*report.ExtraordinaryReport"},
		{"220", "*report.TreasuryStockReport"},
		{"230", "*report.TreasuryStockReport"},
		{"350", "*report.LargeHoldingReport"},
		{"360", "*report.LargeHoldingReport"},
		{"370", "*report.LargeHoldingReport"},
		{"380", "*report.LargeHoldingReport"},
		{"030", "*report.RawReport"},
		{"999", "*report.RawReport"},
	}
	for _, c := range cases {
		r, err := Dispatch(factSet(c.code, fact))
		if err != nil {
			t.Fatalf("code %s: %v", c.code, err)
		}
		if got := fmt.Sprintf("%T", r); got != c.want {
			t.Errorf("code %s routed to %s, want %s", c.code, got, c.want)
		}
		if r.DocTypeCode() != c.code {
			t.Errorf("code %s: report carries %s", c.code, r.DocTypeCode())
		}
	}
}

// Dispatch must be total: any code yields a report, and the raw
// fallback loses no facts.
func TestDispatchRawFallbackCompleteness(t *testing.T) {
	var facts []xbrl.Fact
	for i := 0; i < 50; i++ {
		facts = append(facts, xbrl.Fact{
			ElementID: fmt.Sprintf("jpcrp_cor:Element%02d", i),
			ContextID: "CurrentYearInstant",
			Value:     fmt.Sprintf("value-%02d", i),
		})
	}
	r, err := Dispatch(factSet("777", facts...))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	raw, ok := r.(*RawReport)
	if !ok {
		t.Fatalf("got %T, want *RawReport", r)
	}
	if len(raw.Values) != 50 {
		t.Errorf("raw report carries %d tags, want 50", len(raw.Values))
	}
	flat := raw.Flat()
	for i := 0; i < 50; i++ {
		tag := xbrl.NormalizeTag(fmt.Sprintf("jpcrp_cor:Element%02d", i))
		if _, present := flat[tag]; !present {
			t.Errorf("tag %s missing from flat export", tag)
		}
	}
}

// Every report type exports exactly its declared field set.
func TestFlatMatchesFields(t *testing.T) {
	fact := xbrl.Fact{ElementID: "jpdei_cor:EDINETCodeDEI", ContextID: "FilingDateInstant", Value: "E12345"}
	for _, code := range []string{"120", "140", "160", "180", "220", "350"} {
		r, err := Dispatch(factSet(code, fact))
		if err != nil {
			t.Fatalf("code %s: %v", code, err)
		}
		flat := r.Flat()
		for _, f := range r.Fields() {
			if _, present := flat[f]; !present {
				t.Errorf("code %s: field %s declared but absent from Flat()", code, f)
			}
		}
		if len(flat) != len(r.Fields()) {
			t.Errorf("code %s: Flat has %d keys, Fields declares %d", code, len(flat), len(r.Fields()))
		}
	}
}

func TestLookupDocType(t *testing.T) {
	dt, ok := LookupDocType("120")
	if !ok || dt.NameEN != "Securities Report" {
		t.Errorf("got (%+v, %v)", dt, ok)
	}
	if _, ok := LookupDocType("999"); ok {
		t.Error("unknown code should not resolve")
	}
}

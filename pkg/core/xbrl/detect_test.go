package xbrl

import "testing"

func factSetOf(docType string, facts ...Fact) *FactSet {
	return NewFactSet(Meta{DocID: "S100TEST1", DocTypeCode: docType}, []string{"jpcrp.csv"}, facts, nil)
}

func TestDetectStandardRoundTrip(t *testing.T) {
	ifrsOnly := factSetOf("120",
		Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration", Value: "1000"},
		Fact{ElementID: "jpigp_cor:AssetsIFRS", ContextID: "CurrentYearInstant", Value: "5000"},
	)
	if std, _ := DetectStandard(ifrsOnly); std != StandardIFRS {
		t.Errorf("pure IFRS fact set detected as %v", std)
	}

	jgaapOnly := factSetOf("120",
		Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "1000"},
		Fact{ElementID: "jppfs_cor:Assets", ContextID: "CurrentYearInstant", Value: "5000"},
	)
	if std, _ := DetectStandard(jgaapOnly); std != StandardJapanGAAP {
		t.Errorf("pure Japan GAAP fact set detected as %v", std)
	}

	neither := factSetOf("120",
		Fact{ElementID: "jpdei_cor:EDINETCodeDEI", ContextID: "FilingDateInstant", Value: "E12345"},
	)
	if std, _ := DetectStandard(neither); std != StandardUnknown {
		t.Errorf("markerless fact set detected as %v", std)
	}
}

func TestDetectStandardMixedPrefersDeclaration(t *testing.T) {
	mixed := factSetOf("120",
		Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "1000"},
		Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration", Value: "1000"},
		Fact{ElementID: "jpdei_cor:AccountingStandardsDEI", ContextID: "FilingDateInstant", Value: "IFRS"},
	)
	std, warns := DetectStandard(mixed)
	if std != StandardIFRS {
		t.Errorf("mixed filing declaring IFRS detected as %v", std)
	}
	if len(warns) != 1 || warns[0].Code != WarnStandardAmbiguity {
		t.Errorf("expected one standard_ambiguity warning, got %v", warns)
	}
}

func TestDetectStandardMixedDefaultsToJGAAP(t *testing.T) {
	mixed := factSetOf("120",
		Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "1000"},
		Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration", Value: "1000"},
	)
	std, warns := DetectStandard(mixed)
	if std != StandardJapanGAAP {
		t.Errorf("mixed filing without declaration detected as %v", std)
	}
	if len(warns) != 1 {
		t.Errorf("expected ambiguity warning, got %v", warns)
	}
}

func TestDetectStandardDeterministic(t *testing.T) {
	fs := factSetOf("120",
		Fact{ElementID: "jpigp_cor:RevenueIFRS", ContextID: "CurrentYearDuration", Value: "1"},
		Fact{ElementID: "jppfs_cor:NetSales", ContextID: "CurrentYearDuration", Value: "1"},
		Fact{ElementID: "jpdei_cor:AccountingStandardsDEI", ContextID: "FilingDateInstant", Value: "Japan GAAP"},
	)
	first, _ := DetectStandard(fs)
	for i := 0; i < 5; i++ {
		if got, _ := DetectStandard(fs); got != first {
			t.Fatalf("detection flapped: %v then %v", first, got)
		}
	}
}

func TestDetectStandardDeclarationOnlyFallback(t *testing.T) {
	fs := factSetOf("120",
		Fact{ElementID: "jpdei_cor:AccountingStandardsDEI", ContextID: "FilingDateInstant", Value: "IFRS"},
	)
	if std, _ := DetectStandard(fs); std != StandardIFRS {
		t.Errorf("declaration-only filing detected as %v", std)
	}
}

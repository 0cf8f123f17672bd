package xbrl

import "testing"

func TestFactFromRow(t *testing.T) {
	row := []string{
		"jppfs_cor:NetSales", "売上高", "CurrentYearDuration_ConsolidatedMember",
		"当期", "連結", "期間", "JPY", "円", "1,000,000",
	}
	f, err := FactFromRow(row)
	if err != nil {
		t.Fatalf("FactFromRow: %v", err)
	}
	if f.ElementID != "jppfs_cor:NetSales" || f.Value != "1,000,000" {
		t.Errorf("unexpected fact: %+v", f)
	}
	if !f.IsCurrentPeriod() {
		t.Error("当期 row should be current period")
	}
}

func TestFactFromRowErrors(t *testing.T) {
	if _, err := FactFromRow([]string{"jppfs_cor:NetSales", "売上高"}); err == nil {
		t.Error("short row must error")
	}
	row := []string{"", "売上高", "ctx", "当期", "連結", "期間", "JPY", "円", "1"}
	if _, err := FactFromRow(row); err == nil {
		t.Error("empty element ID must error")
	}
}

func TestCleanCellStripsEncodingDebris(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\uFEFFjpdei_cor:EDINETCodeDEI", "jpdei_cor:EDINETCodeDEI"},
		{"jpp\uFEFFfs_cor:NetSales", "jppfs_cor:NetSales"},
		{"\x00値\x00", "値"},
		{`"quoted"`, "quoted"},
		{"  spaced  ", "spaced"},
		{"a\x1fb", "ab"},
	}
	for _, c := range cases {
		if got := cleanCell(c.in); got != c.want {
			t.Errorf("cleanCell(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

package archive

import (
	"archive/zip"
	"bytes"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

const sampleTSV = "要素ID\t項目名\tコンテキストID\t相対年度\t連結・個別\t期間・時点\tユニットID\t単位\t値\n" +
	"jppfs_cor:NetSales\t売上高\tCurrentYearDuration_ConsolidatedMember\t当期\t連結\t期間\tJPY\t円\t1,000,000\n"

func encodeUTF16LE(t *testing.T, s string) []byte {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		t.Fatalf("utf-16le encode: %v", err)
	}
	return b
}

func buildZip(t *testing.T, members map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestExtractCSVFilesUTF16(t *testing.T) {
	zipBytes := buildZip(t, map[string][]byte{
		"XBRL_TO_CSV/jpcrp030000-asr-001_E00000-000.csv": encodeUTF16LE(t, sampleTSV),
	})
	files, err := ExtractCSVFiles(zipBytes)
	if err != nil {
		t.Fatalf("ExtractCSVFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Filename != "jpcrp030000-asr-001_E00000-000.csv" {
		t.Errorf("filename = %s", files[0].Filename)
	}
	if len(files[0].Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(files[0].Rows))
	}
	row := files[0].Rows[1]
	if row[0] != "jppfs_cor:NetSales" || row[8] != "1,000,000" {
		t.Errorf("decoded row wrong: %v", row)
	}
}

func TestExtractCSVFilesShiftJIS(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(sampleTSV))
	if err != nil {
		t.Fatalf("shift-jis encode: %v", err)
	}
	zipBytes := buildZip(t, map[string][]byte{
		"XBRL_TO_CSV/jpcrp030000-asr-001_E00000-000.csv": sjis,
	})
	files, err := ExtractCSVFiles(zipBytes)
	if err != nil {
		t.Fatalf("ExtractCSVFiles: %v", err)
	}
	if len(files) != 1 || files[0].Rows[1][0] != "jppfs_cor:NetSales" {
		t.Fatalf("shift-jis member not decoded: %+v", files)
	}
}

func TestExtractCSVFilesSkipsIrrelevantMembers(t *testing.T) {
	payload := encodeUTF16LE(t, sampleTSV)
	zipBytes := buildZip(t, map[string][]byte{
		"XBRL_TO_CSV/jpcrp030000-asr-001_E00000-000.csv": payload,
		"XBRL_TO_CSV/jpaud-aar-cn-001_E00000-000.csv":    payload,
		"__MACOSX/._jpcrp030000-asr-001.csv":             {0, 1, 2},
		"XBRL_TO_CSV/manifest.xml":                       []byte("<xml/>"),
	})
	files, err := ExtractCSVFiles(zipBytes)
	if err != nil {
		t.Fatalf("ExtractCSVFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("auditor/metadata members should be skipped, got %d files", len(files))
	}
}

func TestExtractCSVFilesBadZip(t *testing.T) {
	if _, err := ExtractCSVFiles([]byte("not a zip")); err == nil {
		t.Error("corrupt archive should error")
	}
}

func TestExtractCSVFilesUndecodableMemberSkipped(t *testing.T) {
	zipBytes := buildZip(t, map[string][]byte{
		"XBRL_TO_CSV/jpcrp030000-asr-001_E00000-000.csv": encodeUTF16LE(t, sampleTSV),
		"XBRL_TO_CSV/jpcrp030000-asr-002_E00000-000.csv": bytes.Repeat([]byte{0xff, 0xfe, 0x00}, 50),
	})
	files, err := ExtractCSVFiles(zipBytes)
	if err != nil {
		t.Fatalf("ExtractCSVFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("undecodable member should degrade, not abort; got %d files", len(files))
	}
}

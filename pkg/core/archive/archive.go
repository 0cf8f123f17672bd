// Package archive unpacks EDINET document ZIPs into decoded CSV rows.
// EDINET ships XBRL-to-CSV conversions as tab-separated files in a mix
// of encodings (UTF-16LE with BOM is typical, Shift-JIS appears in
// older filings); this package hides all of that from the parsing core.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// CSVFile is one decoded CSV member of a document ZIP.
type CSVFile struct {
	Filename string
	Rows     [][]string
}

// decoders tried in order until one produces usable text.
var decoders = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)},
	{"utf-8", unicode.UTF8BOM},
	{"shift-jis", japanese.ShiftJIS},
	{"euc-jp", japanese.EUCJP},
}

// ExtractCSVFiles reads every relevant CSV from a document ZIP.
// Auditor report files (jpaud*) and macOS metadata are skipped, as are
// individual members that fail to decode — a bad member degrades the
// extraction, it does not abort it. Only an unreadable ZIP errors.
func ExtractCSVFiles(zipBytes []byte) ([]CSVFile, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("invalid document archive: %w", err)
	}

	var files []CSVFile
	for _, member := range zr.File {
		name := member.Name
		if !strings.HasSuffix(name, ".csv") || strings.Contains(name, "__MACOSX") {
			continue
		}
		base := path.Base(name)
		if strings.HasPrefix(base, "jpaud") {
			continue
		}
		rows, err := readMember(member)
		if err != nil {
			log.Printf("archive: skipping %s: %v", name, err)
			continue
		}
		if len(rows) > 0 {
			files = append(files, CSVFile{Filename: base, Rows: rows})
		}
	}
	return files, nil
}

func readMember(member *zip.File) ([][]string, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	content, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return parseTSV(content)
}

// decode tries each known encoding and accepts the first result that
// round-trips without replacement runes dominating the text.
func decode(raw []byte) (string, error) {
	for _, d := range decoders {
		decoded, err := d.enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		s := strings.TrimPrefix(string(decoded), "\uFEFF")
		if usable(s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("no known encoding decodes this member")
}

// usable rejects decodes where replacement characters or NULs indicate
// the wrong charset was guessed.
func usable(s string) bool {
	if s == "" {
		return false
	}
	var bad int
	for _, r := range s {
		if r == '�' || r == 0 {
			bad++
		}
	}
	return bad*20 < len(s)+1
}

// minColumns matches the EDINET XBRL-to-CSV layout: element ID through
// value, nine columns. Narrower rows cannot carry a fact.
const minColumns = 9

// parseTSV parses tab-separated content, keeping only rows wide enough
// to carry a fact.
func parseTSV(content string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One broken line should not lose the rest of the file.
			continue
		}
		if len(rec) >= minColumns {
			rows = append(rows, rec)
		}
	}
	return rows, nil
}

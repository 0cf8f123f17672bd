package xbrl

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder strings EDINET uses for "no value".
var nullMarkers = map[string]bool{
	"":    true,
	"－":   true,
	"―":   true,
	"-":   true,
	"—":   true,
	"N/A": true,
	"n/a": true,
}

// IsNullValue reports whether a raw cell value is a null placeholder.
func IsNullValue(s string) bool {
	return nullMarkers[strings.TrimSpace(s)]
}

// ParseInt parses an integer value, tolerating Japanese formatting:
// ASCII and full-width commas, decimal notation, and null markers.
// The second return is false when no usable number is present.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if IsNullValue(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	// Values occasionally arrive in decimal notation.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// ParseDecimal parses a decimal value (per-share figures, ratios).
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsNullValue(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParsePercentage parses a ratio value. EDINET stores ratios as
// decimals (0.0967 = 9.67%); the value is returned as-is, with any
// stray percent sign stripped.
func ParsePercentage(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	return ParseDecimal(s)
}

// ParseDate parses dates in the formats EDINET emits:
// YYYY-MM-DD, YYYY/MM/DD, and the Japanese YYYY年MM月DD日.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if IsNullValue(s) {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	cleaned := strings.NewReplacer("年", "-", "月", "-", "日", "").Replace(s)
	for _, layout := range []string{"2006-1-2", "2006-01-02"} {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScaleValue multiplies a parsed number by its declared unit scale
// (千円 = thousands of yen, 百万円 = millions, 十億円 = billions).
func ScaleValue(v float64, unitScale string) float64 {
	switch {
	case strings.Contains(unitScale, "十億"):
		return v * 1_000_000_000
	case strings.Contains(unitScale, "百万"):
		return v * 1_000_000
	case strings.Contains(unitScale, "千"):
		return v * 1_000
	}
	return v
}

package xbrl

import "strings"

// Standard is the financial-reporting framework a filing follows.
type Standard int

const (
	StandardUnknown Standard = iota
	StandardJapanGAAP
	StandardIFRS
)

func (s Standard) String() string {
	switch s {
	case StandardJapanGAAP:
		return "JapanGAAP"
	case StandardIFRS:
		return "IFRS"
	default:
		return "Unknown"
	}
}

// Element carrying the filer's own declaration of its accounting
// standard, e.g. "Japan GAAP" or "IFRS".
const accountingStandardsDEI = "jpdei_cor:AccountingStandardsDEI"

// DetectStandard decides whether a fact set follows the Japan GAAP or
// IFRS taxonomy by scanning for standard-distinguishing elements:
// jpigp_cor (and *IFRS variants of jpcrp_cor summary elements) mark
// IFRS, jppfs_cor marks Japan GAAP. Facts are scanned in declaration
// order so the result is deterministic for identical content.
//
// Tie-break for mixed filings: when both markers are present, the DEI
// accounting-standard declaration wins if it says IFRS, otherwise
// Japan GAAP is assumed and a standard_ambiguity warning is recorded.
// Neither marker present yields StandardUnknown.
func DetectStandard(fs *FactSet) (Standard, []Warning) {
	var ifrsSeen, jgaapSeen bool
	declared := ""

	for _, f := range fs.Facts() {
		switch {
		case strings.HasPrefix(f.ElementID, "jpigp_cor:"):
			ifrsSeen = true
		case strings.HasPrefix(f.ElementID, "jppfs_cor:"):
			jgaapSeen = true
		case strings.HasPrefix(f.ElementID, "jpcrp_cor:") && strings.Contains(f.LocalName(), "IFRS"):
			ifrsSeen = true
		}
		if f.ElementID == accountingStandardsDEI && declared == "" {
			declared = f.Value
		}
	}

	switch {
	case ifrsSeen && jgaapSeen:
		if strings.Contains(strings.ToUpper(declared), "IFRS") {
			return StandardIFRS, []Warning{{
				Code:    WarnStandardAmbiguity,
				Message: "both Japan GAAP and IFRS marker tags present; filer declares IFRS",
			}}
		}
		return StandardJapanGAAP, []Warning{{
			Code:    WarnStandardAmbiguity,
			Message: "both Japan GAAP and IFRS marker tags present; defaulting to Japan GAAP",
		}}
	case ifrsSeen:
		return StandardIFRS, nil
	case jgaapSeen:
		return StandardJapanGAAP, nil
	}
	// Summary-only filings carry no statement namespaces; fall back to
	// the filer's declaration before giving up.
	switch {
	case strings.Contains(strings.ToUpper(declared), "IFRS"):
		return StandardIFRS, nil
	case declared != "":
		return StandardJapanGAAP, nil
	}
	return StandardUnknown, nil
}

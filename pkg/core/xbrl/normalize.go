package xbrl

import "strings"

// Suffixes that encode reporting standard or document section rather
// than the underlying concept. Stripped in order, repeatedly, so
// "RevenueIFRSSummaryOfBusinessResults" reduces to "revenue".
var tagSuffixes = []string{
	"SummaryOfBusinessResults",
	"IFRS",
	"DEI",
	"CoverPage",
}

// Synonym variants across the Japan GAAP and IFRS taxonomies collapsed
// to one canonical key. Keys and values are post-strip, lower-case.
var tagSynonyms = map[string]string{
	// Revenue
	"netsales":         "revenue",
	"operatingrevenue": "revenue",

	// Operating income
	"operatingincomeloss": "operatingincome",
	"operatingprofitloss": "operatingincome",
	"operatingprofit":     "operatingincome",

	// Ordinary income / pre-tax profit
	"ordinaryincomeloss":  "ordinaryincome",
	"profitlossbeforetax": "ordinaryincome",

	// Net income
	"netincomeloss":                          "netincome",
	"profitloss":                             "netincome",
	"profitlossattributabletoownersofparent": "netincome",

	// Balance sheet
	"assets":                             "totalassets",
	"equity":                             "netassets",
	"equityattributabletoownersofparent": "netassets",
	"liabilities":                        "totalliabilities",

	// Per share
	"basicearningslosspershare":   "earningspershare",
	"dilutedearningslosspershare": "dilutedearningspershare",

	// Ratios
	"equitytoassetratio":               "equityratio",
	"ratioofownersequitytogrossassets": "equityratio",
	"rateofreturnonequity":             "roe",
	"rateofreturnonassets":             "roa",

	// Cash flow
	"netcashprovidedbyusedinoperatingactivities": "operatingcashflow",
	"cashflowsfromoperatingactivities":           "operatingcashflow",
	"cashflowsfromusedinoperatingactivities":     "operatingcashflow",
	"netcashprovidedbyusedininvestingactivities": "investingcashflow",
	"cashflowsfrominvestmentactivities":          "investingcashflow",
	"cashflowsfromusedininvestingactivities":     "investingcashflow",
	"netcashprovidedbyusedinfinancingactivities": "financingcashflow",
	"cashflowsfromfinancingactivities":           "financingcashflow",
	"cashflowsfromusedinfinancingactivities":     "financingcashflow",
}

// NormalizeTag canonicalizes a raw XBRL element name into a
// standard-agnostic key: the namespace prefix is dropped, standard and
// section suffixes are stripped, the result is lower-cased, and known
// synonym variants collapse to one key. Total: unrecognized tags pass
// through (lower-cased) and simply stay unmapped downstream.
func NormalizeTag(raw string) string {
	tag := raw
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		tag = tag[i+1:]
	}
	for stripped := true; stripped; {
		stripped = false
		for _, suf := range tagSuffixes {
			if strings.HasSuffix(tag, suf) && len(tag) > len(suf) {
				tag = tag[:len(tag)-len(suf)]
				stripped = true
			}
		}
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canon, ok := tagSynonyms[tag]; ok {
		return canon
	}
	return tag
}

package report

// DocType describes an EDINET document type code.
type DocType struct {
	Code        string
	NameEN      string
	NameJP      string
	Description string
}

var docTypes = map[string]DocType{
	"010": {"010", "Securities Registration", "有価証券届出書", "Registration for new securities issuance"},
	"020": {"020", "Securities Registration Amendment", "有価証券届出書の訂正届出書", "Amendment to securities registration"},
	"030": {"030", "Tender Offer Registration", "公開買付届出書", "Registration for tender offer"},
	"040": {"040", "Tender Offer Registration Amendment", "公開買付届出書の訂正届出書", "Amendment to tender offer registration"},
	"070": {"070", "Shelf Registration", "発行登録書", "Shelf registration for securities issuance"},
	"120": {"120", "Securities Report", "有価証券報告書", "Annual securities report filed by listed companies"},
	"130": {"130", "Securities Report Amendment", "有価証券報告書の訂正報告書", "Amendment to annual securities report"},
	"140": {"140", "Quarterly Report", "四半期報告書", "Quarterly financial report (Q1, Q2, Q3)"},
	"150": {"150", "Quarterly Report Amendment", "四半期報告書の訂正報告書", "Amendment to quarterly report"},
	"160": {"160", "Semi-Annual Report", "半期報告書", "Semi-annual report (primarily for investment funds)"},
	"170": {"170", "Semi-Annual Report Amendment", "半期報告書の訂正報告書", "Amendment to semi-annual report"},
	"180": {"180", "Extraordinary Report", "臨時報告書", "Report on material events (M&A, management changes, etc.)"},
	"190": {"190", "Extraordinary Report Amendment", "臨時報告書の訂正報告書", "Amendment to extraordinary report"},
	"220": {"220", "Treasury Stock Report", "自己株券買付状況報告書", "Report on treasury stock buyback activity"},
	"230": {"230", "Treasury Stock Report Amendment", "自己株券買付状況報告書の訂正報告書", "Amendment to treasury stock report"},
	"350": {"350", "Large Shareholding Report", "大量保有報告書", "Report when ownership exceeds 5% of a listed company"},
	"360": {"360", "Large Shareholding Report Amendment", "大量保有報告書の訂正報告書", "Amendment to large shareholding report"},
	"370": {"370", "Large Shareholding Change Report", "変更報告書", "Report on changes to large shareholding position"},
	"380": {"380", "Large Shareholding Change Report Amendment", "変更報告書の訂正報告書", "Amendment to change report"},
}

// LookupDocType returns the metadata for a document type code.
func LookupDocType(code string) (DocType, bool) {
	dt, ok := docTypes[code]
	return dt, ok
}

// DocTypes lists all registered document types.
func DocTypes() []DocType {
	out := make([]DocType, 0, len(docTypes))
	for _, dt := range docTypes {
		out = append(out, dt)
	}
	return out
}

package report

import (
	"strings"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/extract"
	"github.com/matthelmer/edinet-tools/pkg/core/xbrl"
)

// BoardMeetingEntry is one board-of-directors buyback resolution from a
// treasury stock report. Entries keep the document's declaration order.
type BoardMeetingEntry struct {
	ContextID        string
	AuthorizedAmount *int64
	AcquiredAmount   *int64
	ResolutionDate   *time.Time
}

// TreasuryStockReport is the parsed treasury stock purchase status
// report (doc 220, amendments 230). It discloses buyback authorizations
// and execution status; narrative detail stays in the text blocks.
type TreasuryStockReport struct {
	Meta

	FilerName       *string
	FilerNameEN     *string
	FilerEDINETCode *string
	Ticker          *string

	DocumentTitle   *string
	FilingDate      *time.Time
	Representative  *string
	Address         *string
	ReportingPeriod *string

	IsAmendment bool

	ByShareholdersMeeting *string
	ByBoardMeeting        *string
	DisposalHoldingText   *string

	BoardMeetings []BoardMeetingEntry

	// HasBoardAuthorization is true iff at least one board-meeting
	// entry carries a non-zero authorization amount.
	HasBoardAuthorization bool
}

var treasuryFields = []string{
	"filer_name", "filer_name_en", "filer_edinet_code", "ticker",
	"document_title", "filing_date", "representative", "address", "reporting_period",
	"is_amendment",
	"by_shareholders_meeting", "by_board_meeting", "disposal_holding_text",
	"board_meetings", "has_board_authorization",
}

func (r *TreasuryStockReport) Fields() []string { return append([]string(nil), treasuryFields...) }

func (r *TreasuryStockReport) Flat() map[string]any {
	meetings := make([]map[string]any, 0, len(r.BoardMeetings))
	for _, m := range r.BoardMeetings {
		meetings = append(meetings, map[string]any{
			"context_id":        m.ContextID,
			"authorized_amount": opt(m.AuthorizedAmount),
			"acquired_amount":   opt(m.AcquiredAmount),
			"resolution_date":   opt(m.ResolutionDate),
		})
	}
	return map[string]any{
		"filer_name":        opt(r.FilerName),
		"filer_name_en":     opt(r.FilerNameEN),
		"filer_edinet_code": opt(r.FilerEDINETCode),
		"ticker":            opt(r.Ticker),

		"document_title":   opt(r.DocumentTitle),
		"filing_date":      opt(r.FilingDate),
		"representative":   opt(r.Representative),
		"address":          opt(r.Address),
		"reporting_period": opt(r.ReportingPeriod),

		"is_amendment": r.IsAmendment,

		"by_shareholders_meeting": opt(r.ByShareholdersMeeting),
		"by_board_meeting":        opt(r.ByBoardMeeting),
		"disposal_holding_text":   opt(r.DisposalHoldingText),

		"board_meetings":          meetings,
		"has_board_authorization": r.HasBoardAuthorization,
	}
}

func processTreasuryStock(fs *xbrl.FactSet) Report {
	// No accounting standard detection: buyback reports carry no
	// financial statements.
	res := extract.Extract(fs, treasuryTable, xbrl.StandardUnknown, true)
	warns := res.Warnings
	v := res.Values

	meta := fs.Meta()
	filerName := deiString(fs, "jpdei_cor:FilerNameInJapaneseDEI")
	if filerName == nil {
		filerName = pickString(v, "company_name")
	}
	if filerName == nil && meta.FilerName != "" {
		filerName = &meta.FilerName
	}
	filerNameEN := deiString(fs, "jpdei_cor:FilerNameInEnglishDEI")
	if filerNameEN == nil {
		filerNameEN = pickString(v, "company_name_en")
	}
	edinetCode := deiString(fs, "jpdei_cor:EDINETCodeDEI")
	if edinetCode == nil && meta.FilerEDINETCode != "" {
		edinetCode = &meta.FilerEDINETCode
	}

	amendmentFlag := deiString(fs, "jpdei_cor:AmendmentFlagDEI")
	isAmendment := amendmentFlag != nil && *amendmentFlag == "true"

	title := pickString(v, "document_title")
	if title == nil {
		def := "自己株券買付状況報告書"
		title = &def
	}

	// Disposal and holding status arrive as two separate text blocks.
	var dispParts []string
	if s := pickString(v, "disposals_text"); s != nil {
		dispParts = append(dispParts, *s)
	}
	if s := pickString(v, "holding_text"); s != nil {
		dispParts = append(dispParts, *s)
	}
	var disposalHolding *string
	if len(dispParts) > 0 {
		joined := strings.Join(dispParts, "\n")
		disposalHolding = &joined
	}

	meetings := boardMeetings(pickGroups(v, "board_meetings"))
	hasAuthorization := false
	for _, m := range meetings {
		if m.AuthorizedAmount != nil && *m.AuthorizedAmount != 0 {
			hasAuthorization = true
			break
		}
	}

	r := &TreasuryStockReport{
		FilerName:       filerName,
		FilerNameEN:     filerNameEN,
		FilerEDINETCode: edinetCode,
		Ticker:          tickerFromSecurityCode(deiString(fs, "jpdei_cor:SecurityCodeDEI")),

		DocumentTitle:   title,
		FilingDate:      pickDate(v, "filing_date"),
		Representative:  pickString(v, "representative"),
		Address:         pickString(v, "address"),
		ReportingPeriod: pickString(v, "reporting_period"),

		IsAmendment: isAmendment,

		ByShareholdersMeeting: pickString(v, "by_shareholders_meeting"),
		ByBoardMeeting:        pickString(v, "by_board_meeting"),
		DisposalHoldingText:   disposalHolding,

		BoardMeetings:         meetings,
		HasBoardAuthorization: hasAuthorization,
	}
	r.Meta = newMeta(fs, treasuryTable, warns)
	return r
}

// boardMeetings converts the repeating-group extraction into typed
// entries, preserving first-seen context order.
func boardMeetings(groups []extract.Group) []BoardMeetingEntry {
	entries := make([]BoardMeetingEntry, 0, len(groups))
	for _, g := range groups {
		e := BoardMeetingEntry{ContextID: g.ContextID}
		if n, ok := g.Fields["authorized_amount"].(int64); ok {
			e.AuthorizedAmount = &n
		}
		if n, ok := g.Fields["acquired_amount"].(int64); ok {
			e.AcquiredAmount = &n
		}
		if t, ok := g.Fields["resolution_date"].(time.Time); ok {
			e.ResolutionDate = &t
		}
		entries = append(entries, e)
	}
	return entries
}

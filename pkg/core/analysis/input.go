package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/matthelmer/edinet-tools/pkg/core/report"
	"github.com/matthelmer/edinet-tools/pkg/core/utils"
)

// KeyFact is one extracted field presented to the model.
type KeyFact struct {
	Name  string
	Value string
}

// TextBlock is one narrative section of the filing, HTML already
// stripped.
type TextBlock struct {
	Title   string
	Content string
}

// Input is the flattened view of a parsed report the prompt builders
// work from. Building it is the only place the analysis tools touch
// report types.
type Input struct {
	DocID         string
	DocTypeCode   string
	DocTypeName   string
	CompanyNameEN string
	CompanyNameJA string
	DocumentTitle string
	KeyFacts      []KeyFact
	TextBlocks    []TextBlock
}

type textBlockCarrier interface {
	TextBlocks() map[string]string
}

// NewInput flattens a report for prompting. Key facts follow the
// report's declared field order; text blocks are sorted by section
// name so prompts are deterministic.
func NewInput(r report.Report) Input {
	flat := r.Flat()

	in := Input{
		DocID:       r.DocID(),
		DocTypeCode: r.DocTypeCode(),
	}
	if dt, ok := report.LookupDocType(r.DocTypeCode()); ok {
		in.DocTypeName = dt.NameEN
	}
	if s, ok := flat["filer_name_en"].(string); ok {
		in.CompanyNameEN = s
	}
	if s, ok := flat["filer_name"].(string); ok {
		in.CompanyNameJA = s
	}
	if s, ok := flat["document_title"].(string); ok {
		in.DocumentTitle = s
	}

	for _, field := range r.Fields() {
		v := flat[field]
		if v == nil {
			continue
		}
		in.KeyFacts = append(in.KeyFacts, KeyFact{Name: field, Value: formatValue(v)})
	}

	if tb, ok := r.(textBlockCarrier); ok {
		blocks := tb.TextBlocks()
		titles := make([]string, 0, len(blocks))
		for t := range blocks {
			titles = append(titles, t)
		}
		sort.Strings(titles)
		for _, t := range titles {
			content := utils.StripHTML(blocks[t])
			if content == "" {
				continue
			}
			in.TextBlocks = append(in.TextBlocks, TextBlock{Title: t, Content: content})
		}
	}
	return in
}

// companyName prefers the English name the way the prompts want it.
func (in Input) companyName() string {
	switch {
	case in.CompanyNameEN != "":
		return in.CompanyNameEN
	case in.CompanyNameJA != "":
		return in.CompanyNameJA
	default:
		return "Unknown Company"
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case string:
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}

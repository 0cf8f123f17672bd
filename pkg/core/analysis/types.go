package analysis

import (
	"fmt"
	"strings"
)

// OneLineSummary is the structured output of the one_line_summary
// tool: an ultra concise explanation of the key event or data point.
type OneLineSummary struct {
	CompanyNameEN string `json:"company_name_en"`
	Summary       string `json:"summary"`
}

func (s *OneLineSummary) formatText() string {
	return s.Summary
}

// ExecutiveSummary is the structured output of the executive_summary
// tool: an interpretation of the disclosure with a strategic lens.
type ExecutiveSummary struct {
	CompanyNameEN            string   `json:"company_name_en"`
	CompanyDescriptionShort  string   `json:"company_description_short,omitempty"`
	Summary                  string   `json:"summary"`
	KeyHighlights            []string `json:"key_highlights"`
	PotentialImpactRationale string   `json:"potential_impact_rationale,omitempty"`
}

func (s *ExecutiveSummary) formatText() string {
	var b strings.Builder
	if s.CompanyDescriptionShort != "" {
		fmt.Fprintf(&b, "Company Description: %s\n\n", s.CompanyDescriptionShort)
	}
	fmt.Fprintf(&b, "Executive Summary: %s\n\n", s.Summary)
	if len(s.KeyHighlights) > 0 {
		b.WriteString("Key Highlights:\n")
		for _, h := range s.KeyHighlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
	if s.PotentialImpactRationale != "" {
		fmt.Fprintf(&b, "Potential Impact: %s\n", s.PotentialImpactRationale)
	}
	return strings.TrimSpace(b.String()) + "\n"
}

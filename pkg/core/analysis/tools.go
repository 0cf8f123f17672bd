package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Tool is one analysis the engine can run: a prompt builder, the JSON
// schema the model must fill, and a plain-text formatter. The set of
// tools is fixed at init; there is no dynamic registration.
type Tool struct {
	Name        string
	Description string

	newSchema   func() schema
	buildPrompt func(in Input) string
}

// schema is implemented by the structured output types.
type schema interface {
	formatText() string
}

const systemPrompt = "You are a helpful financial analyst. Follow the schema provided precisely. " +
	"Respond ONLY with valid JSON that conforms to the provided schema."

// oneLinerBlockLimit caps how many text blocks the short summary sees.
const oneLinerBlockLimit = 3

// executiveCharBudget caps the combined text-block characters in the
// executive summary prompt.
const executiveCharBudget = 8000

var registry = map[string]Tool{
	"one_line_summary": {
		Name:        "one_line_summary",
		Description: "Ultra concise (<30 words) summary of the key event or data point.",
		newSchema:   func() schema { return &OneLineSummary{} },
		buildPrompt: oneLinerPrompt,
	},
	"executive_summary": {
		Name:        "executive_summary",
		Description: "Executive summary and key highlights with a strategic lens.",
		newSchema:   func() schema { return &ExecutiveSummary{} },
		buildPrompt: executiveSummaryPrompt,
	},
}

// LookupTool resolves a tool by name.
func LookupTool(name string) (Tool, bool) {
	t, ok := registry[name]
	return t, ok
}

// Tools lists the registered tools sorted by name.
func Tools() []Tool {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Tool, 0, len(names))
	for _, n := range names {
		out = append(out, registry[n])
	}
	return out
}

func promptHeader(b *strings.Builder, in Input, lead string) {
	b.WriteString(lead)
	fmt.Fprintf(b, "\n\nCompany Name: %s", in.companyName())
	fmt.Fprintf(b, "\nDocument Type: %s", firstNonEmpty(in.DocTypeName, "document"))
	fmt.Fprintf(b, "\nDocument Title: %s\n\n", in.DocumentTitle)
	b.WriteString("Disclosure Content (extracted key facts and text blocks):\n")
}

func writeKeyFacts(b *strings.Builder, facts []KeyFact) {
	if len(facts) == 0 {
		return
	}
	b.WriteString("Key Facts:\n")
	for _, f := range facts {
		fmt.Fprintf(b, "- %s: %s\n", f.Name, f.Value)
	}
	b.WriteString("\n")
}

func oneLinerPrompt(in Input) string {
	var b strings.Builder
	promptHeader(&b, in,
		"Write a one-line summary of the following Japanese financial disclosure. "+
			"Focus *only* on what was decided, announced, or disclosed by the business - "+
			"not the filing details or metadata. Do not reply in Japanese.")
	writeKeyFacts(&b, in.KeyFacts)

	if len(in.TextBlocks) > 0 {
		b.WriteString("Relevant Text Blocks:\n")
		for i, block := range in.TextBlocks {
			if i >= oneLinerBlockLimit {
				break
			}
			content := block.Content
			if r := []rune(content); len(r) > 500 {
				content = string(r[:500]) + "..."
			}
			fmt.Fprintf(&b, "--- %s ---\n%s\n\n", block.Title, content)
		}
	}
	return b.String()
}

func executiveSummaryPrompt(in Input) string {
	var b strings.Builder
	promptHeader(&b, in,
		"Provide an insightful, concise executive summary and key highlights "+
			"of the following Japanese financial disclosure. Do not reply in Japanese. "+
			"Be more concise than normal and interpret the data with a strategic lens and rationale. "+
			"Provide a very concise (<15 words) summary of what the company does.")
	writeKeyFacts(&b, in.KeyFacts)

	if len(in.TextBlocks) > 0 {
		b.WriteString("Relevant Text Blocks:\n")
		var used int
		for _, block := range in.TextBlocks {
			section := fmt.Sprintf("--- %s ---\n%s\n\n", block.Title, block.Content)
			if used+len(section) > executiveCharBudget {
				break
			}
			b.WriteString(section)
			used += len(section)
		}
	}
	return b.String()
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

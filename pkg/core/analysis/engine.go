// Package analysis runs LLM summarization tools over parsed reports.
// The tool set is a fixed registry; each tool pairs a prompt with a
// JSON schema and a formatter, so model output is always validated
// before anyone reads it.
package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/matthelmer/edinet-tools/pkg/core/llm"
	"github.com/matthelmer/edinet-tools/pkg/core/report"
	"github.com/matthelmer/edinet-tools/pkg/core/utils"
)

// Result is one completed analysis run.
type Result struct {
	RunID       string    `json:"run_id"`
	Tool        string    `json:"tool"`
	DocID       string    `json:"doc_id"`
	Text        string    `json:"text"` // formatted plain-text output
	RawJSON     string    `json:"raw_json"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Engine runs analysis tools against a provider.
type Engine struct {
	provider llm.Provider
}

// NewEngine creates an analysis engine on top of any LLM provider.
func NewEngine(p llm.Provider) *Engine {
	return &Engine{provider: p}
}

// Analyze runs the named tool over a parsed report. Model output is
// parsed leniently (repair, then Hjson) into the tool's schema; a
// response that fits no strategy is an error, not a degraded result.
func (e *Engine) Analyze(ctx context.Context, r report.Report, toolName string) (*Result, error) {
	tool, ok := LookupTool(toolName)
	if !ok {
		return nil, fmt.Errorf("unknown analysis tool %q", toolName)
	}

	in := NewInput(r)
	prompt := tool.buildPrompt(in)

	raw, err := e.provider.GenerateResponse(ctx, prompt, systemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("%s generation failed: %w", tool.Name, err)
	}

	out := tool.newSchema()
	parsed, err := utils.SmartParse(raw, out)
	if err != nil {
		log.Printf("analysis: %s: unparseable model output for %s", tool.Name, r.DocID())
		return nil, fmt.Errorf("%s output did not match schema: %w", tool.Name, err)
	}

	return &Result{
		RunID:       uuid.NewString(),
		Tool:        tool.Name,
		DocID:       r.DocID(),
		Text:        out.formatText(),
		RawJSON:     parsed,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

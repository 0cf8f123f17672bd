package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/matthelmer/edinet-tools/pkg/config"
	"github.com/matthelmer/edinet-tools/pkg/core/analysis"
	"github.com/matthelmer/edinet-tools/pkg/core/edinet"
	"github.com/matthelmer/edinet-tools/pkg/core/llm"
	"github.com/matthelmer/edinet-tools/pkg/core/report"
	"github.com/matthelmer/edinet-tools/pkg/core/store"
	"github.com/matthelmer/edinet-tools/pkg/core/utils"
)

func main() {
	var (
		dateFlag = flag.String("date", time.Now().Format("2006-01-02"), "filing date to list (YYYY-MM-DD)")
		typeFlag = flag.String("type", "", "document type code filter (e.g. 120, 350)")
		limit    = flag.Int("limit", 5, "max documents to parse")
		analyze  = flag.String("analyze", "", "run an analysis tool (one_line_summary, executive_summary)")
		save     = flag.Bool("save", false, "persist parsed reports to Postgres")
		html     = flag.Bool("html", false, "render analysis output as HTML")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}
	cfg := config.FromEnv()
	if cfg.EDINETAPIKey == "" {
		log.Fatal("Error: EDINET_API_KEY is not set.")
	}

	date, err := time.Parse("2006-01-02", *dateFlag)
	if err != nil {
		log.Fatalf("Error: invalid -date %q: %v", *dateFlag, err)
	}

	ctx := context.Background()

	var engine *analysis.Engine
	if *analyze != "" {
		provider, err := llm.NewProvider(cfg.LLMProvider, cfg.LLMAPIKey(), cfg.LLMModel)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		engine = analysis.NewEngine(provider)
	}

	var repo *store.ReportRepo
	if *save {
		if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
			log.Fatalf("Error: %v", err)
		}
		defer store.Close()
		repo = store.NewReportRepo()
	}

	client := edinet.NewClient(cfg.EDINETAPIKey)

	fmt.Printf("🔍 Listing filings for %s...\n", date.Format("2006-01-02"))
	var codes []string
	if *typeFlag != "" {
		codes = append(codes, *typeFlag)
	}
	docs, err := client.DocumentsByDate(ctx, date, codes...)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("   %d filings found\n", len(docs))

	parsed := 0
	for _, doc := range docs {
		if parsed >= *limit {
			break
		}
		name := doc.DocTypeName()
		if name == "" {
			name = "type " + doc.DocTypeCode
		}
		fmt.Printf("\n📄 %s — %s (%s)\n", doc.DocID, doc.FilerName, name)

		rep, err := doc.Parse(ctx)
		if err != nil {
			log.Printf("   parse failed: %v", err)
			continue
		}
		parsed++
		printReport(rep)

		var results []*analysis.Result
		if engine != nil {
			res, err := engine.Analyze(ctx, rep, *analyze)
			if err != nil {
				log.Printf("   analysis failed: %v", err)
			} else {
				results = append(results, res)
				printAnalysis(res, *html)
			}
		}

		if repo != nil {
			if err := repo.Save(ctx, rep, results); err != nil {
				log.Printf("   save failed: %v", err)
			} else {
				fmt.Println("   💾 saved")
			}
		}
	}

	if parsed == 0 {
		fmt.Println("\nNo documents parsed.")
		os.Exit(1)
	}
	fmt.Printf("\n✅ Parsed %d documents.\n", parsed)
}

// printReport shows the populated fields of a report, skipping absent
// ones.
func printReport(rep report.Report) {
	flat := rep.Flat()
	for _, f := range rep.Fields() {
		if v := flat[f]; v != nil {
			if t, ok := v.(time.Time); ok {
				v = t.Format("2006-01-02")
			}
			fmt.Printf("   %-24s %v\n", f, v)
		}
	}
	for _, w := range rep.Warnings() {
		fmt.Printf("   ⚠️  %s\n", w)
	}
}

func printAnalysis(res *analysis.Result, asHTML bool) {
	out := res.Text
	if asHTML {
		rendered, err := utils.RenderHTML(out)
		if err == nil {
			out = rendered
		}
	}
	fmt.Printf("\n🤖 %s (run %s):\n%s\n", res.Tool, res.RunID, out)
}

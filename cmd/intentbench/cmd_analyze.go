package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/intentwire/intentbench/internal/analysis"
	"github.com/intentwire/intentbench/internal/models"
	"github.com/intentwire/intentbench/internal/reporting"
	"github.com/intentwire/intentbench/internal/resultlog"
)

var (
	analyzeOutputDir string
	noTable          bool
	noChart          bool
	interpret        bool
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <results.jsonl>",
		Short: "Analyze a benchmark result log",
		Long: `Analyze a benchmark result log and write summary artifacts.

Aggregates every attempt record by category and model, selects the model
with the lowest average Brier score per category and overall, and writes
summary.json plus optional table and chart renderings into an
analysis_for_<log name> directory. Logs ending in .gz are decompressed
transparently.`,
		Args: cobra.ExactArgs(1),
		RunE: analyzeCommandE,
	}

	cmd.Flags().StringVarP(&analyzeOutputDir, "output-dir", "o", "", "Directory for analysis artifacts (default: analysis_for_<log name> next to the log)")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Skip the text table rendering")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the HTML chart rendering")
	cmd.Flags().BoolVar(&interpret, "interpret", false, "Print a plain-language interpretation of the results")

	return cmd
}

func analyzeCommandE(_ *cobra.Command, args []string) error {
	// Rendering capabilities are resolved once, here, and passed down.
	caps := reporting.Capabilities{
		Table: !noTable,
		Chart: !noChart,
	}
	return analyzeLog(args[0], analyzeOutputDir, caps, nil, interpret)
}

// analyzeLog ingests a result log, aggregates it, and writes artifacts.
// It is shared by the analyze command and the post-run analysis step.
// An empty log is not an error: it prints a notice, writes nothing, and
// returns nil.
func analyzeLog(logPath, outDir string, caps reporting.Capabilities, reportCfgs []models.ReportConfig, interpretResults bool) error {
	fmt.Printf("Analyzing log file: %s\n", logPath)

	records, err := resultlog.Read(logPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Log file is empty. Nothing to analyze.")
		return nil
	}

	summary := analysis.Aggregate(records)

	// Renderer construction fails fast on bad configuration; rendering
	// itself is best-effort.
	renderers, err := reporting.NewRenderers(caps, reportCfgs)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = analysisDirFor(logPath)
	}

	summaryPath, err := reporting.WriteSummary(outDir, summary)
	if err != nil {
		return err
	}
	fmt.Printf("JSON summary saved to: %s\n", summaryPath)

	for _, r := range renderers {
		path, rerr := r.Render(outDir, summary)
		if rerr != nil {
			fmt.Printf("Skipping %s rendering: %v\n", r.Name(), rerr)
			continue
		}
		fmt.Printf("%s output saved to: %s\n", r.Name(), path)
	}

	if interpretResults {
		fmt.Println()
		fmt.Print(reporting.FormatSummaryReport(summary))
	}

	return nil
}

// analysisDirFor derives the artifact directory from the log name:
// results.jsonl(.gz) -> analysis_for_results, next to the log.
func analysisDirFor(logPath string) string {
	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".jsonl")
	return filepath.Join(filepath.Dir(logPath), "analysis_for_"+base)
}

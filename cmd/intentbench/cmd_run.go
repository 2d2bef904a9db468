package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intentwire/intentbench/internal/models"
	"github.com/intentwire/intentbench/internal/ollama"
	"github.com/intentwire/intentbench/internal/orchestration"
	"github.com/intentwire/intentbench/internal/reporting"
	"github.com/intentwire/intentbench/internal/resultlog"
	"github.com/intentwire/intentbench/internal/spinner"
	"github.com/intentwire/intentbench/internal/validation"
)

var (
	suitePath      string
	endpoint       string
	outputPath     string
	modelOverrides []string
	noAnalyze      bool
	compress       bool
	runVerbose     bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the intent-classification benchmark",
		Long: `Run the intent-classification benchmark against local models.

Each model is asked to classify every query in the suite, one call at a
time, and every completed attempt is appended to a JSONL result log.
Failed or timed-out calls are skipped; responses that are not the
expected JSON object are recorded with the sentinel intent "error".

Without --suite the built-in query suite is used. After the run the
result log is analyzed automatically unless --no-analyze is given.`,
		Args: cobra.NoArgs,
		RunE: runCommandE,
	}

	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "Suite YAML file (default: built-in suite)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Ollama base URL (overrides suite config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Result log path (default: llm_intent_results_<timestamp>.jsonl)")
	cmd.Flags().StringArrayVar(&modelOverrides, "model", nil, "Model to evaluate (overrides discovery, can be repeated)")
	cmd.Flags().BoolVar(&noAnalyze, "no-analyze", false, "Skip the automatic analysis step")
	cmd.Flags().BoolVar(&compress, "compress", false, "Write the result log gzip-compressed")
	cmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose output including skipped attempts")

	return cmd
}

func runCommandE(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	suite, err := loadSuite(suitePath)
	if err != nil {
		return err
	}
	if endpoint != "" {
		suite.Endpoint = endpoint
	}
	if len(modelOverrides) > 0 {
		suite.Models = modelOverrides
	}

	client := ollama.NewClient(suite.Endpoint, ollama.WithTimeout(orchestration.Timeout(suite)))

	fmt.Printf("Verifying Ollama connection at %s...\n", suite.Endpoint)
	if err := client.Ping(ctx); err != nil {
		fmt.Println("Please ensure Ollama is installed and running (e.g. `ollama serve`).")
		return err
	}
	fmt.Println("Ollama connection successful.")

	modelIDs, err := resolveModels(ctx, client, suite)
	if err != nil {
		return err
	}

	logPath := outputPath
	if logPath == "" {
		logPath = resultlog.DefaultPath(".")
	}
	if compress && !strings.HasSuffix(logPath, ".gz") {
		logPath += ".gz"
	}

	writer, err := resultlog.NewWriter(logPath)
	if err != nil {
		return err
	}

	runner := orchestration.NewRunner(suite, client, writer)
	runner.OnProgress(progressListener)

	fmt.Printf("\nStarting benchmark... Output will be saved to '%s'\n", logPath)

	stats, err := runner.Run(ctx, modelIDs)
	if cerr := writer.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	fmt.Printf("\nBenchmark complete. All results saved to: %s\n", logPath)
	if stats.Skipped > 0 {
		fmt.Printf("%d of %d attempts were skipped due to call failures.\n", stats.Skipped, stats.Attempts)
	}

	if stats.Recorded == 0 {
		return &BenchFailureError{
			Message: fmt.Sprintf("benchmark recorded no results: all %d attempts failed", stats.Attempts),
		}
	}

	if noAnalyze {
		return nil
	}

	fmt.Println("\nRunning analysis...")
	caps := reporting.Capabilities{Table: true, Chart: true}
	return analyzeLog(logPath, "", caps, suite.Reports, false)
}

// loadSuite returns the built-in suite, or loads and schema-validates
// the suite at path.
func loadSuite(path string) (*models.SuiteSpec, error) {
	if path == "" {
		return models.DefaultSuite(), nil
	}

	schemaErrs, err := validation.ValidateSuiteFile(path)
	if err != nil {
		return nil, err
	}
	if len(schemaErrs) > 0 {
		return nil, fmt.Errorf("suite %s is invalid:\n  %s", path, strings.Join(schemaErrs, "\n  "))
	}

	return models.LoadSuiteSpec(path)
}

// resolveModels determines which models to evaluate: an explicit list
// from the suite or flags, otherwise every installed model. When the
// server has no models at all, the suite's fallback model is pulled.
func resolveModels(ctx context.Context, client *ollama.Client, suite *models.SuiteSpec) ([]string, error) {
	if len(suite.Models) > 0 {
		return suite.Models, nil
	}

	installed, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Found %d available models.\n", len(installed))
	if len(installed) > 0 {
		return installed, nil
	}

	fmt.Printf("No models found. Pulling default model '%s'...\n", suite.FallbackModel)
	if err := pullWithSpinner(ctx, client, suite.FallbackModel); err != nil {
		return nil, err
	}

	installed, err = client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	if len(installed) == 0 {
		return nil, fmt.Errorf("still no models available after pulling %s", suite.FallbackModel)
	}
	return installed, nil
}

func pullWithSpinner(ctx context.Context, client *ollama.Client, name string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		stop := spinner.Start(os.Stdout, fmt.Sprintf("Pulling %s...", name))
		defer stop()
	}
	return client.Pull(ctx, name)
}

// progressListener prints one line per attempt, mirroring the log a
// human watches during a long benchmark.
func progressListener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventBenchmarkStart:
		fmt.Printf("Planned attempts: %d\n", event.TotalAttempts)
	case orchestration.EventModelStart:
		fmt.Printf("\nTesting model: %s\n", event.Model)
	case orchestration.EventAttemptComplete:
		fmt.Printf("  Success: '%s' -> %s (%.2f) in %.2fs\n",
			event.Query, event.Intent, event.Confidence, event.Duration)
	case orchestration.EventParseFailure:
		fmt.Printf("  Failed to parse response from model %s for query '%s': %v\n",
			event.Model, event.Query, event.Err)
	case orchestration.EventAttemptSkipped:
		if runVerbose {
			fmt.Printf("  Skipped: '%s' (%v)\n", event.Query, event.Err)
		}
	}
}

package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/intentwire/intentbench/internal/models"
)

// TableOptions configures the text table artifact.
type TableOptions struct {
	Title    string `mapstructure:"title"`
	FileName string `mapstructure:"file_name"`
}

func defaultTableOptions() TableOptions {
	return TableOptions{
		Title:    "LLM Intent Classification Performance Summary",
		FileName: "summary.txt",
	}
}

// TableRenderer writes the per-model performance table as a plain-text
// grid, one row per model.
type TableRenderer struct {
	Options TableOptions
}

// Name implements Renderer.
func (r *TableRenderer) Name() string { return "table" }

// Render implements Renderer.
func (r *TableRenderer) Render(dir string, s *models.Summary) (string, error) {
	var b strings.Builder
	b.WriteString(r.Options.Title + "\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	winner := s.OverallWinner.Model
	if winner == "" {
		winner = "N/A"
	}
	b.WriteString(fmt.Sprintf("Overall Winner (by lowest Brier Score): %s\n\n", winner))
	b.WriteString(FormatPerformanceTable(s.ModelPerformance))

	path := filepath.Join(dir, r.Options.FileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing table report: %w", err)
	}
	return path, nil
}

var tableHeaders = []string{
	"Model", "Correct", "Incorrect", "Accuracy", "Brier Score", "Avg. Duration (s)",
}

// FormatPerformanceTable renders the model rows as a bordered grid.
// The first column is left-aligned, numeric columns right-aligned.
func FormatPerformanceTable(rows []models.ModelPerformance) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Model,
			fmt.Sprintf("%d", row.CorrectPredictions),
			fmt.Sprintf("%d", row.IncorrectPredictions),
			fmt.Sprintf("%.4f", row.Accuracy),
			fmt.Sprintf("%.4f", row.BrierScore),
			fmt.Sprintf("%.2f", row.AverageDuration),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeBorder(&b, widths, "-")
	writeRow(&b, tableHeaders, widths)
	writeBorder(&b, widths, "=")
	for _, row := range cells {
		writeRow(&b, row, widths)
		writeBorder(&b, widths, "-")
	}
	return b.String()
}

func writeBorder(b *strings.Builder, widths []int, fill string) {
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat(fill, w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		pad := widths[i] - runewidth.StringWidth(cell)
		b.WriteString("| ")
		// Model column stays left-aligned; everything else is numeric.
		if i == 0 {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		} else {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		}
		b.WriteString(" ")
	}
	b.WriteString("|\n")
}

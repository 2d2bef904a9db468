package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/intentwire/intentbench/internal/models"
)

// InterpretBrier returns a plain-language label for an average Brier
// score (0 to 1, lower is better).
func InterpretBrier(score float64) string {
	switch {
	case score < 0.05:
		return "Excellent calibration (<0.05)"
	case score < 0.15:
		return "Good calibration (0.05-0.15)"
	case score < 0.25:
		return "Fair calibration (0.15-0.25)"
	default:
		return "Poor calibration (>0.25)"
	}
}

// InterpretAccuracy returns a human-readable explanation of an accuracy
// value (0 to 1).
func InterpretAccuracy(accuracy float64) string {
	pct := accuracy * 100
	switch {
	case pct >= 95:
		return fmt.Sprintf("Nearly all queries classified correctly (%.1f%%)", pct)
	case pct >= 75:
		return fmt.Sprintf("Most queries classified correctly (%.1f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("About half the queries classified correctly (%.1f%%)", pct)
	default:
		return fmt.Sprintf("Few queries classified correctly (%.1f%%)", pct)
	}
}

// FormatSummaryReport produces a plain-language report from a summary
// document, for readers who don't want to interpret raw scores.
func FormatSummaryReport(s *models.Summary) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")

	if s.OverallWinner.Model != "" {
		w := s.OverallWinner
		b.WriteString(fmt.Sprintf("Overall winner: %s, Brier %.4f (%s)\n",
			w.Model, w.BrierScore, InterpretBrier(w.BrierScore)))
		b.WriteString(fmt.Sprintf("  %s; average %.2fs per attempt\n\n",
			InterpretAccuracy(w.Accuracy), w.AverageDuration))
	}

	if len(s.PerCategory) > 0 {
		b.WriteString("Per-category winners:\n")
		categories := make([]string, 0, len(s.PerCategory))
		for c := range s.PerCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			w := s.PerCategory[c]
			b.WriteString(fmt.Sprintf("  %-12s %s (Brier %.4f, accuracy %.1f%%)\n",
				c+":", w.BestModel, w.BrierScore, w.Accuracy*100))
		}
		b.WriteString("\n")
	}

	if n := len(s.ModelPerformance); n > 1 {
		b.WriteString(fmt.Sprintf("%d models compared; the table in summary.txt has the full breakdown.\n", n))
	}

	return b.String()
}

package reporting

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentwire/intentbench/internal/models"
)

func TestTableRender(t *testing.T) {
	dir := t.TempDir()
	r := &TableRenderer{Options: defaultTableOptions()}

	path, err := r.Render(dir, sampleSummary())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "LLM Intent Classification Performance Summary")
	assert.Contains(t, out, strings.Repeat("=", 40))
	assert.Contains(t, out, "Overall Winner (by lowest Brier Score): alpha")
	assert.Contains(t, out, "| alpha")
	assert.Contains(t, out, "0.0100")
	assert.Contains(t, out, "2.25")
}

func TestTableRenderNoWinner(t *testing.T) {
	dir := t.TempDir()
	r := &TableRenderer{Options: defaultTableOptions()}

	path, err := r.Render(dir, &models.Summary{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Overall Winner (by lowest Brier Score): N/A")
}

func TestFormatPerformanceTableGrid(t *testing.T) {
	rows := []models.ModelPerformance{
		{Model: "gemma:2b", CorrectPredictions: 30, IncorrectPredictions: 5, Accuracy: 0.8571, BrierScore: 0.1012, AverageDuration: 1.25},
	}
	out := FormatPerformanceTable(rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	// Every line has the same width and the grid is bordered.
	for _, line := range lines[1:] {
		assert.Len(t, line, len(lines[0]))
	}
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Contains(t, lines[1], "| Model")
	assert.Contains(t, lines[1], "Brier Score")
	assert.True(t, strings.HasPrefix(lines[2], "+="))
	assert.Contains(t, lines[3], "| gemma:2b")
	assert.Contains(t, lines[3], "0.8571")
	assert.Contains(t, lines[3], "0.1012")
	assert.Contains(t, lines[3], "1.25")
}

func TestFormatPerformanceTableEmpty(t *testing.T) {
	out := FormatPerformanceTable(nil)
	// Header plus its borders, no data rows.
	assert.Contains(t, out, "Model")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

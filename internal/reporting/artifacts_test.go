package reporting

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentwire/intentbench/internal/models"
)

func sampleSummary() *models.Summary {
	return &models.Summary{
		PerCategory: map[string]models.CategoryWinner{
			"math": {BestModel: "alpha", BrierScore: 0.01, Accuracy: 1, AverageDuration: 1.5},
		},
		OverallWinner: models.OverallWinner{
			Model: "alpha", BrierScore: 0.01, Accuracy: 1, AverageDuration: 1.5,
		},
		ModelPerformance: []models.ModelPerformance{
			{Model: "alpha", CorrectPredictions: 2, Accuracy: 1, BrierScore: 0.01, AverageDuration: 1.5},
			{Model: "beta", CorrectPredictions: 1, IncorrectPredictions: 1, Accuracy: 0.5, BrierScore: 0.25, AverageDuration: 2.25},
		},
	}
}

func TestWriteAndReadSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "analysis_for_results")
	want := sampleSummary()

	path, err := WriteSummary(dir, want)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SummaryFileName), path)

	got, err := ReadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadSummaryMissingFile(t *testing.T) {
	_, err := ReadSummary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewRenderersDefaults(t *testing.T) {
	renderers, err := NewRenderers(Capabilities{Table: true, Chart: true}, nil)
	require.NoError(t, err)
	require.Len(t, renderers, 2)
	assert.Equal(t, "table", renderers[0].Name())
	assert.Equal(t, "chart", renderers[1].Name())
}

func TestNewRenderersRespectsCapabilities(t *testing.T) {
	renderers, err := NewRenderers(Capabilities{Table: true}, nil)
	require.NoError(t, err)
	require.Len(t, renderers, 1)
	assert.Equal(t, "table", renderers[0].Name())

	renderers, err = NewRenderers(Capabilities{}, nil)
	require.NoError(t, err)
	assert.Empty(t, renderers)
}

func TestNewRenderersAppliesConfig(t *testing.T) {
	cfgs := []models.ReportConfig{
		{Kind: "table", Parameters: map[string]any{"title": "Custom", "file_name": "t.txt"}},
	}
	renderers, err := NewRenderers(Capabilities{Table: true, Chart: true}, cfgs)
	require.NoError(t, err)
	require.Len(t, renderers, 1)

	table, ok := renderers[0].(*TableRenderer)
	require.True(t, ok)
	assert.Equal(t, "Custom", table.Options.Title)
	assert.Equal(t, "t.txt", table.Options.FileName)
}

func TestNewRenderersRejectsUnknownType(t *testing.T) {
	_, err := NewRenderers(Capabilities{Table: true, Chart: true}, []models.ReportConfig{{Kind: "pdf"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestNewRenderersRejectsUnknownConfigKey(t *testing.T) {
	cfgs := []models.ReportConfig{
		{Kind: "chart", Parameters: map[string]any{"bar_widht": 300}},
	}
	_, err := NewRenderers(Capabilities{Table: true, Chart: true}, cfgs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar_widht")
}

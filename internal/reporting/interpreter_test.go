package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intentwire/intentbench/internal/models"
)

func TestInterpretBrier(t *testing.T) {
	assert.Contains(t, InterpretBrier(0.01), "Excellent")
	assert.Contains(t, InterpretBrier(0.05), "Good")
	assert.Contains(t, InterpretBrier(0.20), "Fair")
	assert.Contains(t, InterpretBrier(0.40), "Poor")
}

func TestInterpretAccuracy(t *testing.T) {
	assert.Contains(t, InterpretAccuracy(0.99), "Nearly all")
	assert.Contains(t, InterpretAccuracy(0.80), "Most")
	assert.Contains(t, InterpretAccuracy(0.55), "About half")
	assert.Contains(t, InterpretAccuracy(0.10), "Few")
}

func TestFormatSummaryReport(t *testing.T) {
	out := FormatSummaryReport(sampleSummary())

	assert.Contains(t, out, "=== Interpretation ===")
	assert.Contains(t, out, "Overall winner: alpha")
	assert.Contains(t, out, "Per-category winners:")
	assert.Contains(t, out, "math:")
	assert.Contains(t, out, "2 models compared")
}

func TestFormatSummaryReportEmpty(t *testing.T) {
	out := FormatSummaryReport(&models.Summary{})
	assert.Contains(t, out, "=== Interpretation ===")
	assert.NotContains(t, out, "Overall winner")
}

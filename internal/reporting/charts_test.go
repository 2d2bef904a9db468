package reporting

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRender(t *testing.T) {
	dir := t.TempDir()
	r := &ChartRenderer{Options: defaultChartOptions()}

	path, err := r.Render(dir, sampleSummary())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Accuracy (Higher is Better)")
	assert.Contains(t, out, "Brier Score (Lower is Better)")
	assert.Contains(t, out, "Average Duration (Lower is Better)")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "<svg")
	// The worst Brier score gets the full-width bar.
	assert.Contains(t, out, `width="480"`)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 480, scale(1, 1, 480))
	assert.Equal(t, 240, scale(0.5, 1, 480))
	assert.Equal(t, 0, scale(0.5, 0, 480))
	assert.Equal(t, 0, scale(-1, 1, 480))
	assert.Equal(t, 480, scale(2, 1, 480))
}
